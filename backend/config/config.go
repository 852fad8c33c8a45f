package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string

	// RedisAddr enables the course search cache when non-empty.
	RedisAddr      string
	SearchCacheTTL time.Duration

	// Weekly dashboard goals. Defaults match the original product
	// numbers (10 tasks / 3 courses per week).
	WeeklyTaskGoal   int
	WeeklyCourseGoal int

	// WeekStartDay is the weekday that opens a weekly bucket.
	// 0 = Sunday, matching the original dashboard.
	WeekStartDay time.Weekday
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "mentorpath"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		SearchCacheTTL:   getEnvDuration("SEARCH_CACHE_TTL", 5*time.Minute),
		WeeklyTaskGoal:   getEnvInt("WEEKLY_TASK_GOAL", 10),
		WeeklyCourseGoal: getEnvInt("WEEKLY_COURSE_GOAL", 3),
		WeekStartDay:     time.Weekday(getEnvInt("WEEK_START_DAY", 0)),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
