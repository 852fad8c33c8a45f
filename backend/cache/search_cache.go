// Package cache holds the Redis-backed result cache for course search.
// Everything here fails open: when Redis is down the matcher just hits the
// catalog directly.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"mentorpath/backend/models"
)

type SearchCache struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *log.Logger
}

func New(addr string, ttl time.Duration, logger *log.Logger) *SearchCache {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &SearchCache{Client: rdb, TTL: ttl, Logger: logger}
}

// Get returns the cached result for these preferences, if any.
func (c *SearchCache) Get(ctx context.Context, prefs models.UserPreferences) ([]models.Course, bool) {
	val, err := c.Client.Get(ctx, searchKey(prefs)).Result()
	if err != nil {
		if c.Logger != nil && err != redis.Nil {
			c.Logger.Printf("search cache get failed: %v", err)
		}
		return nil, false
	}

	var courses []models.Course
	if err := json.Unmarshal([]byte(val), &courses); err != nil {
		return nil, false
	}
	return courses, true
}

func (c *SearchCache) Set(ctx context.Context, prefs models.UserPreferences, courses []models.Course) {
	data, err := json.Marshal(courses)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, searchKey(prefs), data, c.TTL).Err(); err != nil && c.Logger != nil {
		c.Logger.Printf("search cache set failed: %v", err)
	}
}

// searchKey hashes the preference struct so every distinct query gets its
// own slot. Field order in the struct keeps the JSON canonical.
func searchKey(prefs models.UserPreferences) string {
	data, _ := json.Marshal(prefs)
	sum := sha256.Sum256(data)
	return "search:" + hex.EncodeToString(sum[:16])
}
