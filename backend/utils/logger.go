package utils

import (
	"log"
	"os"
)

// LoggerConfig controls the process logger.
type LoggerConfig struct {
	// Log format (text/json-ish flags)
	Format string
	// Output stream (os.Stdout, a file, ...)
	Output *os.File
	// Console colors on/off
	EnableColors bool
}

// InitLogger builds the process logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[MentorPath] "

	var logger *log.Logger
	if cfg.Format == "json" {
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	} else {
		if cfg.EnableColors {
			prefix = "\033[36m" + prefix + "\033[0m"
		}
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
	}

	return logger
}
