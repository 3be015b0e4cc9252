package common

import "os"

const (
	DefaultTemporalHost = "127.0.0.1:7233"
	DefaultNamespace    = "default"
	DefaultTaskQueue    = "a2r-redaction-queue"
)

// GetEnv returns the environment variable value or a default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
