package config

import (
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL     string
	JWTSecret       string
	Port            string
	GoogleClientIDs string
	RedisURL        string

	// Placeholder life-score factors until event/mood tracking carries
	// real data.
	EventsFactor float64
	MoodFactor   float64
}

func Load() *Config {
	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", "lifehub.db"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:            getEnv("PORT", "8080"),
		GoogleClientIDs: getEnv("GOOGLE_CLIENT_IDS", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		EventsFactor:    getEnvFloat("EVENTS_FACTOR", 80),
		MoodFactor:      getEnvFloat("MOOD_FACTOR", 75),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
