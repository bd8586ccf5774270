package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all external settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	DatabaseURL string
	Port        int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GeocoderBaseURL string
	GeocoderAPIKey  string
	GeocoderTimeout time.Duration

	// GeopointRefreshAge controls re-resolving of cached geopoints: entries
	// older than the age are refreshed in the background. Zero disables
	// refresh and cached coordinates live forever.
	GeopointRefreshAge      time.Duration
	GeopointRefreshInterval time.Duration

	KafkaAddress string
	KafkaTopic   string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		Port:                    envInt("PORT", 8080),
		RedisAddr:               envDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 envInt("REDIS_DB", 0),
		GeocoderBaseURL:         envDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderAPIKey:          os.Getenv("GEOCODER_API_KEY"),
		GeocoderTimeout:         envDuration("GEOCODER_TIMEOUT", 30*time.Second),
		GeopointRefreshAge:      envDuration("GEOPOINT_REFRESH_AGE", 0),
		GeopointRefreshInterval: envDuration("GEOPOINT_REFRESH_INTERVAL", time.Hour),
		KafkaAddress:            os.Getenv("KAFKA_ADDRESS"),
		KafkaTopic:              envDefault("KAFKA_TOPIC", "orders.placed"),
	}

	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
