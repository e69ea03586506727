package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	MongoURI         string
	MongoDatabase    string
	MongoConnTimeout time.Duration

	NATSURL         string
	NATSConnTimeout time.Duration

	OTELCollectorURL string
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Port: getEnvString("PORT", "4000"),

		MongoURI:         getEnvString("MONGO_URI", ""),
		MongoDatabase:    getEnvString("MONGO_DATABASE", "jobboard"),
		MongoConnTimeout: getEnvDuration("MONGO_CONN_TIMEOUT", 10*time.Second),

		NATSURL:         getEnvString("NATS_URL", ""),
		NATSConnTimeout: getEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		OTELCollectorURL: getEnvString("OTEL_COLLECTOR_URL", ""),
	}

	if config.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is missing")
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
