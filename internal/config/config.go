package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort int
	LogLevel   string

	// Path of the BoltDB file holding every entity bucket.
	DBPath string

	AIURL     string
	AITimeout time.Duration

	// Optional integrations; empty values leave them disabled.
	KafkaAddress string
	ESURL        string
	ESUser       string
	ESPassword   string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		ServerPort: envIntDefault("SERVER_PORT", 8080),
		LogLevel:   envDefault("LOG_LEVEL", "info"),

		DBPath: envDefault("DB_PATH", "marketplace.db"),

		AIURL:     envDefault("AI_URL", "https://rawan7-icp-ai-agent-api2.hf.space/generate"),
		AITimeout: time.Duration(envIntDefault("AI_TIMEOUT_SECONDS", 30)) * time.Second,

		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),
	}

	return config, nil
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
