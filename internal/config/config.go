package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	RedisURL     string
	NatsURL      string
	KafkaBrokers string
	OtlpEndpoint string
	Port         string
}

func Load() *Config {
	// Local development overrides; absence is fine in containers.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		kafkaBrokers = "localhost:9092"
	}

	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     redisURL,
		NatsURL:      natsURL,
		KafkaBrokers: kafkaBrokers,
		OtlpEndpoint: os.Getenv("OTLP_ENDPOINT"),
		Port:         port,
	}
}
