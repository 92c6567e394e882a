package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StrategyOptimistic  = "optimistic"
	StrategyPessimistic = "pessimistic"
)

type Config struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string

	// LockStrategy selects how concurrent reservation attempts on one
	// seat are serialized: optimistic (version check) or pessimistic
	// (row lock).
	LockStrategy string

	SweepInterval   time.Duration
	SweepBatchSize  int
	RelayInterval   time.Duration
	RelayBatchSize  int
	RelayMaxRetries int
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local runs.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "ticketing"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("REDIS_DB", 0),

		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   getenv("KAFKA_TOPIC", "payment.completed"),

		LockStrategy: getenv("LOCK_STRATEGY", StrategyPessimistic),

		SweepInterval:   getenvDuration("SWEEP_INTERVAL", time.Minute),
		SweepBatchSize:  getenvInt("SWEEP_BATCH_SIZE", 100),
		RelayInterval:   getenvDuration("RELAY_INTERVAL", 10*time.Second),
		RelayBatchSize:  getenvInt("RELAY_BATCH_SIZE", 100),
		RelayMaxRetries: getenvInt("RELAY_MAX_RETRIES", 5),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
