package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"concert-ticketing/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.StrategyPessimistic, cfg.LockStrategy)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "payment.completed", cfg.KafkaTopic)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Equal(t, 5, cfg.RelayMaxRetries)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LOCK_STRATEGY", config.StrategyOptimistic)
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("SWEEP_INTERVAL", "30s")
	t.Setenv("RELAY_MAX_RETRIES", "3")

	cfg := config.Load()

	assert.Equal(t, config.StrategyOptimistic, cfg.LockStrategy)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 30*time.Second, cfg.SweepInterval)
	assert.Equal(t, 3, cfg.RelayMaxRetries)
}
