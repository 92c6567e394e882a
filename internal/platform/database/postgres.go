package database

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewPostgresDB opens a connection pool, retrying while the database
// comes up. Containerized deployments routinely start the app before
// postgres accepts connections.
func NewPostgresDB(cfg Config, log *zap.Logger) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)

	var db *sql.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Info("database connected")
			return db, nil
		}

		log.Warn("database not ready, retrying",
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxRetries),
			zap.Error(err))
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("connect to database: %w", err)
}
