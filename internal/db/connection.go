package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/streetdivider/internal/config"
)

// Connection holds the database connection
type Connection struct {
	DB *sql.DB
}

// DSN builds the lib/pq connection string from the PG* environment.
func DSN() string {
	if url := config.GetEnv("DATABASE_URL", ""); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.GetEnv("PGHOST", "localhost"),
		config.GetEnv("PGPORT", "5432"),
		config.GetEnv("PGUSER", "postgres"),
		config.GetEnv("PGPASSWORD", "postgres"),
		config.GetEnv("PGDATABASE", "streetdivider"),
		config.GetEnv("PGSSLMODE", "disable"))
}

// NewConnection opens and pings a PostgreSQL connection pool
func NewConnection(ctx context.Context) (*Connection, error) {
	db, err := sql.Open("postgres", DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(config.GetEnvInt("DB_MAX_CONNECTIONS", 10))
	db.SetMaxIdleConns(config.GetEnvInt("DB_MAX_CONNECTIONS", 10) / 2)
	db.SetConnMaxLifetime(time.Hour)

	return &Connection{DB: db}, nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	return c.DB.Close()
}
