package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// DB is the PostgreSQL pool, opened only when dataset_source=postgres.
var DB *sql.DB

const retryDelay = 5 * time.Second

// OpenPostgresWithRetry connects to PostgreSQL with retries; the warehouse
// may still be warming up when the service starts.
func OpenPostgresWithRetry(cfg *Global, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = openPostgres(cfg)
		if err == nil {
			return nil
		}
		log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryDelay)
	}
	return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %w", maxRetries, err)
}

func openPostgres(cfg *Global) error {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// The dataset is read once at startup; a tiny pool is plenty.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("connect to database: %w", err)
	}

	DB = db
	log.Printf("Connected to PostgreSQL database %s at %s:%s", cfg.DBName, cfg.DBHost, cfg.DBPort)
	return nil
}

// CloseDB releases the pool at shutdown.
func CloseDB() {
	if DB != nil {
		if err := DB.Close(); err != nil {
			log.Printf("Error closing PostgreSQL connection: %v", err)
		}
	}
}
