// Package postgres implements the persistence gateway over PostgreSQL using
// sqlx and squirrel query builders.
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Config captures the settings for establishing a PostgreSQL connection.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Connect opens a connection pool and validates connectivity with a ping.
func Connect(cfg Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}

// schema is the persisted state layout: three tables with integer surrogate
// keys and a restricting foreign key from product to category.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS category (
		id    SERIAL PRIMARY KEY,
		title VARCHAR(60) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product (
		id          SERIAL PRIMARY KEY,
		title       VARCHAR(60) NOT NULL,
		description VARCHAR(1024) NOT NULL DEFAULT '',
		price       NUMERIC(12,2) NOT NULL,
		category_id INTEGER NOT NULL REFERENCES category (id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      VARCHAR(20) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          VARCHAR(20) NOT NULL
	)`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
