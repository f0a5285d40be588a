package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a Postgres pool.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect establishes a pgx pool and verifies connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the tables the service needs when they do not exist.
// Safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			full_name     VARCHAR(255) NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			phone_number  TEXT,
			image_url     TEXT,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'user',
			refresh_token TEXT,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS addresses (
			id        BIGSERIAL PRIMARY KEY,
			user_id   BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			type      TEXT NOT NULL,
			house     TEXT NOT NULL,
			area      TEXT NOT NULL,
			landmark  TEXT,
			latitude  DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id   BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id          BIGSERIAL PRIMARY KEY,
			name        VARCHAR(255) NOT NULL,
			price       NUMERIC(10,2) NOT NULL,
			image_url   TEXT NOT NULL,
			description TEXT NOT NULL,
			rating      NUMERIC(3,2) NOT NULL DEFAULT 0,
			tags        TEXT[] NOT NULL DEFAULT '{}',
			type        TEXT NOT NULL DEFAULT 'veg',
			available   BOOLEAN NOT NULL DEFAULT TRUE,
			category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS toppings (
			id         BIGSERIAL PRIMARY KEY,
			name       VARCHAR(255) NOT NULL,
			price      NUMERIC(10,2) NOT NULL,
			image_url  TEXT,
			available  BOOLEAN NOT NULL DEFAULT TRUE,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS side_options (
			id         BIGSERIAL PRIMARY KEY,
			name       VARCHAR(255) NOT NULL,
			price      NUMERIC(10,2) NOT NULL,
			image_url  TEXT,
			available  BOOLEAN NOT NULL DEFAULT TRUE,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS menus (
			id          BIGSERIAL PRIMARY KEY,
			title       TEXT NOT NULL,
			image_url   TEXT NOT NULL,
			description TEXT,
			color_code  TEXT NOT NULL,
			status      BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
