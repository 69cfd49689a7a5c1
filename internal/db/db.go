package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(dbURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)

	if err != nil {
		return nil, err
	}

	cfg.MaxConns = 5

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)

	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)

	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS eventos (
	seq        BIGSERIAL PRIMARY KEY,
	id         UUID NOT NULL,
	titulo     TEXT NOT NULL,
	cat        TEXT NOT NULL,
	data       TIMESTAMPTZ NOT NULL,
	hora       TEXT NOT NULL,
	local      TEXT NOT NULL,
	preco      DOUBLE PRECISION NOT NULL CHECK (preco >= 0),
	img        TEXT NOT NULL,
	descricao  TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the eventos table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure eventos schema: %w", err)
	}
	return nil
}
