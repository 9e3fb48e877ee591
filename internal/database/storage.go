package database

import (
	"context"
	"fmt"

	"github.com/alexivanou/meteo-widget/internal/config"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Storage is the opened favorites backend. Exactly one of SQL and Redis is set.
type Storage struct {
	SQL   *sqlx.DB
	Redis *redis.Client
}

// Open connects to the configured backend. SQL backends are migrated.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.DB.Type == config.DBTypeRedis {
		rdb, err := ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{Redis: rdb}, nil
	}

	db, err := Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, cfg.DB.Type); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Storage{SQL: db}, nil
}

// Close releases the backend connection
func (s *Storage) Close() error {
	if s.Redis != nil {
		return s.Redis.Close()
	}
	return s.SQL.Close()
}
