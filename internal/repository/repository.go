package repository

import (
	"context"

	"github.com/alexivanou/meteo-widget/internal/config"
	"github.com/alexivanou/meteo-widget/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// KeyValueStore is a string-valued store addressed by key
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// Container holds all repositories
type Container struct {
	KV        KeyValueStore
	Favorites *FavoritesRepository
}

// NewRepositories creates repository implementations for an SQL backend
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	var kv KeyValueStore = &sqliteKVStore{db: db}
	if dbType == config.DBTypePostgreSQL {
		kv = &pgKVStore{db: db}
	}
	return newContainer(kv)
}

// NewRedisRepositories creates repository implementations backed by Redis
func NewRedisRepositories(rdb *redis.Client) *Container {
	return newContainer(&redisKVStore{rdb: rdb})
}

// NewFromStorage picks the implementation matching an opened backend
func NewFromStorage(storage *database.Storage, dbType config.DBType) *Container {
	if storage.Redis != nil {
		return NewRedisRepositories(storage.Redis)
	}
	return NewRepositories(storage.SQL, dbType)
}

func newContainer(kv KeyValueStore) *Container {
	return &Container{
		KV:        kv,
		Favorites: NewFavoritesRepository(kv),
	}
}

// CountKeys returns the number of rows in the key-value table
func CountKeys(ctx context.Context, db *sqlx.DB) (int64, error) {
	var count int64
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM kv_store"); err != nil {
		return 0, err
	}
	return count, nil
}
