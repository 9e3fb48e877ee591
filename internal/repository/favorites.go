package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// FavoritesKey is the storage key holding the JSON-encoded favorites list
const FavoritesKey = "favorites"

// ErrCorruptFavorites is returned when the stored value is not a JSON array of strings
var ErrCorruptFavorites = errors.New("stored favorites are not a JSON string array")

// FavoritesRepository persists the favorites list under one key
type FavoritesRepository struct {
	kv KeyValueStore
}

// NewFavoritesRepository creates a favorites repository over a key-value store
func NewFavoritesRepository(kv KeyValueStore) *FavoritesRepository {
	return &FavoritesRepository{kv: kv}
}

// Load reads the list. An absent key is an empty list.
func (r *FavoritesRepository) Load(ctx context.Context) ([]string, error) {
	raw, found, err := r.kv.Get(ctx, FavoritesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	if !found {
		return []string{}, nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFavorites, err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Save rewrites the whole list
func (r *FavoritesRepository) Save(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := r.kv.Set(ctx, FavoritesKey, string(data)); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}
