package seeder

import (
	"context"
	"fmt"
)

// Store is the favorites persistence the importer writes to
type Store interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, names []string) error
}

// Import parses path and merges its names into the stored favorites.
// It returns how many names were added.
func Import(ctx context.Context, parser *Parser, store Store, path string) (int, error) {
	imported, err := parser.ParseFavorites(path)
	if err != nil {
		return 0, err
	}

	existing, err := store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load favorites: %w", err)
	}

	merged := Merge(existing, imported)
	added := len(merged) - len(Merge(existing, nil))
	if added == 0 {
		return 0, nil
	}

	if err := store.Save(ctx, merged); err != nil {
		return 0, fmt.Errorf("failed to save favorites: %w", err)
	}
	return added, nil
}
