package seeder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexivanou/meteo-widget/internal/config"
	"github.com/alexivanou/meteo-widget/internal/database"
	"github.com/alexivanou/meteo-widget/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *repository.FavoritesRepository {
	cfg := config.DBConfig{Type: config.DBTypeMemory, Name: "seeder_" + t.Name()}
	db, err := database.Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, cfg.Type))

	return repository.NewRepositories(db, cfg.Type).Favorites
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	require.NoError(t, store.Save(ctx, []string{"Lyon"}))

	path := filepath.Join(t.TempDir(), "favorites.txt")
	require.NoError(t, os.WriteFile(path, []byte("Paris\nLyon\nNice\n"), 0o644))

	parser := NewParser(config.SeederConfig{})
	added, err := Import(ctx, parser, store, path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lyon", "Paris", "Nice"}, stored)

	added, err = Import(ctx, parser, store, path)
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestImport_MissingFile(t *testing.T) {
	store := setupStore(t)

	_, err := Import(context.Background(), NewParser(config.SeederConfig{}), store, filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)
}
