package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockKVStore implements KeyValueStore
type MockKVStore struct {
	mock.Mock
}

func (m *MockKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKVStore) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func TestFavoritesRepository_RoundTrip(t *testing.T) {
	repos := setupRepo(t)
	ctx := context.Background()

	names, err := repos.Favorites.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)

	require.NoError(t, repos.Favorites.Save(ctx, []string{"Paris", "Montréal"}))

	names, err = repos.Favorites.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris", "Montréal"}, names)

	raw, found, err := repos.KV.Get(ctx, FavoritesKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["Paris","Montréal"]`, raw)
}

func TestFavoritesRepository_SaveNil(t *testing.T) {
	kv := new(MockKVStore)
	kv.On("Set", mock.Anything, FavoritesKey, "[]").Return(nil)

	repo := NewFavoritesRepository(kv)
	require.NoError(t, repo.Save(context.Background(), nil))
	kv.AssertExpectations(t)
}

func TestFavoritesRepository_Load(t *testing.T) {
	tests := []struct {
		name        string
		stored      string
		found       bool
		getErr      error
		expected    []string
		expectedErr error
	}{
		{name: "absent key", found: false, expected: []string{}},
		{name: "json null", stored: "null", found: true, expected: []string{}},
		{name: "stored list", stored: `["Lyon","Nice"]`, found: true, expected: []string{"Lyon", "Nice"}},
		{name: "corrupt value", stored: `{"Lyon":1}`, found: true, expectedErr: ErrCorruptFavorites},
		{name: "store failure", getErr: errors.New("disk gone")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := new(MockKVStore)
			kv.On("Get", mock.Anything, FavoritesKey).Return(tt.stored, tt.found, tt.getErr)

			names, err := NewFavoritesRepository(kv).Load(context.Background())
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.getErr != nil:
				assert.ErrorIs(t, err, tt.getErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expected, names)
			}
		})
	}
}

func TestFavoritesRepository_SaveFailure(t *testing.T) {
	kv := new(MockKVStore)
	storeErr := errors.New("read-only")
	kv.On("Set", mock.Anything, FavoritesKey, `["Paris"]`).Return(storeErr)

	err := NewFavoritesRepository(kv).Save(context.Background(), []string{"Paris"})
	assert.ErrorIs(t, err, storeErr)
}
