package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Favorites returns a copy of the favorites list
func (w *Widget) Favorites() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]string{}, w.favList...)
}

// AddFavorite appends a city and persists the list. The in-memory list only
// changes once the store accepted the write.
func (w *Widget) AddFavorite(ctx context.Context, name string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.addLocked(ctx, name)
}

// AddFavoriteFromInput adds the search box text and clears it on success
func (w *Widget) AddFavoriteFromInput(ctx context.Context) (string, []string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	name := w.input
	names, err := w.addLocked(ctx, name)
	if err != nil {
		return name, names, err
	}
	w.input = ""
	return name, names, nil
}

func (w *Widget) addLocked(ctx context.Context, name string) ([]string, error) {
	if isBlank(name) {
		return w.copyFavsLocked(), ErrEmptyFavorite
	}
	for _, existing := range w.favList {
		if existing == name {
			w.logger.Info("Favorite already present", zap.String("city", name))
			return w.copyFavsLocked(), ErrDuplicateFavorite
		}
	}

	updated := append(w.copyFavsLocked(), name)
	if err := w.favorites.Save(ctx, updated); err != nil {
		w.logger.Error("Failed to persist favorites", zap.Error(err))
		return w.copyFavsLocked(), fmt.Errorf("failed to add favorite: %w", err)
	}

	w.favList = updated
	return w.copyFavsLocked(), nil
}

// RemoveFavorite drops the exact-match city and persists the list.
// Removing an absent city changes nothing and writes nothing.
func (w *Widget) RemoveFavorite(ctx context.Context, name string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	updated := make([]string, 0, len(w.favList))
	for _, existing := range w.favList {
		if existing != name {
			updated = append(updated, existing)
		}
	}
	if len(updated) == len(w.favList) {
		return w.copyFavsLocked(), nil
	}

	if err := w.favorites.Save(ctx, updated); err != nil {
		w.logger.Error("Failed to persist favorites", zap.Error(err))
		return w.copyFavsLocked(), fmt.Errorf("failed to remove favorite: %w", err)
	}

	w.favList = updated
	return w.copyFavsLocked(), nil
}

func (w *Widget) copyFavsLocked() []string {
	return append([]string{}, w.favList...)
}
