package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexivanou/meteo-widget/internal/model"
	"github.com/alexivanou/meteo-widget/internal/repository"
	"github.com/alexivanou/meteo-widget/internal/weather"
	"go.uber.org/zap"
)

var (
	// ErrEmptyFavorite is returned when adding a blank city name
	ErrEmptyFavorite = errors.New("favorite name is empty")
	// ErrDuplicateFavorite is returned when the city is already a favorite
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoritesStore persists the favorites list
type FavoritesStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, names []string) error
}

var _ FavoritesStore = (*repository.FavoritesRepository)(nil)

// Widget is the single-user weather widget controller
type Widget struct {
	provider  weather.Provider
	favorites FavoritesStore
	logger    *zap.Logger

	mu             sync.RWMutex
	dayMode        bool
	input          string
	query          model.QueryState
	favList        []string
	searches       int64
	failedSearches int64
}

// NewWidget creates the controller and loads the stored favorites once
func NewWidget(ctx context.Context, provider weather.Provider, favorites FavoritesStore, logger *zap.Logger) (*Widget, error) {
	names, err := favorites.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrCorruptFavorites) {
			return nil, fmt.Errorf("failed to load favorites: %w", err)
		}
		logger.Warn("Stored favorites are unreadable, starting empty", zap.Error(err))
		names = nil
	}

	return &Widget{
		provider:  provider,
		favorites: favorites,
		logger:    logger,
		dayMode:   true,
		query:     model.QueryState{Forecast: []model.ForecastEntry{}},
		favList:   dedupe(names),
	}, nil
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

// State returns a snapshot safe to read without the lock
func (w *Widget) State() model.WidgetState {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return model.WidgetState{
		DayMode:   w.dayMode,
		Input:     w.input,
		Weather:   copyQuery(w.query),
		Favorites: append([]string{}, w.favList...),
	}
}

func copyQuery(q model.QueryState) model.QueryState {
	out := q
	if q.Current != nil {
		current := *q.Current
		out.Current = &current
	}
	out.Forecast = append([]model.ForecastEntry{}, q.Forecast...)
	return out
}

// Metrics returns the widget counters
func (w *Widget) Metrics() model.Metrics {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return model.Metrics{
		Searches:       w.searches,
		FailedSearches: w.failedSearches,
		Favorites:      len(w.favList),
	}
}

// SetInput replaces the search box text
func (w *Widget) SetInput(text string) {
	w.mu.Lock()
	w.input = text
	w.mu.Unlock()
}

// ToggleTheme flips between day and night mode and returns the new mode
func (w *Widget) ToggleTheme() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.dayMode = !w.dayMode
	return w.dayMode
}

// NoticeMessage returns the user-facing text for a favorites notice,
// or an empty string when err is not one
func NoticeMessage(err error, name string) string {
	switch {
	case errors.Is(err, ErrDuplicateFavorite):
		return fmt.Sprintf("%s est déjà dans les favoris.", name)
	case errors.Is(err, ErrEmptyFavorite):
		return "Veuillez saisir un nom de ville."
	default:
		return ""
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
