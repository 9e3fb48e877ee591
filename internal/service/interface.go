package service

import (
	"context"

	"github.com/alexivanou/meteo-widget/internal/model"
)

// ServiceInterface defines the widget operations used by the HTTP layer
type ServiceInterface interface {
	State() model.WidgetState
	Metrics() model.Metrics
	Search(ctx context.Context, city string) model.QueryState
	SetInput(text string)
	Submit(ctx context.Context) model.QueryState
	Favorites() []string
	AddFavorite(ctx context.Context, name string) ([]string, error)
	AddFavoriteFromInput(ctx context.Context) (string, []string, error)
	RemoveFavorite(ctx context.Context, name string) ([]string, error)
	LoadFavorite(ctx context.Context, name string) model.QueryState
	ToggleTheme() bool
}

var _ ServiceInterface = (*Widget)(nil)
