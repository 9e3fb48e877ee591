package service

import (
	"context"
	"fmt"

	"github.com/alexivanou/meteo-widget/internal/model"
	"github.com/alexivanou/meteo-widget/internal/weather"
	"go.uber.org/zap"
)

// Search queries current conditions then the forecast for a city and
// replaces the query state with the combined outcome. Searches are not
// sequenced against each other; the last one to finish wins.
func (w *Widget) Search(ctx context.Context, city string) model.QueryState {
	w.mu.Lock()
	w.query.Loading = true
	w.searches++
	w.mu.Unlock()

	current, forecast, err := w.fetch(ctx, city)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.failedSearches++
		w.logger.Warn("Weather query failed", zap.String("city", city), zap.Error(err))
		w.query = model.FailedQuery()
		return copyQuery(w.query)
	}

	w.query = model.QueryState{
		Current:  current,
		Forecast: forecast,
	}
	return copyQuery(w.query)
}

// fetch runs the two provider calls in order; the forecast is skipped when
// current conditions already failed.
func (w *Widget) fetch(ctx context.Context, city string) (*model.CurrentWeather, []model.ForecastEntry, error) {
	if isBlank(city) {
		return nil, nil, fmt.Errorf("%w: empty city name", weather.ErrQueryFailed)
	}

	current, err := w.provider.Current(ctx, city)
	if err != nil {
		return nil, nil, err
	}

	forecast, err := w.provider.Forecast(ctx, city)
	if err != nil {
		return nil, nil, err
	}

	if forecast == nil {
		forecast = []model.ForecastEntry{}
	}
	return current, forecast, nil
}

// Submit searches the current input and clears it, like pressing Enter
func (w *Widget) Submit(ctx context.Context) model.QueryState {
	w.mu.Lock()
	city := w.input
	w.input = ""
	w.mu.Unlock()

	return w.Search(ctx, city)
}

// LoadFavorite searches a stored favorite
func (w *Widget) LoadFavorite(ctx context.Context, name string) model.QueryState {
	return w.Search(ctx, name)
}
