package model

import "time"

// CurrentWeather is the provider's snapshot reading for a city
type CurrentWeather struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"wind_speed"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}

// ForecastEntry is one noon-anchored daily prediction
type ForecastEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	DtTxt       string    `json:"dt_txt"`
	Temperature float64   `json:"temperature"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
}

// QueryState is the outcome of the latest search.
// Error implies Current is nil and Forecast is empty.
type QueryState struct {
	Loading  bool            `json:"loading"`
	Current  *CurrentWeather `json:"current"`
	Forecast []ForecastEntry `json:"forecast"`
	Error    bool            `json:"error"`
}

// FailedQuery returns the state a failed search settles to
func FailedQuery() QueryState {
	return QueryState{Forecast: []ForecastEntry{}, Error: true}
}

// WidgetState is a snapshot of everything the widget displays
type WidgetState struct {
	DayMode   bool       `json:"day_mode"`
	Input     string     `json:"input"`
	Weather   QueryState `json:"weather"`
	Favorites []string   `json:"favorites"`
}

// Metrics holds widget counters reported by the stats endpoint
type Metrics struct {
	Searches       int64 `json:"searches"`
	FailedSearches int64 `json:"failed_searches"`
	Favorites      int   `json:"favorites"`
}
