package api

import (
	"github.com/alexivanou/meteo-widget/internal/service"
	"github.com/alexivanou/meteo-widget/internal/stats"
	"github.com/alexivanou/meteo-widget/internal/view"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter creates a new HTTP router
func NewRouter(
	service service.ServiceInterface,
	statsCollector *stats.Collector,
	renderer *view.Renderer,
	iconBase string,
	logger *zap.Logger,
) *mux.Router {
	handler := NewHandler(service, iconBase, logger)
	ui := NewUIHandler(handler, renderer)
	statsHandler := NewStatsHandler(statsCollector, logger)

	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// HTML page
	router.HandleFunc("/", ui.Page).Methods("GET")
	router.HandleFunc("/ui/search", ui.SearchForm).Methods("POST")
	router.HandleFunc("/ui/favorites/load", ui.LoadFavoriteForm).Methods("POST")
	router.HandleFunc("/ui/favorites/remove", ui.RemoveFavoriteForm).Methods("POST")
	router.HandleFunc("/ui/theme", ui.ToggleThemeForm).Methods("POST")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/state", handler.GetState).Methods("GET")
	v1.HandleFunc("/view", handler.GetView).Methods("GET")
	v1.HandleFunc("/search", handler.Search).Methods("POST")
	v1.HandleFunc("/input", handler.SetInput).Methods("PUT")
	v1.HandleFunc("/input/submit", handler.SubmitInput).Methods("POST")
	v1.HandleFunc("/favorites", handler.ListFavorites).Methods("GET")
	v1.HandleFunc("/favorites", handler.AddFavorite).Methods("POST")
	v1.HandleFunc("/favorites/{name}", handler.RemoveFavorite).Methods("DELETE")
	v1.HandleFunc("/favorites/{name}/load", handler.LoadFavorite).Methods("POST")
	v1.HandleFunc("/theme/toggle", handler.ToggleTheme).Methods("POST")
	v1.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return router
}
