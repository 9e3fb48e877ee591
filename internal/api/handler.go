package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/alexivanou/meteo-widget/internal/model"
	"github.com/alexivanou/meteo-widget/internal/service"
	"github.com/alexivanou/meteo-widget/internal/view"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler handles HTTP requests
type Handler struct {
	service  service.ServiceInterface
	iconBase string
	now      func() time.Time
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface, iconBase string, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		iconBase: iconBase,
		now:      time.Now,
		logger:   logger,
	}
}

// GetState handles GET /api/v1/state
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.State())
}

// GetView handles GET /api/v1/view
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, view.Build(h.service.State(), h.iconBase, h.now()))
}

// Search handles POST /api/v1/search. A failed query is reported in the
// state, not as an HTTP error.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, h.service.Search(r.Context(), req.City))
}

// SetInput handles PUT /api/v1/input
func (h *Handler) SetInput(w http.ResponseWriter, r *http.Request) {
	var req model.InputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.service.SetInput(req.Text)
	h.writeJSON(w, http.StatusOK, h.service.State())
}

// SubmitInput handles POST /api/v1/input/submit
func (h *Handler) SubmitInput(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Submit(r.Context()))
}

// ListFavorites handles GET /api/v1/favorites
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites := h.service.Favorites()
	h.writeJSON(w, http.StatusOK, model.FavoritesResponse{Favorites: favorites, Count: len(favorites)})
}

// AddFavorite handles POST /api/v1/favorites. Without a name in the body
// the current search input is added.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req model.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var (
		favorites []string
		err       error
	)
	name := req.Name
	if name == "" {
		name, favorites, err = h.service.AddFavoriteFromInput(r.Context())
	} else {
		favorites, err = h.service.AddFavorite(r.Context(), name)
	}

	if err != nil {
		h.writeFavoriteError(w, err, name)
		return
	}

	h.writeJSON(w, http.StatusCreated, model.FavoritesResponse{Favorites: favorites, Count: len(favorites)})
}

// RemoveFavorite handles DELETE /api/v1/favorites/{name}
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	favorites, err := h.service.RemoveFavorite(r.Context(), name)
	if err != nil {
		h.logger.Error("Error removing favorite", zap.String("city", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, model.FavoritesResponse{Favorites: favorites, Count: len(favorites)})
}

// LoadFavorite handles POST /api/v1/favorites/{name}/load
func (h *Handler) LoadFavorite(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.writeJSON(w, http.StatusOK, h.service.LoadFavorite(r.Context(), name))
}

// ToggleTheme handles POST /api/v1/theme/toggle
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.service.ToggleTheme()
	h.writeJSON(w, http.StatusOK, h.service.State())
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handler) writeFavoriteError(w http.ResponseWriter, err error, name string) {
	switch {
	case errors.Is(err, service.ErrEmptyFavorite):
		h.writeJSON(w, http.StatusBadRequest, model.Notice{Message: service.NoticeMessage(err, name)})
	case errors.Is(err, service.ErrDuplicateFavorite):
		h.writeJSON(w, http.StatusConflict, model.Notice{Message: service.NoticeMessage(err, name)})
	default:
		h.logger.Error("Error adding favorite", zap.String("city", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Error encoding response", zap.Error(err))
	}
}
