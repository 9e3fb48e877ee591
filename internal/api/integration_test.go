package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexivanou/meteo-widget/internal/config"
	"github.com/alexivanou/meteo-widget/internal/database"
	"github.com/alexivanou/meteo-widget/internal/model"
	"github.com/alexivanou/meteo-widget/internal/repository"
	"github.com/alexivanou/meteo-widget/internal/service"
	"github.com/alexivanou/meteo-widget/internal/stats"
	"github.com/alexivanou/meteo-widget/internal/view"
	"github.com/alexivanou/meteo-widget/internal/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fakeCurrent = `{
	"name": "Paris",
	"sys": {"country": "FR"},
	"main": {"temp": 18.4},
	"wind": {"speed": 3.2},
	"weather": [{"icon": "01d", "description": "clear sky"}]
}`

const fakeForecast = `{"list": [
	{"dt_txt": "2024-05-01 09:00:00", "main": {"temp": 14.0}, "weather": [{"icon": "02d", "description": "few clouds"}]},
	{"dt_txt": "2024-05-01 12:00:00", "main": {"temp": 19.6}, "weather": [{"icon": "01d", "description": "clear sky"}]},
	{"dt_txt": "2024-05-02 12:00:00", "main": {"temp": 16.2}, "weather": [{"icon": "10d", "description": "light rain"}]}
]}`

type integrationStack struct {
	handler   http.Handler
	favorites *repository.FavoritesRepository
}

func setupIntegrationStack(t *testing.T, stored []string) *integrationStack {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	dbName := fmt.Sprintf("testdb_%d", rng.Int())

	cfg := config.DBConfig{
		Type: config.DBTypeMemory,
		Name: dbName,
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, cfg.Type))

	repos := repository.NewRepositories(db, cfg.Type)
	if stored != nil {
		require.NoError(t, repos.Favorites.Save(ctx, stored))
	}

	owm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Paris" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		switch r.URL.Path {
		case "/weather":
			w.Write([]byte(fakeCurrent))
		case "/forecast":
			w.Write([]byte(fakeForecast))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(owm.Close)

	client := weather.NewClient(config.WeatherConfig{
		APIKey:  "test-key",
		BaseURL: owm.URL,
		Timeout: 2 * time.Second,
	})

	logger := zap.NewNop()
	widget, err := service.NewWidget(ctx, client, repos.Favorites, logger)
	require.NoError(t, err)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	statsCollector := stats.NewCollector(db, cfg, widget)
	router := NewRouter(widget, statsCollector, renderer, "https://openweathermap.org/img/wn/", logger)

	return &integrationStack{handler: router, favorites: repos.Favorites}
}

func TestAPI_Integration_Search(t *testing.T) {
	stack := setupIntegrationStack(t, nil)

	req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"city":"Paris"}`))
	rr := httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var q model.QueryState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &q))
	assert.False(t, q.Loading)
	assert.False(t, q.Error)
	require.NotNil(t, q.Current)
	assert.Equal(t, "Paris", q.Current.City)
	require.Len(t, q.Forecast, 2)
	assert.Equal(t, "2024-05-01 12:00:00", q.Forecast[0].DtTxt)

	rr = httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Paris, FR")
	assert.Contains(t, body, "18°C")
	assert.Contains(t, body, "Vitesse du vent : 3.2 m/s")
	assert.Contains(t, body, "Mercredi 1 Mai")
	assert.Contains(t, body, "20°C")
}

func TestAPI_Integration_UnknownCity(t *testing.T) {
	stack := setupIntegrationStack(t, nil)

	req := httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"city":"Atlantis"}`))
	rr := httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var q model.QueryState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &q))
	assert.True(t, q.Error)
	assert.Nil(t, q.Current)
	assert.Empty(t, q.Forecast)

	rr = httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Contains(t, rr.Body.String(), view.ErrorText)
}

func TestAPI_Integration_Favorites(t *testing.T) {
	stack := setupIntegrationStack(t, []string{"Lyon"})
	ctx := context.Background()

	rr := httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/favorites", strings.NewReader(`{"name":"Paris"}`)))
	require.Equal(t, http.StatusCreated, rr.Code)

	stored, err := stack.favorites.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lyon", "Paris"}, stored)

	rr = httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/favorites", strings.NewReader(`{"name":"Paris"}`)))
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("DELETE", "/api/v1/favorites/Lyon", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	stored, err = stack.favorites.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris"}, stored)

	rr = httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/favorites/Paris/load", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var q model.QueryState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &q))
	require.NotNil(t, q.Current)
	assert.Equal(t, "Paris", q.Current.City)
}

func TestAPI_Integration_FormFlow(t *testing.T) {
	stack := setupIntegrationStack(t, nil)

	post := func(path, form string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", path, strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		stack.handler.ServeHTTP(rr, req)
		return rr
	}

	rr := post("/ui/search", "text=Paris&action=favorite")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	rr = post("/ui/search", "text=Paris&action=favorite")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	location := rr.Header().Get("Location")
	assert.Contains(t, location, "notice=")

	rr = httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("GET", location, nil))
	assert.Contains(t, rr.Body.String(), "Paris est déjà dans les favoris.")

	rr = post("/ui/theme", "")
	require.Equal(t, http.StatusSeeOther, rr.Code)

	rr = httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	body := rr.Body.String()
	assert.Contains(t, body, view.NightModeText)
	assert.Contains(t, body, "#2c2c2c")
}

func TestAPI_Integration_Stats(t *testing.T) {
	stack := setupIntegrationStack(t, []string{"Lyon", "Nice"})

	rr := httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/search", strings.NewReader(`{"city":"Atlantis"}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	stack.handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/stats", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var s stats.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &s))
	assert.Equal(t, "memory", s.Storage.Type)
	assert.Equal(t, int64(1), s.Storage.Keys)
	assert.Equal(t, int64(1), s.Widget.Searches)
	assert.Equal(t, int64(1), s.Widget.FailedSearches)
	assert.Equal(t, 2, s.Widget.Favorites)
}
