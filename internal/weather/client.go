package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexivanou/meteo-widget/internal/config"
	"github.com/alexivanou/meteo-widget/internal/model"
)

// ErrQueryFailed covers every way a provider query can fail: transport
// errors, unknown cities and malformed payloads alike.
var ErrQueryFailed = errors.New("weather query failed")

// Provider fetches current conditions and the daily forecast for a city
type Provider interface {
	Current(ctx context.Context, city string) (*model.CurrentWeather, error)
	Forecast(ctx context.Context, city string) ([]model.ForecastEntry, error)
}

// Client queries the OpenWeatherMap 2.5 API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Provider = (*Client)(nil)

// NewClient creates a client from configuration
func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []condition `json:"weather"`
}

type forecastResponse struct {
	List *[]forecastItem `json:"list"`
}

type forecastItem struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []condition `json:"weather"`
}

type condition struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Current fetches current conditions from /weather
func (c *Client) Current(ctx context.Context, city string) (*model.CurrentWeather, error) {
	var resp currentResponse
	if err := c.get(ctx, "weather", city, &resp); err != nil {
		return nil, err
	}

	if resp.Name == "" || len(resp.Weather) == 0 {
		return nil, fmt.Errorf("%w: current conditions payload is incomplete", ErrQueryFailed)
	}

	return &model.CurrentWeather{
		City:        resp.Name,
		Country:     resp.Sys.Country,
		Temperature: resp.Main.Temp,
		WindSpeed:   resp.Wind.Speed,
		Icon:        resp.Weather[0].Icon,
		Description: resp.Weather[0].Description,
	}, nil
}

// Forecast fetches the 5-day/3-hour feed from /forecast and keeps the noon readings
func (c *Client) Forecast(ctx context.Context, city string) ([]model.ForecastEntry, error) {
	var resp forecastResponse
	if err := c.get(ctx, "forecast", city, &resp); err != nil {
		return nil, err
	}

	if resp.List == nil {
		return nil, fmt.Errorf("%w: forecast payload has no list", ErrQueryFailed)
	}

	raw := make([]model.ForecastEntry, 0, len(*resp.List))
	for i, item := range *resp.List {
		if len(item.Weather) == 0 {
			return nil, fmt.Errorf("%w: forecast entry %d has no weather", ErrQueryFailed, i)
		}
		raw = append(raw, model.ForecastEntry{
			DtTxt:       item.DtTxt,
			Temperature: item.Main.Temp,
			Icon:        item.Weather[0].Icon,
			Description: item.Weather[0].Description,
		})
	}

	return NoonEntries(raw), nil
}

func (c *Client) get(ctx context.Context, endpoint, city string, out interface{}) error {
	params := url.Values{}
	params.Add("q", city)
	params.Add("units", "metric")
	params.Add("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrQueryFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrQueryFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrQueryFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrQueryFailed, endpoint, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to parse %s response: %v", ErrQueryFailed, endpoint, err)
	}
	return nil
}
