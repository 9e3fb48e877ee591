package view

import (
	"time"

	"github.com/alexivanou/meteo-widget/internal/model"
	"github.com/alexivanou/meteo-widget/internal/weather"
)

const (
	Title           = "Application Météo grp204"
	FavoritesTitle  = "Villes favorites"
	ForecastTitle   = "Prévisions pour les 5 prochains jours"
	SearchHint      = "Entrez le nom de la ville..."
	AddFavoriteText = "Ajouter aux favoris"
	LoadingText     = "Chargement..."
	ErrorText       = "Ville introuvable"
	DayModeText     = "Mode Matin"
	NightModeText   = "Mode Nuit"
)

// Theme holds the page colours for one mode
type Theme struct {
	DayMode    bool   `json:"day_mode"`
	Label      string `json:"label"`
	Background string `json:"background"`
	Color      string `json:"color"`
}

// Card is one rendered weather reading
type Card struct {
	Heading     string `json:"heading,omitempty"`
	Date        string `json:"date"`
	IconURL     string `json:"icon_url"`
	IconAlt     string `json:"icon_alt"`
	Temperature string `json:"temperature"`
	Wind        string `json:"wind,omitempty"`
	Description string `json:"description"`
}

// Page is the display-ready widget
type Page struct {
	Title     string   `json:"title"`
	Theme     Theme    `json:"theme"`
	Input     string   `json:"input"`
	Favorites []string `json:"favorites"`
	Loading   string   `json:"loading,omitempty"`
	Error     string   `json:"error,omitempty"`
	Current   *Card    `json:"current,omitempty"`
	Forecast  []Card   `json:"forecast"`
}

// Build turns a widget snapshot into display strings. now dates the current card.
func Build(state model.WidgetState, iconBase string, now time.Time) Page {
	page := Page{
		Title:     Title,
		Theme:     themeFor(state.DayMode),
		Input:     state.Input,
		Favorites: state.Favorites,
		Forecast:  make([]Card, 0, len(state.Weather.Forecast)),
	}

	if state.Weather.Loading {
		page.Loading = LoadingText
	}
	if state.Weather.Error {
		page.Error = ErrorText
	}

	if c := state.Weather.Current; c != nil {
		page.Current = &Card{
			Heading:     c.City + ", " + c.Country,
			Date:        FormatDate(now),
			IconURL:     weather.IconURL(iconBase, c.Icon),
			IconAlt:     c.Description,
			Temperature: FormatTemperature(c.Temperature),
			Wind:        FormatWind(c.WindSpeed),
			Description: c.Description,
		}
	}

	for _, day := range state.Weather.Forecast {
		page.Forecast = append(page.Forecast, Card{
			Date:        FormatDate(day.Timestamp),
			IconURL:     weather.IconURL(iconBase, day.Icon),
			IconAlt:     day.Description,
			Temperature: FormatTemperature(day.Temperature),
			Description: day.Description,
		})
	}

	return page
}

func themeFor(dayMode bool) Theme {
	if dayMode {
		return Theme{DayMode: true, Label: DayModeText, Background: "#ffffff", Color: "#000"}
	}
	return Theme{DayMode: false, Label: NightModeText, Background: "#2c2c2c", Color: "#fff"}
}
