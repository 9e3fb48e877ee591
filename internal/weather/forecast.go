package weather

import (
	"strings"
	"time"

	"github.com/alexivanou/meteo-widget/internal/model"
)

const (
	dtTxtLayout = "2006-01-02 15:04:05"
	noonTime    = "12:00:00"
	iconSuffix  = "@2x.png"
)

// NoonEntries keeps the readings taken at 12:00:00, at most one per date.
// Timestamps are read in the local zone, the way the provider's dt_txt is shown.
func NoonEntries(raw []model.ForecastEntry) []model.ForecastEntry {
	days := make(map[string]bool)
	result := make([]model.ForecastEntry, 0, len(raw)/8+1)

	for _, entry := range raw {
		dtTxt := strings.TrimSpace(entry.DtTxt)
		date, clock, ok := strings.Cut(dtTxt, " ")
		if !ok || clock != noonTime || days[date] {
			continue
		}

		ts, err := time.ParseInLocation(dtTxtLayout, dtTxt, time.Local)
		if err != nil {
			continue
		}

		days[date] = true
		entry.Timestamp = ts
		result = append(result, entry)
	}

	return result
}

// IconURL builds the image URL for a provider icon code
func IconURL(base, code string) string {
	return base + code + iconSuffix
}
