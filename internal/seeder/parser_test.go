package seeder

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexivanou/meteo-widget/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geonamesRows = "2988507\tParis\tParis\tLutece\t48.85341\t2.3488\tP\tPPLC\tFR\t\t11\t75\t751\t75056\t2138551\t\t42\tEurope/Paris\t2024-01-01\n" +
	"3017103\tGif-sur-Yvette\tGif-sur-Yvette\t\t48.70\t2.13\tP\tPPL\tFR\t\t11\t91\t913\t91272\t21000\t\t\tEurope/Paris\t2024-01-01\n"

func TestParser_ParseReader(t *testing.T) {
	tests := []struct {
		name          string
		minPopulation int
		input         string
		expected      []string
	}{
		{
			name:     "plain names with comments and blanks",
			input:    "# my cities\nParis\n\n  Lyon  \nParis\n",
			expected: []string{"Paris", "Lyon"},
		},
		{
			name:          "geonames rows filtered by population",
			minPopulation: 100000,
			input:         geonamesRows,
			expected:      []string{"Paris"},
		},
		{
			name:     "mixed formats",
			input:    "Nice\n" + geonamesRows,
			expected: []string{"Nice", "Paris", "Gif-sur-Yvette"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(config.SeederConfig{MinPopulation: tt.minPopulation})
			names, err := parser.ParseReader(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestParser_ParseFavorites(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("text file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "favorites.txt")
		require.NoError(t, os.WriteFile(path, []byte("Marseille\nToulouse\n"), 0644))

		names, err := NewParser(config.SeederConfig{}).ParseFavorites(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Marseille", "Toulouse"}, names)
	})

	t.Run("zip archive", func(t *testing.T) {
		path := filepath.Join(tmpDir, "cities.zip")
		f, err := os.Create(path)
		require.NoError(t, err)
		zw := zip.NewWriter(f)
		w, err := zw.Create("cities15000.txt")
		require.NoError(t, err)
		_, err = w.Write([]byte(geonamesRows))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		names, err := NewParser(config.SeederConfig{MinPopulation: 15000}).ParseFavorites(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Paris", "Gif-sur-Yvette"}, names)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewParser(config.SeederConfig{}).ParseFavorites(filepath.Join(tmpDir, "absent.txt"))
		assert.Error(t, err)
	})
}

func TestMerge(t *testing.T) {
	assert.Equal(t, []string{"Paris", "Lyon", "Nice"}, Merge([]string{"Paris", "Lyon"}, []string{"Lyon", "Nice"}))
	assert.Equal(t, []string{}, Merge(nil, nil))
}
