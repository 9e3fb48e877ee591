package seeder

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexivanou/meteo-widget/internal/config"
)

// geonamesColumns is the column count of a GeoNames cities dump row
const geonamesColumns = 15

// Parser reads favorites import files
type Parser struct {
	minPopulation int
}

// NewParser creates a new parser instance with config
func NewParser(seederCfg config.SeederConfig) *Parser {
	return &Parser{minPopulation: seederCfg.MinPopulation}
}

// ParseFavorites reads city names from a text file or a zip holding one.
// Lines are either a plain city name or a GeoNames tab-separated row.
func (p *Parser) ParseFavorites(path string) ([]string, error) {
	if strings.HasSuffix(path, ".zip") {
		return p.parseFromZip(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return p.ParseReader(file)
}

func (p *Parser) parseFromZip(zipPath string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if strings.HasSuffix(f.Name, ".txt") {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open file in zip: %w", err)
			}
			defer rc.Close()
			return p.ParseReader(rc)
		}
	}

	return nil, fmt.Errorf("no txt file found in zip")
}

// ParseReader parses favorites from any reader, deduplicated in file order
func (p *Parser) ParseReader(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	var names []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blanks and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, ok := p.parseLine(line)
		if ok {
			names = append(names, name)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan favorites: %w", err)
	}

	return Merge(nil, names), nil
}

func (p *Parser) parseLine(line string) (string, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) < geonamesColumns {
		return line, true
	}

	population, err := strconv.Atoi(parts[14])
	if err != nil || population < p.minPopulation {
		return "", false
	}

	name := strings.TrimSpace(parts[1])
	return name, name != ""
}

// Merge appends the imported names missing from existing, keeping order
func Merge(existing, imported []string) []string {
	seen := make(map[string]bool, len(existing)+len(imported))
	result := make([]string, 0, len(existing)+len(imported))

	for _, name := range append(append([]string{}, existing...), imported...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
