// Package store provides loading of chart presentation data.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"opus/dashboard/internal/logging"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DefaultChartPalette is the fixed palette cycled through when assigning
// colors to category chart slices.
var DefaultChartPalette = []string{
	"#2563EB",
	"#0D9488",
	"#F59E0B",
	"#DC2626",
	"#16A34A",
	"#7C3AED",
	"#DB2777",
}

// paletteFile is the on-disk shape of a palette override file.
type paletteFile struct {
	Charts []string `yaml:"charts"`
}

// PaletteStore manages loading of the chart color palette, with an optional
// YAML override file.
type PaletteStore struct {
	PaletteFilePath string
}

// NewPaletteStore creates a store for chart palette data. An empty path means
// the standard locations are searched for palette.yaml.
func NewPaletteStore(paletteFilePath string) *PaletteStore {
	return &PaletteStore{PaletteFilePath: paletteFilePath}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *PaletteStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "opus-dashboard", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadPalette returns the chart palette. A missing override file is not an
// error; the fixed default palette is returned instead.
func (s *PaletteStore) LoadPalette() ([]string, error) {
	filename := s.PaletteFilePath
	if filename == "" {
		filename = "palette.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Palette file not found: %s, using default palette", filename)
			return DefaultChartPalette, nil
		}
		return nil, fmt.Errorf("error resolving palette file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 - resolved from known locations
	if err != nil {
		return nil, fmt.Errorf("error reading palette file: %w", err)
	}

	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing palette file: %w", err)
	}

	if len(file.Charts) == 0 {
		log.Warnf("Palette file %s defines no colors, using default palette", filePath)
		return DefaultChartPalette, nil
	}

	log.WithField("count", len(file.Charts)).Debug("Loaded chart palette override")
	return file.Charts, nil
}
