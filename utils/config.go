package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Variants of the visualizer
const (
	VariantStatic = "static" // random board, never evolves
	VariantLife   = "life"   // board evolves on every input
	VariantCell   = "cell"   // single cell demo
)

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Scale          int           `json:"scale"`
	Title          string        `json:"title"`
	Variant        string        `json:"variant"`
	Headless       bool          `json:"headless"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Seed           int64         `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          320,
		Height:         240,
		Scale:          2,
		Title:          "Game of Life",
		Variant:        VariantLife,
		Headless:       false,
		FrameRate:      0, // step on input only
		MaxGenerations: 0,
		Seed:           0,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// IsNotExist reports whether a LoadConfig error means the file is missing
func IsNotExist(err error) bool {
	return os.IsNotExist(errors.Cause(err))
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("[Validate] negative grid size %dx%d", c.Width, c.Height)
	case !c.Headless && (c.Width == 0 || c.Height == 0):
		return errors.Errorf("[Validate] a window needs a non-empty grid, got %dx%d", c.Width, c.Height)
	case c.Scale < 1:
		return errors.Errorf("[Validate] scale must be at least 1, got %d", c.Scale)
	case c.FrameRate < 0:
		return errors.Errorf("[Validate] negative frame rate %s", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] negative max generations %d", c.MaxGenerations)
	}

	switch c.Variant {
	case VariantStatic, VariantLife, VariantCell:
		return nil
	default:
		return errors.Errorf("[Validate] unknown variant %q", c.Variant)
	}
}
