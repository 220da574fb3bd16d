// Package config loads the fixture dimensions and the workpiece outline
package config

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gomoi/internal/fixture"
	"github.com/alexiusacademia/gomoi/internal/inertia"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the analysis setup
type Config struct {
	Fixtures  fixture.Dimensions `yaml:"fixtures"`
	Workpiece [][2]float64       `yaml:"workpiece"` // outline vertices (mm)
}

// Default returns the standard cup sizes and the reference workpiece plate
func Default() *Config {
	return &Config{
		Fixtures: fixture.DefaultDimensions(),
		Workpiece: [][2]float64{
			{665, 394},
			{20, 262},
			{20, 135},
			{665, 4},
			{689, 17},
			{689, 380},
		},
	}
}

// Load reads a YAML config file over the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read config file")
	}
	return Parse(data)
}

// Parse decodes YAML config data over the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that dimensions are positive and the workpiece is a polygon
func (c *Config) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"fixtures.square_side", c.Fixtures.SquareSide},
		{"fixtures.rect_width", c.Fixtures.RectWidth},
		{"fixtures.rect_height", c.Fixtures.RectHeight},
	}
	for _, d := range dims {
		if d.v <= 0 {
			return &ValidationError{fmt.Sprintf("%s must be positive", d.name)}
		}
	}
	if len(c.WorkpieceContour()) < 4 {
		return &ValidationError{"workpiece must have at least 3 vertices"}
	}
	return nil
}

// WorkpieceContour returns the workpiece outline as a closed contour
func (c *Config) WorkpieceContour() inertia.Contour {
	out := make(inertia.Contour, 0, len(c.Workpiece)+1)
	for _, v := range c.Workpiece {
		out = append(out, inertia.Vertex{X: v[0], Y: v[1]})
	}
	return out.Close()
}

// ValidationError represents an invalid configuration
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
