// Package config loads the lvphase tool configuration from JSON.
//
// Every field is optional; Get* methods fall back to the library defaults, so
// partial files are safe.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvphase/goldstein"
	"github.com/katalvlaran/lvphase/unwrap"
)

// Algorithm names accepted in the "algorithm" key.
const (
	AlgorithmItoh      = "itoh"
	AlgorithmGoldstein = "goldstein"
)

// Defaults for tool-level keys (library keys default to the library constants).
const (
	DefaultAlgorithm    = AlgorithmGoldstein
	DefaultRenderWidth  = 6.0 // inches
	DefaultRenderHeight = 6.0 // inches
	DefaultDBPath       = ""  // no history
	maxFileSize         = 1 << 20
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Algorithm        *string  `json:"algorithm,omitempty"`         // itoh | goldstein
	Epsilon          *float64 `json:"epsilon,omitempty"`           // residue tolerance
	MaxBoxSize       *int     `json:"max_box_size,omitempty"`      // 0 = max(rows, cols)
	Workers          *int     `json:"workers,omitempty"`           // 0 = GOMAXPROCS
	ColumnDifference *string  `json:"column_difference,omitempty"` // forward | backward
	ScaleMin         *float64 `json:"scale_min,omitempty"`         // gray 0 maps here
	ScaleMax         *float64 `json:"scale_max,omitempty"`         // gray 255 maps here
	RenderWidth      *float64 `json:"render_width,omitempty"`      // inches
	RenderHeight     *float64 `json:"render_height,omitempty"`     // inches
	DBPath           *string  `json:"db_path,omitempty"`
}

// Empty returns a Config with every field unset.
func Empty() *Config { return &Config{} }

// Load reads a Config from a .json file of at most 1 MiB and validates it.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every set field.
func (c *Config) Validate() error {
	if c.Algorithm != nil && *c.Algorithm != AlgorithmItoh && *c.Algorithm != AlgorithmGoldstein {
		return fmt.Errorf("%w: algorithm must be %q or %q, got %q", ErrInvalid, AlgorithmItoh, AlgorithmGoldstein, *c.Algorithm)
	}
	if c.Epsilon != nil && (*c.Epsilon < 0 || math.IsNaN(*c.Epsilon) || math.IsInf(*c.Epsilon, 0)) {
		return fmt.Errorf("%w: epsilon must be finite and non-negative, got %g", ErrInvalid, *c.Epsilon)
	}
	if c.MaxBoxSize != nil && *c.MaxBoxSize < 0 {
		return fmt.Errorf("%w: max_box_size must be non-negative, got %d", ErrInvalid, *c.MaxBoxSize)
	}
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalid, *c.Workers)
	}
	if c.ColumnDifference != nil {
		if _, err := parseColumnDifference(*c.ColumnDifference); err != nil {
			return err
		}
	}
	if lo, hi := c.GetScaleMin(), c.GetScaleMax(); !(lo < hi) {
		return fmt.Errorf("%w: scale_min must be below scale_max, got [%g, %g]", ErrInvalid, lo, hi)
	}
	if c.RenderWidth != nil && *c.RenderWidth <= 0 {
		return fmt.Errorf("%w: render_width must be positive, got %g", ErrInvalid, *c.RenderWidth)
	}
	if c.RenderHeight != nil && *c.RenderHeight <= 0 {
		return fmt.Errorf("%w: render_height must be positive, got %g", ErrInvalid, *c.RenderHeight)
	}

	return nil
}

func parseColumnDifference(s string) (unwrap.ColumnDifference, error) {
	switch s {
	case unwrap.Forward.String():
		return unwrap.Forward, nil
	case unwrap.Backward.String():
		return unwrap.Backward, nil
	default:
		return 0, fmt.Errorf("%w: column_difference must be %q or %q, got %q", ErrInvalid, unwrap.Forward, unwrap.Backward, s)
	}
}

// GetAlgorithm returns the algorithm name or the default.
func (c *Config) GetAlgorithm() string {
	if c.Algorithm == nil {
		return DefaultAlgorithm
	}
	return *c.Algorithm
}

// GetEpsilon returns the residue tolerance or the default.
func (c *Config) GetEpsilon() float64 {
	if c.Epsilon == nil {
		return goldstein.DefaultEpsilon
	}
	return *c.Epsilon
}

// GetMaxBoxSize returns the box-search bound or the default.
func (c *Config) GetMaxBoxSize() int {
	if c.MaxBoxSize == nil {
		return goldstein.DefaultMaxBoxSize
	}
	return *c.MaxBoxSize
}

// GetWorkers returns the worker bound or the default.
func (c *Config) GetWorkers() int {
	if c.Workers == nil {
		return unwrap.DefaultWorkers
	}
	return *c.Workers
}

// GetColumnDifference returns the Itoh column direction or the default.
func (c *Config) GetColumnDifference() unwrap.ColumnDifference {
	if c.ColumnDifference == nil {
		return unwrap.DefaultColumnDifference
	}
	d, err := parseColumnDifference(*c.ColumnDifference)
	if err != nil {
		return unwrap.DefaultColumnDifference
	}
	return d
}

// GetScaleMin returns the value gray level 0 maps to (default −π).
func (c *Config) GetScaleMin() float64 {
	if c.ScaleMin == nil {
		return -math.Pi
	}
	return *c.ScaleMin
}

// GetScaleMax returns the value gray level 255 maps to (default π).
func (c *Config) GetScaleMax() float64 {
	if c.ScaleMax == nil {
		return math.Pi
	}
	return *c.ScaleMax
}

// GetRenderWidth returns the plot width in inches.
func (c *Config) GetRenderWidth() float64 {
	if c.RenderWidth == nil {
		return DefaultRenderWidth
	}
	return *c.RenderWidth
}

// GetRenderHeight returns the plot height in inches.
func (c *Config) GetRenderHeight() float64 {
	if c.RenderHeight == nil {
		return DefaultRenderHeight
	}
	return *c.RenderHeight
}

// GetDBPath returns the run-history database path ("" disables history).
func (c *Config) GetDBPath() string {
	if c.DBPath == nil {
		return DefaultDBPath
	}
	return *c.DBPath
}

// ItohOptions translates the configuration into unwrap options.
func (c *Config) ItohOptions() []unwrap.Option {
	return []unwrap.Option{
		unwrap.WithWorkers(c.GetWorkers()),
		unwrap.WithColumnDifference(c.GetColumnDifference()),
	}
}

// GoldsteinOptions translates the configuration into goldstein options.
func (c *Config) GoldsteinOptions() []goldstein.Option {
	return []goldstein.Option{
		goldstein.WithEpsilon(c.GetEpsilon()),
		goldstein.WithMaxBoxSize(c.GetMaxBoxSize()),
		goldstein.WithWorkers(c.GetWorkers()),
	}
}
