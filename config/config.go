// Package config loads the TOML settings that shape a shipwright session.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/shipwright/input"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "shipwright.toml"

// SourceDefaults marks a config built from embedded defaults only
const SourceDefaults = "defaults"

var ErrInvalid = errors.New("invalid config")

//go:embed default.toml
var defaultTOML []byte

type Config struct {
	Build     BuildConfig       `toml:"build"`
	Camera    CameraConfig      `toml:"camera"`
	Audio     AudioConfig       `toml:"audio"`
	Metrics   MetricsConfig     `toml:"metrics"`
	Log       LogConfig         `toml:"log"`
	Blueprint BlueprintConfig   `toml:"blueprint"`
	Keys      map[string]string `toml:"keys"`
}

type BuildConfig struct {
	GridCell float64 `toml:"grid_cell"`
	ShipName string  `toml:"ship_name"`
}

type CameraConfig struct {
	UnitsPerColumn float64 `toml:"units_per_column"`
	UnitsPerRow    float64 `toml:"units_per_row"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type MetricsConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// BlueprintConfig names outline files read at spawn and written on exit
type BlueprintConfig struct {
	Load string `toml:"load"`
	Save string `toml:"save"`
}

// Default returns the embedded defaults
func Default() Config {
	var c Config
	if err := decode(defaultTOML, &c); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return c
}

// Parse overlays data onto the defaults and validates the result
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := decode(data, &c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load resolves the config source: explicit path, then DefaultFile, then defaults
// Returns the source actually used
func Load(path string) (Config, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, "", fmt.Errorf("config read: %w", err)
		}
		c, err := Parse(data)
		return c, path, err
	}

	data, err := os.ReadFile(DefaultFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Default(), SourceDefaults, nil
	case err != nil:
		return Config{}, "", fmt.Errorf("config read: %w", err)
	}
	c, err := Parse(data)
	return c, DefaultFile, err
}

// Validate rejects settings the build tools cannot work with
func (c Config) Validate() error {
	if !(c.Build.GridCell > 0) || math.IsInf(c.Build.GridCell, 1) {
		return fmt.Errorf("%w: build.grid_cell must be positive, got %g", ErrInvalid, c.Build.GridCell)
	}
	if !(c.Camera.UnitsPerColumn > 0) || !(c.Camera.UnitsPerRow > 0) ||
		math.IsInf(c.Camera.UnitsPerColumn, 1) || math.IsInf(c.Camera.UnitsPerRow, 1) {
		return fmt.Errorf("%w: camera scale must be positive, got %g x %g",
			ErrInvalid, c.Camera.UnitsPerColumn, c.Camera.UnitsPerRow)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0,1], got %g", ErrInvalid, c.Audio.Volume)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses log.level as a slog level name
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return lvl, nil
}

// KeyTable returns the default bindings with [keys] applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	if len(c.Keys) == 0 {
		return input.DefaultKeyTable(), nil
	}
	override, err := input.KeyTableFromMap(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("config keys: %w", err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

func decode(data []byte, c *Config) error {
	return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(c)
}
