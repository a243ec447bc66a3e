package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// DefaultRadiusPresets are the circle radii offered by the preset selector, in meters
var DefaultRadiusPresets = []float64{
	50, 100, 200, 300, 400, 500,
	1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000,
	15000, 20000, 25000, 30000, 35000, 40000, 45000, 50000,
	100000,
}

// Config holds all application configuration.
type Config struct {
	Log           LogConfig       `mapstructure:"log"`
	Tolerance     ToleranceConfig `mapstructure:"tolerance"`
	RadiusPresets []float64       `mapstructure:"radius_presets"`
	View          ViewConfig      `mapstructure:"view"`
	Session       SessionConfig   `mapstructure:"session"`
}

// LogConfig selects the slog level and handler format
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ToleranceConfig holds the hit-test and click-vs-drag thresholds in ground meters.
// A positive Pixels value makes the desktop host derive both from the zoom level instead.
type ToleranceConfig struct {
	HitMeters  float64 `mapstructure:"hit_meters"`
	MoveMeters float64 `mapstructure:"move_meters"`
	Pixels     float64 `mapstructure:"pixels"`
}

// ViewConfig is the initial map center and zoom of the desktop host
type ViewConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	Zoom      float64 `mapstructure:"zoom"`
}

// SessionConfig holds the tool a new session starts with
type SessionConfig struct {
	Tool string `mapstructure:"tool"`
}

// Load reads configuration from defaults, an optional file and environment variables.
// An empty path searches for gomeasure.yaml in . and ./configs.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("tolerance.hit_meters", 10.0)
	v.SetDefault("tolerance.move_meters", 8.0)
	v.SetDefault("tolerance.pixels", 0.0)
	v.SetDefault("radius_presets", DefaultRadiusPresets)
	v.SetDefault("view.latitude", 40.41831)
	v.SetDefault("view.longitude", -3.70275)
	v.SetDefault("view.zoom", 10.0)
	v.SetDefault("session.tool", "area")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("gomeasure")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: GOMEASURE_TOLERANCE_HIT_METERS → tolerance.hit_meters
	v.SetEnvPrefix("GOMEASURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration without reading files or the environment
func Default() *Config {
	return &Config{
		Log:           LogConfig{Level: "info", Format: "text"},
		Tolerance:     ToleranceConfig{HitMeters: 10, MoveMeters: 8},
		RadiusPresets: append([]float64(nil), DefaultRadiusPresets...),
		View:          ViewConfig{Latitude: 40.41831, Longitude: -3.70275, Zoom: 10},
		Session:       SessionConfig{Tool: "area"},
	}
}

// Validate checks that every configuration field is sane and reports all violations at once.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if !positive(c.Tolerance.HitMeters) {
		errs = append(errs, fmt.Sprintf("tolerance.hit_meters must be positive, got %v", c.Tolerance.HitMeters))
	}
	if !positive(c.Tolerance.MoveMeters) {
		errs = append(errs, fmt.Sprintf("tolerance.move_meters must be positive, got %v", c.Tolerance.MoveMeters))
	}
	if c.Tolerance.Pixels < 0 || math.IsNaN(c.Tolerance.Pixels) {
		errs = append(errs, fmt.Sprintf("tolerance.pixels must not be negative, got %v", c.Tolerance.Pixels))
	}
	for _, r := range c.RadiusPresets {
		if !positive(r) {
			errs = append(errs, fmt.Sprintf("radius_presets must be positive, got %v", r))
			break
		}
	}
	if !sort.Float64sAreSorted(c.RadiusPresets) {
		errs = append(errs, "radius_presets must be in ascending order")
	}
	if c.View.Latitude < -90 || c.View.Latitude > 90 {
		errs = append(errs, fmt.Sprintf("view.latitude must be -90..90, got %v", c.View.Latitude))
	}
	if c.View.Longitude < -180 || c.View.Longitude > 180 {
		errs = append(errs, fmt.Sprintf("view.longitude must be -180..180, got %v", c.View.Longitude))
	}
	if c.View.Zoom < 0 || c.View.Zoom > 22 {
		errs = append(errs, fmt.Sprintf("view.zoom must be 0-22, got %v", c.View.Zoom))
	}
	switch strings.ToLower(c.Session.Tool) {
	case "area", "polygon", "radius", "circle", "distance", "polyline", "path":
	default:
		errs = append(errs, fmt.Sprintf("session.tool must be area, radius or distance, got %q", c.Session.Tool))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// PresetLabel renders a preset radius for the selector, e.g. "50 m" or "15 km"
func PresetLabel(meters float64) string {
	if meters >= 1000 {
		return strconv.FormatFloat(meters/1000, 'f', -1, 64) + " km"
	}
	return strconv.FormatFloat(meters, 'f', -1, 64) + " m"
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
