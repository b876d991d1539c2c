package graphic

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/zyfsa/graphic/curve"
	"github.com/zyfsa/graphic/recording"
	"github.com/zyfsa/graphic/sphere"
)

// Configuration errors.
var (
	ErrUnknownFormat   = errors.New("graphic: unknown config format")
	ErrInvalidViewport = errors.New("graphic: viewport must be at least 1x1")
	ErrZeroDirection   = errors.New("graphic: light and view directions must be non-zero")
	ErrInvalidSetting  = errors.New("graphic: invalid setting")
)

// Config holds every tunable of a Canvas. It is loaded from TOML or YAML
// files; fields missing from a file keep their DefaultConfig value.
type Config struct {
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	Background string `toml:"background" yaml:"background"`

	Pen     PenConfig     `toml:"pen" yaml:"pen"`
	Ellipse EllipseConfig `toml:"ellipse" yaml:"ellipse"`

	// Light points from the light toward the scene, View from the scene
	// toward the viewer.
	Light [3]float64   `toml:"light" yaml:"light"`
	View  [3]float64   `toml:"view" yaml:"view"`
	Phong sphere.Phong `toml:"phong" yaml:"phong"`

	MaxRadiusFraction float64 `toml:"max_radius_fraction" yaml:"max_radius_fraction"`
	BezierMaxDepth    int     `toml:"bezier_max_depth" yaml:"bezier_max_depth"`
	FernScale         float64 `toml:"fern_scale" yaml:"fern_scale"`
	Seed              uint64  `toml:"seed" yaml:"seed"`
	Workers           int     `toml:"workers" yaml:"workers"`
}

// PenConfig is the initial stroke of a session.
type PenConfig struct {
	Color string `toml:"color" yaml:"color"`
	Width int    `toml:"width" yaml:"width"`
}

// EllipseConfig holds the parameters given to new ellipse elements.
type EllipseConfig struct {
	RA          int     `toml:"ra" yaml:"ra"`
	RB          int     `toml:"rb" yaml:"rb"`
	RotationDeg float64 `toml:"rotation" yaml:"rotation"`
}

// DefaultConfig returns an 800x600 white canvas, a one pixel black pen,
// 40x20 ellipses, light (-1, -1, 0) and view (0, 0, 1).
func DefaultConfig() Config {
	return Config{
		Width:             800,
		Height:            600,
		Background:        "#ffffff",
		Pen:               PenConfig{Color: "#000000", Width: 1},
		Ellipse:           EllipseConfig{RA: 40, RB: 20},
		Light:             [3]float64{-1, -1, 0},
		View:              [3]float64{0, 0, 1},
		Phong:             sphere.DefaultPhong(),
		MaxRadiusFraction: sphere.DefaultMaxRadiusFraction,
		BezierMaxDepth:    curve.DefaultBezierDepth,
		FernScale:         curve.DefaultFernScale,
	}
}

// LoadConfig reads a configuration file. The format is chosen by
// extension: .toml, .yaml or .yml. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return cfg, fmt.Errorf("graphic: read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("graphic: parse %s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path in the format implied by its extension.
func SaveConfig(cfg Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("graphic: encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidViewport, c.Width, c.Height)
	}
	if c.Light == ([3]float64{}) || c.View == ([3]float64{}) {
		return ErrZeroDirection
	}
	if _, err := ParseHex(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := ParseHex(c.Pen.Color); err != nil {
		return fmt.Errorf("pen color: %w", err)
	}
	if c.Pen.Width < 1 {
		return fmt.Errorf("%w: pen width %d", ErrInvalidSetting, c.Pen.Width)
	}
	if c.MaxRadiusFraction < 0 {
		return fmt.Errorf("%w: max_radius_fraction %g", ErrInvalidSetting, c.MaxRadiusFraction)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidSetting, c.Workers)
	}
	return nil
}

// Lighting returns the configured light and view directions.
func (c Config) Lighting() sphere.Lighting {
	return sphere.Lighting{
		Light: sphere.Vec3{X: c.Light[0], Y: c.Light[1], Z: c.Light[2]},
		View:  sphere.Vec3{X: c.View[0], Y: c.View[1], Z: c.View[2]},
	}
}

// Style returns the configured pen as a recording style.
func (c Config) Style() recording.Style {
	return recording.Style{Color: Hex(c.Pen.Color), Width: max(c.Pen.Width, 1)}
}

// replayer builds the replay settings described by c.
func (c Config) replayer() *recording.Replayer {
	return &recording.Replayer{
		Lighting:          c.Lighting(),
		Phong:             c.Phong,
		Bezier:            curve.BezierOptions{MaxDepth: c.BezierMaxDepth},
		FernScale:         c.FernScale,
		MaxRadiusFraction: c.MaxRadiusFraction,
		Workers:           c.Workers,
		Seed:              c.Seed,
	}
}
