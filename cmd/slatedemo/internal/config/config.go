// Package config reads the optional slate.yaml demo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-slate/slate/pkg/geometry"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/screen"
)

// Config represents the optional slate.yaml configuration.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
}

// ScreenConfig configures the demo's simulated display.
type ScreenConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
	// Format is one of argb32, rgb24, rgb16, rgb30.
	Format string  `yaml:"format,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`
	// Rotation is the display rotation in degrees: 0, 90, 180, or 270.
	Rotation int `yaml:"rotation,omitempty"`
	// Background is a hex color such as "#202020".
	Background string `yaml:"background,omitempty"`
}

// Resolved contains resolved configuration values with defaults applied.
type Resolved struct {
	Size       geometry.Size
	Format     graphics.PixelFormat
	Scale      float64
	Rotation   screen.Rotation
	Background graphics.Color
}

// LoadOptional reads slate.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "slate.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read slate.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse slate.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads slate.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Size:       geometry.Size{Width: 800, Height: 480},
		Format:     graphics.ARGB32,
		Scale:      1,
		Background: graphics.RGB(0x20, 0x20, 0x20),
	}
	if cfg.Screen.Width > 0 {
		r.Size.Width = cfg.Screen.Width
	}
	if cfg.Screen.Height > 0 {
		r.Size.Height = cfg.Screen.Height
	}
	if cfg.Screen.Scale > 0 {
		r.Scale = cfg.Screen.Scale
	}
	if cfg.Screen.Format != "" {
		r.Format, err = parseFormat(cfg.Screen.Format)
		if err != nil {
			return nil, err
		}
	}
	r.Rotation, err = parseRotation(cfg.Screen.Rotation)
	if err != nil {
		return nil, err
	}
	if cfg.Screen.Background != "" {
		r.Background, err = parseColor(cfg.Screen.Background)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func parseFormat(s string) (graphics.PixelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "argb32":
		return graphics.ARGB32, nil
	case "rgb24":
		return graphics.RGB24, nil
	case "rgb16":
		return graphics.RGB16, nil
	case "rgb30":
		return graphics.RGB30, nil
	default:
		return 0, fmt.Errorf("unknown pixel format %q", s)
	}
}

func parseRotation(deg int) (screen.Rotation, error) {
	switch deg {
	case 0:
		return screen.Rotate0, nil
	case 90:
		return screen.Rotate90, nil
	case 180:
		return screen.Rotate180, nil
	case 270:
		return screen.Rotate270, nil
	default:
		return 0, fmt.Errorf("invalid rotation %d, want 0/90/180/270", deg)
	}
}

func parseColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q, want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return graphics.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
