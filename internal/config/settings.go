// internal/config/settings.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go-minimap/internal/minimap"
)

var (
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidInterval = errors.New("invalid update rate")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidAlpha    = errors.New("invalid alpha")
)

// Settings is the runtime minimap configuration. Fields missing from a loaded file
// keep their defaults.
type Settings struct {
	WorldWidth    float64 `json:"world_width"`
	WorldHeight   float64 `json:"world_height"`
	GridCellSize  float64 `json:"grid_cell_size"`
	DisplayWidth  int     `json:"display_width"`
	DisplayHeight int     `json:"display_height"`
	UpdateRate    float64 `json:"update_rate"`
	Movers        int     `json:"movers"`
	MaxSpeed      float64 `json:"max_speed"`
	Seed          int64   `json:"seed"`
	WallColor     string  `json:"wall_color"`
	WallAlpha     float64 `json:"wall_alpha"`
	UserColor     string  `json:"user_color"`
	ClearColor    string  `json:"clear_color"`
}

// DefaultSettings mirrors the compile-time constants.
func DefaultSettings() Settings {
	return Settings{
		WorldWidth:    WorldWidth,
		WorldHeight:   WorldHeight,
		GridCellSize:  GridCellSize,
		DisplayWidth:  ScreenWidth / DisplayDivisor,
		DisplayHeight: ScreenHeight / DisplayDivisor,
		UpdateRate:    UpdateRate,
		Movers:        NumMovers,
		MaxSpeed:      MoverMaxSpeed,
		Seed:          Seed,
		WallColor:     WallColor.String(),
		WallAlpha:     WallAlpha,
		UserColor:     UserColor.String(),
		ClearColor:    ClearColor.String(),
	}
}

// LoadSettings reads a JSON settings file over the defaults and validates it.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	file, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(file, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects values the minimap cannot work with. Sizes are checked
// here so the compositor never sees them.
func (s Settings) Validate() error {
	if s.WorldWidth <= 0 || s.WorldHeight <= 0 {
		return fmt.Errorf("%w: world %vx%v", ErrInvalidSize, s.WorldWidth, s.WorldHeight)
	}
	if s.GridCellSize <= 0 {
		return fmt.Errorf("%w: grid cell %v", ErrInvalidSize, s.GridCellSize)
	}
	if s.DisplayWidth < 1 || s.DisplayHeight < 1 {
		return fmt.Errorf("%w: display %dx%d", ErrInvalidSize, s.DisplayWidth, s.DisplayHeight)
	}
	if s.UpdateRate <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, s.UpdateRate)
	}
	if s.Movers < 0 {
		return fmt.Errorf("%w: %d movers", ErrInvalidSize, s.Movers)
	}
	if s.WallAlpha < 0 || s.WallAlpha > 1 {
		return fmt.Errorf("%w: wall alpha %v", ErrInvalidAlpha, s.WallAlpha)
	}
	for name, v := range map[string]string{"wall_color": s.WallColor, "user_color": s.UserColor, "clear_color": s.ClearColor} {
		if _, err := minimap.ParseColor(v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidColor, name, err)
		}
	}
	return nil
}

// Grid returns the world-to-grid conversion.
func (s Settings) Grid() minimap.Grid {
	return minimap.Grid{CellSize: s.GridCellSize}
}

// SurfaceSize returns ceil(world / cell) on each axis.
func (s Settings) SurfaceSize() (int, int) {
	return s.Grid().SurfaceSize(s.WorldWidth, s.WorldHeight)
}

// UpdateInterval converts the update rate to a throttle interval.
func (s Settings) UpdateInterval() time.Duration {
	return time.Duration(float64(time.Second) / s.UpdateRate)
}

// MinimapOptions turns the color settings into compositor options. Call
// Validate first; unparsable colors fall back to the compositor defaults.
func (s Settings) MinimapOptions() []minimap.Option {
	opts := []minimap.Option{minimap.WithWallAlpha(s.WallAlpha)}
	if c, err := minimap.ParseColor(s.WallColor); err == nil {
		opts = append(opts, minimap.WithWallColor(c))
	}
	if c, err := minimap.ParseColor(s.UserColor); err == nil {
		opts = append(opts, minimap.WithUserColor(c))
	}
	if c, err := minimap.ParseColor(s.ClearColor); err == nil {
		opts = append(opts, minimap.WithClearColor(c))
	}
	return append(opts, minimap.WithPoolSize(s.Movers+WallRingSteps))
}
