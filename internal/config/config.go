// Package config holds the slicer tool settings.
package config

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/tileslicer/grid"
	"github.com/milk9111/tileslicer/slicer"
)

// Config holds all tool settings.
type Config struct {
	Slice   SliceConfig   `yaml:"slice"`
	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// Vec is an integer pair written as {x, y} in YAML and "XxY" on the
// command line.
type Vec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (v Vec) Point() image.Point {
	return image.Pt(v.X, v.Y)
}

func (v *Vec) String() string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%dx%d", v.X, v.Y)
}

// Set parses "16x16" or "16,16".
func (v *Vec) Set(s string) error {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == 'x' || r == 'X' || r == ',' })
	if len(parts) != 2 {
		return fmt.Errorf("config: expected WxH, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("config: bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("config: bad y in %q: %w", s, err)
	}
	v.X, v.Y = x, y
	return nil
}

// PivotConfig is the normalized sprite anchor.
type PivotConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SliceConfig mirrors the slicer window fields.
type SliceConfig struct {
	Cell       Vec         `yaml:"cell"`
	Padding    Vec         `yaml:"padding"`
	Offset     Vec         `yaml:"offset"`
	Margin     Vec         `yaml:"margin"`
	Fixed      bool        `yaml:"fixed"`
	FixedCells Vec         `yaml:"fixed_cells"`
	Pivot      PivotConfig `yaml:"pivot"`
	BaseName   string      `yaml:"base_name"`
	// EmitAllWhenUnreadable keeps every cell when the pixels cannot be read
	// instead of failing.
	EmitAllWhenUnreadable bool `yaml:"emit_all_when_unreadable"`
}

// OutputConfig controls where the import definition goes.
type OutputConfig struct {
	Path            string `yaml:"path"`
	CopyToClipboard bool   `yaml:"copy_to_clipboard"`
	// ForceReadable asks the importer to keep the texture's pixels readable
	// so later slicing passes can run the emptiness check.
	ForceReadable bool `yaml:"force_readable"`
}

// WatchConfig controls re-slicing on file changes.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the settings the slicer window opens with.
func Default() *Config {
	return &Config{
		Slice: SliceConfig{
			Cell:       Vec{X: 16, Y: 16},
			FixedCells: Vec{X: 1, Y: 1},
			Pivot:      PivotConfig{X: 0.5, Y: 0.5},
		},
		Output: OutputConfig{
			ForceReadable: true,
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Grid returns the grid configuration with the field clamps applied.
func (s SliceConfig) Grid() grid.Config {
	return grid.Config{
		Cell:       s.Cell.Point(),
		Padding:    s.Padding.Point(),
		Offset:     s.Offset.Point(),
		Margin:     s.Margin.Point(),
		Fixed:      s.Fixed,
		FixedCells: s.FixedCells.Point(),
	}.Normalize()
}

// Options returns slicer options with the pivot clamped to [0,1].
// baseName is used when the config leaves the base name empty.
func (s SliceConfig) Options(baseName string) slicer.Options {
	opts := slicer.Options{
		Pivot:    slicer.Pivot{X: clamp01(s.Pivot.X), Y: clamp01(s.Pivot.Y)},
		BaseName: s.BaseName,
	}
	if opts.BaseName == "" {
		opts.BaseName = baseName
	}
	if s.EmitAllWhenUnreadable {
		opts.Fallback = slicer.FallbackEmitAll
	}
	return opts
}

func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}
