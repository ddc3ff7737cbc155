// Package slicer cuts a sprite sheet into named sprite records along a
// grid layout, skipping cells that hold no visible pixels.
package slicer

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/milk9111/tileslicer/grid"
	"github.com/milk9111/tileslicer/sheet"
)

// AlignmentCustom marks a record whose pivot is given explicitly rather
// than by a named anchor.
const AlignmentCustom = 9

// DefaultBaseName is used when Options.BaseName is empty.
const DefaultBaseName = "Sprite"

var (
	ErrInvalidPivot = errors.New("slicer: pivot must be within [0,1]")
	ErrCannotVerify = errors.New("slicer: cannot verify emptiness")
)

// Pivot is a normalized anchor point inside a sprite.
type Pivot struct {
	X, Y float64
}

// Center is the pivot used when none is configured.
var Center = Pivot{X: 0.5, Y: 0.5}

// Record is one sprite cut out of the sheet.
type Record struct {
	Name      string
	Rect      image.Rectangle
	Pivot     Pivot
	Alignment int
}

// Fallback selects what happens when the pixels cannot be read.
type Fallback int

const (
	// FallbackFail returns ErrCannotVerify.
	FallbackFail Fallback = iota
	// FallbackEmitAll emits every candidate cell without the emptiness test.
	FallbackEmitAll
)

// Options controls naming and pivots. An empty BaseName becomes DefaultBaseName.
type Options struct {
	Pivot    Pivot
	BaseName string
	Fallback Fallback
}

// Slicer cuts sheets and logs what it dropped.
type Slicer struct {
	log *zap.Logger
}

// New returns a Slicer logging to log. A nil logger discards output.
func New(log *zap.Logger) *Slicer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Slicer{log: log.Named("slicer")}
}

// Slice is a convenience wrapper around a Slicer without logging.
func Slice(src sheet.Source, layout grid.Layout, opts Options) ([]Record, error) {
	return New(nil).Slice(src, layout, opts)
}

// Slice walks layout from the top grid row down, left to right within a
// row, and returns one Record per cell that has at least one pixel with
// alpha > 0. Names are "{base}_{n}" with n counting emitted records only.
func (s *Slicer) Slice(src sheet.Source, layout grid.Layout, opts Options) ([]Record, error) {
	p := opts.Pivot
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
		return nil, fmt.Errorf("%w: got (%g,%g)", ErrInvalidPivot, p.X, p.Y)
	}
	base := opts.BaseName
	if base == "" {
		base = DefaultBaseName
	}

	var mask *sheet.AlphaMask
	px, err := readPixels(src)
	switch {
	case err == nil:
		mask = sheet.NewAlphaMask(px)
	case errors.Is(err, sheet.ErrUnreadable) && opts.Fallback == FallbackEmitAll:
		s.log.Warn("texture is not readable, emitting every cell without the emptiness check",
			zap.Error(err))
	default:
		return nil, fmt.Errorf("%w: %w", ErrCannotVerify, err)
	}

	records := make([]Record, 0, layout.Count())
	dropped := 0
	for row := layout.Cells.Y - 1; row >= 0; row-- {
		for col := 0; col < layout.Cells.X; col++ {
			r := layout.CellRect(col, row)
			if mask != nil && mask.Empty(r) {
				dropped++
				continue
			}
			records = append(records, Record{
				Name:      fmt.Sprintf("%s_%d", base, len(records)),
				Rect:      r,
				Pivot:     p,
				Alignment: AlignmentCustom,
			})
		}
	}

	s.log.Debug("sliced sheet",
		zap.String("base", base),
		zap.Int("candidates", layout.Count()),
		zap.Int("emitted", len(records)),
		zap.Int("dropped", dropped),
		zap.Bool("checked", mask != nil))
	return records, nil
}

func readPixels(src sheet.Source) (*sheet.Sheet, error) {
	if src == nil {
		return nil, sheet.ErrUnreadable
	}
	px, err := src.Pixels()
	if err != nil {
		return nil, err
	}
	if px == nil {
		return nil, sheet.ErrUnreadable
	}
	if err := px.Check(); err != nil {
		return nil, err
	}
	return px, nil
}
