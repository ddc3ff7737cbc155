// Package grid computes the cell layout used to cut a sprite sheet.
package grid

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrInvalidCellSize = errors.New("grid: cell size must be at least 1x1")
	ErrNegativePadding = errors.New("grid: padding must not be negative")
	ErrNegativeMargin  = errors.New("grid: margin and offset must not be negative")
	ErrEmptyArea       = errors.New("grid: sprite area is empty")
	ErrDegenerateGrid  = errors.New("grid: more fixed cells than pixels in the sprite area")
)

// Config describes how a sheet is divided into cells. Vectors are in
// texture pixels.
type Config struct {
	Cell    image.Point // width, height of one sprite
	Padding image.Point // gap between neighbouring cells
	Offset  image.Point // shift of the first cell from the area margin
	Margin  image.Point // border kept clear on every side of the texture

	Fixed      bool
	FixedCells image.Point // columns, rows; only read when Fixed is set
}

// Layout is the result of Compute.
type Layout struct {
	Cell    image.Point
	Cells   image.Point // columns, rows
	Advance image.Point // step between the origins of adjacent cells
	Area    image.Rectangle
}

// Count returns the number of candidate cells.
func (l Layout) Count() int {
	return l.Cells.X * l.Cells.Y
}

// CellRect returns the rectangle of the cell at column col and row row.
// Row 0 is the lowest row of the texture.
func (l Layout) CellRect(col, row int) image.Rectangle {
	origin := image.Pt(l.Area.Min.X+col*l.Advance.X, l.Area.Min.Y+row*l.Advance.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(l.Cell)}
}

// Normalize applies the editor field clamps: cell size and fixed cell
// counts never drop below 1.
func (c Config) Normalize() Config {
	c.Cell.X = max(c.Cell.X, 1)
	c.Cell.Y = max(c.Cell.Y, 1)
	c.FixedCells.X = max(c.FixedCells.X, 1)
	c.FixedCells.Y = max(c.FixedCells.Y, 1)
	return c
}

// Validate reports configuration errors that do not depend on the texture.
func (c Config) Validate() error {
	if c.Cell.X < 1 || c.Cell.Y < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidCellSize, c.Cell.X, c.Cell.Y)
	}
	if c.Padding.X < 0 || c.Padding.Y < 0 {
		return fmt.Errorf("%w: got %d,%d", ErrNegativePadding, c.Padding.X, c.Padding.Y)
	}
	if c.Margin.X < 0 || c.Margin.Y < 0 || c.Offset.X < 0 || c.Offset.Y < 0 {
		return fmt.Errorf("%w: margin %v, offset %v", ErrNegativeMargin, c.Margin, c.Offset)
	}
	return nil
}

// Area returns the sprite area of a width x height texture: the texture
// minus the margin on both sides and minus the start offset.
func (c Config) Area(width, height int) image.Rectangle {
	origin := c.Margin.Add(c.Offset)
	size := image.Pt(
		width-2*c.Margin.X-c.Offset.X,
		height-2*c.Margin.Y-c.Offset.Y,
	)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// Compute lays out cfg over a width x height texture. It has no side
// effects and returns the same Layout for the same input.
func Compute(width, height int, cfg Config) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}

	area := cfg.Area(width, height)
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return Layout{}, fmt.Errorf("%w: %dx%d texture leaves %dx%d after margin %v and offset %v",
			ErrEmptyArea, width, height, area.Dx(), area.Dy(), cfg.Margin, cfg.Offset)
	}

	l := Layout{Cell: cfg.Cell, Area: area}
	if cfg.Fixed {
		l.Cells = image.Pt(max(cfg.FixedCells.X, 1), max(cfg.FixedCells.Y, 1))
		l.Advance = image.Pt(area.Dx()/l.Cells.X, area.Dy()/l.Cells.Y)
		if l.Advance.X < 1 || l.Advance.Y < 1 {
			return Layout{}, fmt.Errorf("%w: %v cells in a %dx%d area",
				ErrDegenerateGrid, l.Cells, area.Dx(), area.Dy())
		}
		return l, nil
	}

	// One extra column and row so a trailing partial cell is still tested;
	// the slicer drops it if nothing inside the texture is opaque.
	l.Advance = cfg.Cell.Add(cfg.Padding)
	l.Cells = image.Pt(area.Dx()/l.Advance.X+1, area.Dy()/l.Advance.Y+1)
	return l, nil
}
