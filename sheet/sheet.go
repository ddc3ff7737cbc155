// Package sheet holds the raw pixel view of a sprite sheet.
//
// Rows are stored bottom-up: row 0 of Pix is the lowest row of the texture,
// matching the coordinate system sprite rectangles are expressed in.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

var (
	// ErrUnreadable is returned by a Source that cannot hand out its pixels.
	ErrUnreadable = errors.New("sheet: pixel data is not readable")
	// ErrBadBuffer is returned when a pixel buffer does not match its size.
	ErrBadBuffer = errors.New("sheet: pixel buffer does not match dimensions")
)

// Sheet is a read-only RGBA8 view of a texture.
type Sheet struct {
	Width  int
	Height int
	Pix    []byte
}

// Source supplies the pixels of a texture on demand.
type Source interface {
	Pixels() (*Sheet, error)
}

// New wraps an existing bottom-up RGBA8 buffer without copying it.
func New(width, height int, pix []byte) (*Sheet, error) {
	s := &Sheet{Width: width, Height: height, Pix: pix}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}

// Check reports ErrBadBuffer if Pix does not hold exactly Width*Height
// RGBA8 pixels. Sheets built as struct literals skip New, so readers of
// Pix call Check first.
func (s *Sheet) Check() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadBuffer, s.Width, s.Height)
	}
	if len(s.Pix) != s.Width*s.Height*4 {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrBadBuffer, s.Width, s.Height, s.Width*s.Height*4, len(s.Pix))
	}
	return nil
}

// FromImage copies img into a bottom-up Sheet.
func FromImage(img image.Image) *Sheet {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return FromTopDown(b.Dx(), b.Dy(), rgba.Pix)
}

// FromTopDown copies a top-down RGBA8 buffer (the layout of image.RGBA and
// ebiten ReadPixels) into a bottom-up Sheet.
func FromTopDown(width, height int, pix []byte) *Sheet {
	stride := width * 4
	out := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		copy(out[y*stride:(y+1)*stride], src)
	}
	return &Sheet{Width: width, Height: height, Pix: out}
}

// Pixels lets a Sheet act as its own Source.
func (s *Sheet) Pixels() (*Sheet, error) {
	if s == nil {
		return nil, ErrUnreadable
	}
	return s, nil
}

// Bounds returns the texture rectangle [0,Width)x[0,Height).
func (s *Sheet) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// Alpha returns the alpha byte at (x, y). Coordinates outside the texture
// read as fully transparent.
func (s *Sheet) Alpha(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	i := (y*s.Width+x)*4 + 3
	if i >= len(s.Pix) {
		return 0
	}
	return s.Pix[i]
}
