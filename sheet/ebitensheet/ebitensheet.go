// Package ebitensheet exposes an *ebiten.Image as a sheet.Source.
package ebitensheet

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tileslicer/sheet"
)

// Source reads pixels back from a GPU-backed ebiten image. ebiten refuses
// pixel reads until the game loop has started; that case is reported as
// sheet.ErrUnreadable so the slicer can fall back.
type Source struct {
	Image *ebiten.Image
}

// New wraps img.
func New(img *ebiten.Image) *Source {
	return &Source{Image: img}
}

func (s *Source) Pixels() (sh *sheet.Sheet, err error) {
	if s == nil || s.Image == nil {
		return nil, sheet.ErrUnreadable
	}
	b := s.Image.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := make([]byte, w*h*4)

	defer func() {
		if r := recover(); r != nil {
			sh = nil
			err = fmt.Errorf("%w: %v", sheet.ErrUnreadable, r)
		}
	}()
	s.Image.ReadPixels(buf)

	return sheet.FromTopDown(w, h, buf), nil
}
