package sheet

import "image"

// AlphaMask is a summed-area table over the "alpha > 0" bit of a Sheet.
// Building it reads every pixel once; afterwards any rectangle can be
// tested for content in constant time.
type AlphaMask struct {
	width  int
	height int
	// sums has (width+1)*(height+1) entries; sums[y*(width+1)+x] counts the
	// opaque pixels in [0,x)x[0,y).
	sums []int32
}

// NewAlphaMask builds the table for s.
func NewAlphaMask(s *Sheet) *AlphaMask {
	w, h := s.Width, s.Height
	m := &AlphaMask{width: w, height: h, sums: make([]int32, (w+1)*(h+1))}
	row := w + 1
	for y := 0; y < h; y++ {
		var run int32
		for x := 0; x < w; x++ {
			if s.Pix[(y*w+x)*4+3] > 0 {
				run++
			}
			m.sums[(y+1)*row+x+1] = m.sums[y*row+x+1] + run
		}
	}
	return m
}

// Count returns the number of pixels with alpha > 0 inside r. The part of r
// outside the texture contributes nothing.
func (m *AlphaMask) Count(r image.Rectangle) int {
	r = r.Intersect(image.Rect(0, 0, m.width, m.height))
	if r.Empty() {
		return 0
	}
	row := m.width + 1
	total := m.sums[r.Max.Y*row+r.Max.X] -
		m.sums[r.Min.Y*row+r.Max.X] -
		m.sums[r.Max.Y*row+r.Min.X] +
		m.sums[r.Min.Y*row+r.Min.X]
	return int(total)
}

// Empty reports whether every pixel of r is fully transparent.
func (m *AlphaMask) Empty(r image.Rectangle) bool {
	return m.Count(r) == 0
}
