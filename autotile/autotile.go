// Package autotile picks the sprite of a tile from which of its four
// cardinal neighbours hold a tile of the same kind.
package autotile

import "fmt"

// Location addresses a cell of a tile map. Y grows upwards.
type Location struct {
	X, Y, Z int
}

func (l Location) Add(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy, Z: l.Z}
}

// Mask records which cardinal neighbours are tiles of the same kind.
type Mask uint8

const (
	Above Mask = 1 << iota
	Below
	Left
	Right
)

// Has reports whether every bit of m2 is set in m.
func (m Mask) Has(m2 Mask) bool {
	return m&m2 == m2
}

func (m Mask) String() string {
	if m == 0 {
		return "none"
	}
	s := ""
	for _, b := range []struct {
		bit  Mask
		name string
	}{{Above, "above"}, {Below, "below"}, {Left, "left"}, {Right, "right"}} {
		if m.Has(b.bit) {
			if s != "" {
				s += "|"
			}
			s += b.name
		}
	}
	return s
}

// MaskAt queries same for the four neighbours of loc.
func MaskAt(loc Location, same func(Location) bool) Mask {
	var m Mask
	if same(loc.Add(0, 1)) {
		m |= Above
	}
	if same(loc.Add(0, -1)) {
		m |= Below
	}
	if same(loc.Add(-1, 0)) {
		m |= Left
	}
	if same(loc.Add(1, 0)) {
		m |= Right
	}
	return m
}

// Variant is the sprite role a tile takes in a block of same-kind tiles.
type Variant uint8

const (
	Island Variant = iota
	TopLeftCorner
	BottomLeftCorner
	TopRightCorner
	BottomRightCorner
	LeftBorder
	RightBorder
	TopBorder
	BottomBorder
	BlockCenter
	HorizontalCenter
	HorizontalLeft
	HorizontalRight
	VerticalCenter
	VerticalTop
	VerticalBottom

	variantCount
)

var variantNames = [variantCount]string{
	Island:            "island",
	TopLeftCorner:     "top_left_corner",
	BottomLeftCorner:  "bottom_left_corner",
	TopRightCorner:    "top_right_corner",
	BottomRightCorner: "bottom_right_corner",
	LeftBorder:        "left_border",
	RightBorder:       "right_border",
	TopBorder:         "top_border",
	BottomBorder:      "bottom_border",
	BlockCenter:       "block_center",
	HorizontalCenter:  "horizontal_center",
	HorizontalLeft:    "horizontal_left",
	HorizontalRight:   "horizontal_right",
	VerticalCenter:    "vertical_center",
	VerticalTop:       "vertical_top",
	VerticalBottom:    "vertical_bottom",
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, variantCount)
	for i := range out {
		out[i] = Variant(i)
	}
	return out
}

func (v Variant) String() string {
	if v >= variantCount {
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
	return variantNames[v]
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(name string) (Variant, error) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return Island, fmt.Errorf("autotile: unknown variant %q", name)
}

// Select maps every mask to a variant. The checks run in a fixed priority
// order and the first match wins. Right+Above without Left yields
// BottomBorder, the same variant as Left+Right+Above.
func Select(m Mask) Variant {
	above, below := m.Has(Above), m.Has(Below)
	left, right := m.Has(Left), m.Has(Right)

	switch {
	case left && right && above && below:
		return BlockCenter
	case left && right && above:
		return BottomBorder
	case left && right && below:
		return TopBorder
	case left && above && below:
		return RightBorder
	case left && right:
		return HorizontalCenter
	case left && above:
		return BottomRightCorner
	case left && below:
		return TopRightCorner
	case right && below && above:
		return LeftBorder
	case right && below:
		return TopLeftCorner
	case right && above:
		return BottomBorder
	case below && above:
		return VerticalCenter
	case right:
		return HorizontalLeft
	case left:
		return HorizontalRight
	case below:
		return VerticalTop
	case above:
		return VerticalBottom
	}
	return Island
}

// Neighborhood returns the 3x3 block centred on loc, loc included.
func Neighborhood(loc Location) [9]Location {
	var out [9]Location
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			out[i] = loc.Add(dx, dy)
			i++
		}
	}
	return out
}

// RefreshNeighborhood asks refresh to recompute every cell of the 3x3
// block around loc. A change at loc can alter the mask of each of them.
func RefreshNeighborhood(loc Location, refresh func(Location)) {
	for _, l := range Neighborhood(loc) {
		refresh(l)
	}
}
