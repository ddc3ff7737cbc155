package tilemap

import (
	"testing"

	"github.com/milk9111/tileslicer/autotile"
)

func grassTile() *autotile.DraggableTile {
	set := autotile.SpriteSet{}
	for _, v := range autotile.Variants() {
		set[v] = "grass_" + v.String()
	}
	return &autotile.DraggableTile{Name: "grass", Sprites: set}
}

func at(x, y int) autotile.Location {
	return autotile.Location{X: x, Y: y}
}

func variantAt(t *testing.T, m *Map, loc autotile.Location) autotile.Variant {
	t.Helper()
	td, ok := m.Data(loc)
	if !ok {
		t.Fatalf("no tile data at %+v", loc)
	}
	return td.Variant
}

func TestFillBlockPicksNinePiece(t *testing.T) {
	m := New(nil)
	m.Fill(at(0, 0), at(2, 2), grassTile())

	cases := []struct {
		loc  autotile.Location
		want autotile.Variant
	}{
		{at(0, 2), autotile.TopLeftCorner},
		{at(1, 2), autotile.TopBorder},
		{at(2, 2), autotile.TopRightCorner},
		{at(0, 1), autotile.LeftBorder},
		{at(1, 1), autotile.BlockCenter},
		{at(2, 1), autotile.RightBorder},
		{at(0, 0), autotile.BottomBorder},
		{at(1, 0), autotile.BottomBorder},
		{at(2, 0), autotile.BottomRightCorner},
	}
	for _, c := range cases {
		if got := variantAt(t, m, c.loc); got != c.want {
			t.Fatalf("variant at %+v = %v, want %v", c.loc, got, c.want)
		}
	}
}

func TestSetRefreshesNeighbourhood(t *testing.T) {
	m := New(nil)
	grass := grassTile()
	m.Set(at(0, 0), grass)
	if got := variantAt(t, m, at(0, 0)); got != autotile.Island {
		t.Fatalf("single tile should be an island, got %v", got)
	}

	var requests []autotile.Location
	m.OnRefresh = func(l autotile.Location) { requests = append(requests, l) }
	m.Set(at(1, 0), grass)

	if len(requests) != 9 {
		t.Fatalf("expected 9 refresh requests, got %d", len(requests))
	}
	if got := variantAt(t, m, at(0, 0)); got != autotile.HorizontalLeft {
		t.Fatalf("left tile = %v, want horizontal_left", got)
	}
	if got := variantAt(t, m, at(1, 0)); got != autotile.HorizontalRight {
		t.Fatalf("right tile = %v, want horizontal_right", got)
	}
}

func TestEraseRestoresIsland(t *testing.T) {
	m := New(nil)
	grass := grassTile()
	m.Set(at(0, 0), grass)
	m.Set(at(0, 1), grass)
	if got := variantAt(t, m, at(0, 0)); got != autotile.VerticalBottom {
		t.Fatalf("bottom tile = %v, want vertical_bottom", got)
	}
	if got := variantAt(t, m, at(0, 1)); got != autotile.VerticalTop {
		t.Fatalf("top tile = %v, want vertical_top", got)
	}

	m.Erase(at(0, 1))
	if _, ok := m.Data(at(0, 1)); ok {
		t.Fatalf("erased cell should have no data")
	}
	if got := variantAt(t, m, at(0, 0)); got != autotile.Island {
		t.Fatalf("remaining tile = %v, want island", got)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 tile, got %d", m.Len())
	}
}

func TestDifferentKindsDoNotJoin(t *testing.T) {
	m := New(nil)
	m.Set(at(0, 0), grassTile())
	m.Set(at(1, 0), grassTile())
	if got := variantAt(t, m, at(0, 0)); got != autotile.Island {
		t.Fatalf("distinct tile assets should not join, got %v", got)
	}
}

func TestLayersAreIndependent(t *testing.T) {
	m := New(nil)
	grass := grassTile()
	m.Set(autotile.Location{X: 0, Y: 0, Z: 0}, grass)
	m.Set(autotile.Location{X: 1, Y: 0, Z: 1}, grass)
	if got := variantAt(t, m, autotile.Location{}); got != autotile.Island {
		t.Fatalf("tiles on other layers should not join, got %v", got)
	}
}
