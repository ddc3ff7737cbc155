// Package tilemap is an in-memory tile map that drives autotile behaviours:
// placing or erasing a tile lets the behaviour refresh its neighbourhood,
// and every refresh re-evaluates the tile's sprite.
package tilemap

import (
	"go.uber.org/zap"

	"github.com/milk9111/tileslicer/autotile"
)

type Map struct {
	tiles map[autotile.Location]autotile.Behavior
	data  map[autotile.Location]autotile.TileData
	log   *zap.Logger

	// OnRefresh, if set, is called for every refresh request, including
	// requests for empty cells.
	OnRefresh func(loc autotile.Location)
}

func New(log *zap.Logger) *Map {
	if log == nil {
		log = zap.NewNop()
	}
	return &Map{
		tiles: make(map[autotile.Location]autotile.Behavior),
		data:  make(map[autotile.Location]autotile.TileData),
		log:   log.Named("tilemap"),
	}
}

// Tile returns the behaviour at loc, or nil for an empty cell.
func (m *Map) Tile(loc autotile.Location) autotile.Behavior {
	return m.tiles[loc]
}

// Set places b at loc. A nil b erases the cell.
func (m *Map) Set(loc autotile.Location, b autotile.Behavior) {
	if b == nil {
		m.Erase(loc)
		return
	}
	m.tiles[loc] = b
	b.RefreshTile(loc, m)
}

// Erase clears loc and lets the removed tile refresh its neighbours.
func (m *Map) Erase(loc autotile.Location) {
	old, ok := m.tiles[loc]
	if !ok {
		return
	}
	delete(m.tiles, loc)
	old.RefreshTile(loc, m)
}

// Fill places b on every cell of the inclusive rectangle between from and to
// on layer from.Z. Each placement refreshes its own neighbourhood.
func (m *Map) Fill(from, to autotile.Location, b autotile.Behavior) {
	minX, maxX := min(from.X, to.X), max(from.X, to.X)
	minY, maxY := min(from.Y, to.Y), max(from.Y, to.Y)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			m.Set(autotile.Location{X: x, Y: y, Z: from.Z}, b)
		}
	}
}

// RefreshTile recomputes the sprite of the tile at loc.
func (m *Map) RefreshTile(loc autotile.Location) {
	if m.OnRefresh != nil {
		m.OnRefresh(loc)
	}
	b, ok := m.tiles[loc]
	if !ok {
		delete(m.data, loc)
		return
	}
	td := b.TileData(loc, m)
	m.data[loc] = td
	m.log.Debug("refreshed tile",
		zap.Int("x", loc.X), zap.Int("y", loc.Y), zap.Int("z", loc.Z),
		zap.Stringer("variant", td.Variant),
		zap.String("sprite", td.Sprite))
}

// Data returns the last computed render data at loc.
func (m *Map) Data(loc autotile.Location) (autotile.TileData, bool) {
	td, ok := m.data[loc]
	return td, ok
}

// Len returns the number of occupied cells.
func (m *Map) Len() int {
	return len(m.tiles)
}
