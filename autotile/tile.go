package autotile

// TileMap is the host map a tile behaviour reads its neighbours from.
type TileMap interface {
	// Tile returns the behaviour placed at loc, or nil.
	Tile(loc Location) Behavior
	// RefreshTile asks the map to recompute the tile at loc.
	RefreshTile(loc Location)
}

// TileData is what the map renders for one cell.
type TileData struct {
	Sprite  string
	Variant Variant
	Mask    Mask
}

// Behavior is implemented by DraggableTile, StaticTile and ScriptedTile.
type Behavior interface {
	// Preview returns the sprite shown in a palette.
	Preview() string
	// RefreshTile is called when the tile at loc changed.
	RefreshTile(loc Location, m TileMap)
	// TileData picks the sprite for the tile at loc.
	TileData(loc Location, m TileMap) TileData
}

// SpriteSet maps each variant to a sprite name.
type SpriteSet map[Variant]string

// Sprite returns the sprite for v, falling back to the island sprite.
func (s SpriteSet) Sprite(v Variant) string {
	if name, ok := s[v]; ok && name != "" {
		return name
	}
	return s[Island]
}

func sameAs(b Behavior, m TileMap) func(Location) bool {
	return func(l Location) bool {
		return m.Tile(l) == b
	}
}

// DraggableTile joins seamlessly with same tiles placed next to it.
type DraggableTile struct {
	Name    string
	Sprites SpriteSet
}

func (t *DraggableTile) Preview() string {
	return t.Sprites[Island]
}

func (t *DraggableTile) RefreshTile(loc Location, m TileMap) {
	RefreshNeighborhood(loc, m.RefreshTile)
}

func (t *DraggableTile) TileData(loc Location, m TileMap) TileData {
	mask := MaskAt(loc, sameAs(t, m))
	v := Select(mask)
	return TileData{Sprite: t.Sprites.Sprite(v), Variant: v, Mask: mask}
}

// StaticTile always shows one sprite and ignores its neighbours.
type StaticTile struct {
	Name   string
	Sprite string
}

func (t *StaticTile) Preview() string {
	return t.Sprite
}

func (t *StaticTile) RefreshTile(loc Location, m TileMap) {
	m.RefreshTile(loc)
}

func (t *StaticTile) TileData(Location, TileMap) TileData {
	return TileData{Sprite: t.Sprite, Variant: Island}
}
