package autotile

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Tile kinds accepted in a TileSpec.
const (
	KindDraggable = "draggable"
	KindStatic    = "static"
	KindScripted  = "scripted"
)

// TileSpec is the YAML description of a tile asset.
//
//	name: grass
//	kind: draggable
//	sprites:
//	  island: grass_15
//	  block_center: grass_4
type TileSpec struct {
	Name    string            `yaml:"name"`
	Kind    string            `yaml:"kind"`
	Sprite  string            `yaml:"sprite"`
	Sprites map[string]string `yaml:"sprites"`
	Script  string            `yaml:"script"`
}

// ParseTileSpec decodes a TileSpec from YAML.
func ParseTileSpec(data []byte) (TileSpec, error) {
	var spec TileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return TileSpec{}, fmt.Errorf("autotile: unmarshal tile spec: %w", err)
	}
	if spec.Kind == "" {
		spec.Kind = KindDraggable
	}
	return spec, nil
}

// LoadTileSpec reads and decodes the tile spec at path.
func LoadTileSpec(path string) (TileSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TileSpec{}, fmt.Errorf("autotile: load %s: %w", path, err)
	}
	return ParseTileSpec(data)
}

// SpriteSet converts the variant-name keyed sprite table.
func (s TileSpec) SpriteSet() (SpriteSet, error) {
	set := make(SpriteSet, len(s.Sprites))
	for name, sprite := range s.Sprites {
		v, err := ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("autotile: tile %s: %w", s.Name, err)
		}
		set[v] = sprite
	}
	return set, nil
}

// Build turns the spec into a tile behaviour. Script is tengo source.
func (s TileSpec) Build(log *zap.Logger) (Behavior, error) {
	switch s.Kind {
	case KindStatic:
		if s.Sprite == "" {
			return nil, fmt.Errorf("autotile: static tile %s has no sprite", s.Name)
		}
		return &StaticTile{Name: s.Name, Sprite: s.Sprite}, nil
	case KindDraggable, KindScripted:
		set, err := s.SpriteSet()
		if err != nil {
			return nil, err
		}
		if _, ok := set[Island]; !ok {
			return nil, fmt.Errorf("autotile: tile %s has no island sprite", s.Name)
		}
		if s.Kind == KindDraggable {
			return &DraggableTile{Name: s.Name, Sprites: set}, nil
		}
		tile, err := NewScriptedTile(s.Name, set, []byte(s.Script), log)
		if err != nil {
			return nil, err
		}
		return tile, nil
	}
	return nil, fmt.Errorf("autotile: tile %s has unknown kind %q", s.Name, s.Kind)
}
