package autotile

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"
)

// ScriptedTile lets a tengo script choose the variant. The script sees the
// booleans above, below, left and right and assigns a variant name such as
// "top_border" to variant. Leaving variant empty, naming an unknown variant
// or failing at runtime falls back to Select.
type ScriptedTile struct {
	Name    string
	Sprites SpriteSet
	Log     *zap.Logger

	compiled *tengo.Compiled
}

// NewScriptedTile compiles src once for all lookups.
func NewScriptedTile(name string, sprites SpriteSet, src []byte, log *zap.Logger) (*ScriptedTile, error) {
	if log == nil {
		log = zap.NewNop()
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for _, v := range []string{"above", "below", "left", "right"} {
		_ = script.Add(v, false)
	}
	_ = script.Add("variant", "")

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autotile: compile script for %s: %w", name, err)
	}
	return &ScriptedTile{Name: name, Sprites: sprites, Log: log, compiled: compiled}, nil
}

func (t *ScriptedTile) Preview() string {
	return t.Sprites[Island]
}

func (t *ScriptedTile) RefreshTile(loc Location, m TileMap) {
	RefreshNeighborhood(loc, m.RefreshTile)
}

func (t *ScriptedTile) TileData(loc Location, m TileMap) TileData {
	mask := MaskAt(loc, sameAs(t, m))
	v, err := t.run(mask)
	if err != nil {
		t.logger().Warn("tile script failed, using default rules",
			zap.String("tile", t.Name),
			zap.Stringer("mask", mask),
			zap.Error(err))
		v = Select(mask)
	}
	return TileData{Sprite: t.Sprites.Sprite(v), Variant: v, Mask: mask}
}

func (t *ScriptedTile) logger() *zap.Logger {
	if t.Log == nil {
		return zap.NewNop()
	}
	return t.Log
}

func (t *ScriptedTile) run(mask Mask) (Variant, error) {
	if t.compiled == nil {
		return Island, fmt.Errorf("autotile: script for %s not compiled", t.Name)
	}
	c := t.compiled.Clone()
	vars := map[string]bool{
		"above": mask.Has(Above),
		"below": mask.Has(Below),
		"left":  mask.Has(Left),
		"right": mask.Has(Right),
	}
	for name, val := range vars {
		if err := c.Set(name, val); err != nil {
			return Island, err
		}
	}
	if err := c.Set("variant", ""); err != nil {
		return Island, err
	}
	if err := c.Run(); err != nil {
		return Island, err
	}

	name := strings.TrimSpace(c.Get("variant").String())
	if name == "" {
		return Select(mask), nil
	}
	return ParseVariant(name)
}
