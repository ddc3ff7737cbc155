// Package importdef writes the multi-sprite import definition an asset
// pipeline applies to a sliced texture.
package importdef

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tileslicer/slicer"
)

// ProcessedTag marks textures whose import settings were set by SettingsFor.
const ProcessedTag = "processed"

// SpritesDir is the path fragment that opts a texture into sprite import.
const SpritesDir = "Sprites"

// Settings mirrors the texture import switches relevant to sprite sheets.
type Settings struct {
	TextureType string `yaml:"texture_type"`
	SpriteMode  string `yaml:"sprite_mode"`
	FilterMode  string `yaml:"filter_mode"`
	Mipmaps     bool   `yaml:"mipmaps"`
	Readable    bool   `yaml:"readable"`
	UserData    string `yaml:"user_data,omitempty"`
}

// SettingsFor returns the import settings for a texture at path. Textures
// under a "Sprites" path are imported as point-filtered multi-sprite
// sheets without mipmaps; anything else keeps the default texture import.
func SettingsFor(path string) (Settings, bool) {
	if !strings.Contains(filepath.ToSlash(path), SpritesDir) {
		return Settings{TextureType: "default", SpriteMode: "single", FilterMode: "bilinear", Mipmaps: true}, false
	}
	return Settings{
		TextureType: "sprite",
		SpriteMode:  "multiple",
		FilterMode:  "point",
		Mipmaps:     false,
		UserData:    ProcessedTag,
	}, true
}

type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type Pivot struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Sprite struct {
	Name      string `yaml:"name"`
	Rect      Rect   `yaml:"rect"`
	Pivot     Pivot  `yaml:"pivot"`
	Alignment int    `yaml:"alignment"`
}

// Definition is the document handed to the importer.
type Definition struct {
	Texture  string   `yaml:"texture"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Settings Settings `yaml:"settings"`
	Sprites  []Sprite `yaml:"sprites"`
}

// New builds a Definition for texture from slicer records. The sprite
// settings are always applied since the texture is being sliced.
func New(texture string, width, height int, records []slicer.Record) *Definition {
	settings, _ := SettingsFor(filepath.Join(SpritesDir, texture))
	d := &Definition{
		Texture:  texture,
		Width:    width,
		Height:   height,
		Settings: settings,
		Sprites:  make([]Sprite, 0, len(records)),
	}
	for _, r := range records {
		d.Sprites = append(d.Sprites, Sprite{
			Name:      r.Name,
			Rect:      Rect{X: r.Rect.Min.X, Y: r.Rect.Min.Y, W: r.Rect.Dx(), H: r.Rect.Dy()},
			Pivot:     Pivot{X: r.Pivot.X, Y: r.Pivot.Y},
			Alignment: r.Alignment,
		})
	}
	return d
}

// Encode writes d as YAML.
func (d *Definition) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("importdef: encode %s: %w", d.Texture, err)
	}
	return enc.Close()
}

// Marshal returns d as YAML bytes.
func (d *Definition) Marshal() ([]byte, error) {
	var b strings.Builder
	if err := d.Encode(&b); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// WriteFile writes d to path, replacing any previous definition.
func (d *Definition) WriteFile(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("importdef: write %s: %w", path, err)
	}
	return nil
}

// WriteIfChanged writes d to path unless the definition already there
// encodes to the same bytes. It reports whether the file was written.
func (d *Definition) WriteIfChanged(path string) (bool, error) {
	data, err := d.Marshal()
	if err != nil {
		return false, err
	}
	if prev, err := Load(path); err == nil {
		if old, err := prev.Marshal(); err == nil && bytes.Equal(old, data) {
			return false, nil
		}
	}
	if err := d.WriteFile(path); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads a definition written by WriteFile.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("importdef: load %s: %w", path, err)
	}
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("importdef: unmarshal %s: %w", path, err)
	}
	return &d, nil
}

// PathFor returns the definition path next to a texture: "hero.png" ->
// "hero.sprites.yaml".
func PathFor(texture string) string {
	ext := filepath.Ext(texture)
	return strings.TrimSuffix(texture, ext) + ".sprites.yaml"
}
