package main

import (
	"errors"
	"flag"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/tileslicer/autotile"
	"github.com/milk9111/tileslicer/grid"
	"github.com/milk9111/tileslicer/internal/loader"
	"github.com/milk9111/tileslicer/internal/logger"
	"github.com/milk9111/tileslicer/sheet"
	"github.com/milk9111/tileslicer/sheet/ebitensheet"
	"github.com/milk9111/tileslicer/slicer"
	"github.com/milk9111/tileslicer/tilemap"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

type demoGame struct {
	tileset  *ebiten.Image
	source   *ebitensheet.Source
	layout   grid.Layout
	name     string
	tile     autotile.Behavior
	tiles    *tilemap.Map
	sprites  map[string]*ebiten.Image
	tileSize int
	sliced   bool
	log      *zap.Logger
}

// sliceTileset runs on the first Update: ebiten only allows pixel reads
// once the game loop is running.
func (g *demoGame) sliceTileset() error {
	s := slicer.New(g.log)
	records, err := s.Slice(g.source, g.layout, slicer.Options{Pivot: slicer.Center, BaseName: g.name})
	if errors.Is(err, sheet.ErrUnreadable) {
		records, err = s.Slice(g.source, g.layout, slicer.Options{Pivot: slicer.Center, BaseName: g.name, Fallback: slicer.FallbackEmitAll})
	}
	if err != nil {
		return err
	}

	h := g.tileset.Bounds().Dy()
	g.sprites = make(map[string]*ebiten.Image, len(records))
	for _, r := range records {
		// records are bottom-up, ebiten images top-down
		top := image.Rect(r.Rect.Min.X, h-r.Rect.Max.Y, r.Rect.Max.X, h-r.Rect.Min.Y)
		g.sprites[r.Name] = g.tileset.SubImage(top).(*ebiten.Image)
	}
	g.log.Info("tileset sliced", zap.Int("sprites", len(records)))
	return nil
}

func (g *demoGame) Update() error {
	if !g.sliced {
		if err := g.sliceTileset(); err != nil {
			return err
		}
		g.sliced = true
	}

	x, y := ebiten.CursorPosition()
	loc := autotile.Location{X: x / g.tileSize, Y: (screenHeight - 1 - y) / g.tileSize}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if g.tiles.Tile(loc) != g.tile {
			g.tiles.Set(loc, g.tile)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.tiles.Erase(loc)
	}
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	cols := screenWidth / g.tileSize
	rows := screenHeight / g.tileSize
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			td, ok := g.tiles.Data(autotile.Location{X: tx, Y: ty})
			if !ok {
				continue
			}
			img := g.sprites[td.Sprite]
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(tx*g.tileSize), float64(screenHeight-(ty+1)*g.tileSize))
			op.Filter = ebiten.FilterNearest
			screen.DrawImage(img, op)
		}
	}
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	sheetPath := flag.String("sheet", "tileset.png", "tileset image")
	specPath := flag.String("tile", "tile.yaml", "tile spec mapping variants to sprite names")
	size := flag.Int("size", 16, "tile size in pixels")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	logger.Init(level, "")
	defer logger.Sync()

	src, _, err := loader.Decode(*sheetPath)
	if err != nil {
		log.Fatal(err)
	}
	spec, err := autotile.LoadTileSpec(*specPath)
	if err != nil {
		log.Fatal(err)
	}
	tile, err := spec.Build(logger.Log)
	if err != nil {
		log.Fatal(err)
	}
	b := src.Bounds()
	layout, err := grid.Compute(b.Dx(), b.Dy(), grid.Config{Cell: image.Pt(*size, *size)})
	if err != nil {
		log.Fatal(err)
	}

	img := ebiten.NewImageFromImage(src)

	g := &demoGame{
		tileset:  img,
		source:   ebitensheet.New(img),
		layout:   layout,
		name:     loader.BaseName(*sheetPath),
		tile:     tile,
		tiles:    tilemap.New(logger.Log),
		tileSize: *size,
		log:      logger.Log,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Autotile Demo")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
