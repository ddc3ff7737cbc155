package main

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/milk9111/tileslicer/grid"
	"github.com/milk9111/tileslicer/importdef"
	"github.com/milk9111/tileslicer/internal/config"
	"github.com/milk9111/tileslicer/internal/loader"
	"github.com/milk9111/tileslicer/slicer"
)

// session keeps the state of one slicing run across watch iterations.
type session struct {
	input      string
	configPath string
	flags      *config.Flags
	cfg        *config.Config
	tracker    *grid.Tracker
	slicer     *slicer.Slicer
	log        *zap.Logger

	clipboardReady bool
	lastSize       [2]int
}

func newSession(input string, flags *config.Flags, cfg *config.Config, log *zap.Logger) *session {
	return &session{
		input:      input,
		configPath: config.Resolve(flags.Config),
		flags:      flags,
		cfg:        cfg,
		tracker:    grid.NewTracker(cfg.Slice.Grid()),
		slicer:     slicer.New(log),
		log:        log,
	}
}

func (s *session) isConfig(path string) bool {
	if s.configPath == "" {
		return false
	}
	abs, err := filepath.Abs(s.configPath)
	return err == nil && abs == path
}

func (s *session) reloadConfig() error {
	cfg, err := config.Load(s.configPath, s.flags)
	if err != nil {
		return err
	}
	s.cfg = cfg
	if s.tracker.Set(cfg.Slice.Grid()) {
		g := s.tracker.Config()
		s.log.Info("grid settings changed",
			zap.Stringer("cell", g.Cell),
			zap.Bool("fixed", g.Fixed),
			zap.Stringer("fixed_cells", g.FixedCells))
	}
	return nil
}

// slice loads the sheet, recomputes the layout if the grid settings or the
// sheet size changed, and writes the import definition.
func (s *session) slice() error {
	file, err := loader.Load(s.input)
	if err != nil {
		return err
	}

	size := [2]int{file.Sheet.Width, file.Sheet.Height}
	layout, ok := s.tracker.Layout()
	if !ok || s.tracker.Dirty() || size != s.lastSize {
		layout, err = s.tracker.Recompute(size[0], size[1])
		if err != nil {
			return err
		}
		s.lastSize = size
		s.log.Debug("layout computed",
			zap.Int("columns", layout.Cells.X),
			zap.Int("rows", layout.Cells.Y),
			zap.Int("advance_x", layout.Advance.X),
			zap.Int("advance_y", layout.Advance.Y))
	}

	records, err := s.slicer.Slice(file, layout, s.cfg.Slice.Options(file.Name()))
	if err != nil {
		return err
	}

	def := importdef.New(filepath.Base(s.input), size[0], size[1], records)
	def.Settings.Readable = s.cfg.Output.ForceReadable
	out := s.cfg.Output.Path
	if out == "" {
		out = importdef.PathFor(s.input)
	}
	written, err := def.WriteIfChanged(out)
	if err != nil {
		return err
	}
	if !written {
		s.log.Debug("sprite definition unchanged", zap.String("out", out))
		return nil
	}
	s.log.Info("wrote sprite definition",
		zap.String("sheet", s.input),
		zap.String("out", out),
		zap.Int("sprites", len(records)))

	if s.cfg.Output.CopyToClipboard {
		if err := s.copy(def); err != nil {
			s.log.Warn("copy to clipboard failed", zap.Error(err))
		}
	}
	return nil
}

func (s *session) copy(def *importdef.Definition) error {
	if !s.clipboardReady {
		if err := clipboard.Init(); err != nil {
			return fmt.Errorf("clipboard unavailable: %w", err)
		}
		s.clipboardReady = true
	}
	data, err := def.Marshal()
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}
