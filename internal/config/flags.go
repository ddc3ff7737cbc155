package config

import "flag"

// Flags are the command-line overrides. Unset flags leave the config alone.
type Flags struct {
	Config  string
	Input   string
	Output  string
	Name    string
	Cell    Vec
	Fixed   Vec
	Debug   bool
	Watch   bool
	Copy    bool
	EmitAll bool
	Save    string
}

// RegisterFlags binds Flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.StringVar(&f.Input, "in", "", "Sprite sheet to slice")
	fs.StringVar(&f.Output, "out", "", "Where to write the sprite definition (default: next to the sheet)")
	fs.StringVar(&f.Name, "name", "", "Base name for sprites (default: sheet file name)")
	fs.Var(&f.Cell, "cell", "Cell size, e.g. 16x16")
	fs.Var(&f.Fixed, "fixed", "Use a fixed grid of CxR cells, e.g. 4x2")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&f.Watch, "watch", false, "Re-slice when the sheet or config changes")
	fs.BoolVar(&f.Copy, "copy", false, "Copy the sprite definition to the clipboard")
	fs.BoolVar(&f.EmitAll, "emit-all", false, "Keep every cell if the sheet cannot be read")
	fs.StringVar(&f.Save, "save-config", "", "Write the effective config to this path and exit")
	return f
}

func (f *Flags) apply(cfg *Config) {
	if f.Output != "" {
		cfg.Output.Path = f.Output
	}
	if f.Name != "" {
		cfg.Slice.BaseName = f.Name
	}
	if f.Cell != (Vec{}) {
		cfg.Slice.Cell = f.Cell
	}
	if f.Fixed != (Vec{}) {
		cfg.Slice.Fixed = true
		cfg.Slice.FixedCells = f.Fixed
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Watch {
		cfg.Watch.Enabled = true
	}
	if f.Copy {
		cfg.Output.CopyToClipboard = true
	}
	if f.EmitAll {
		cfg.Slice.EmitAllWhenUnreadable = true
	}
}
