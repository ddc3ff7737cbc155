package grid

// Tracker holds the current Config of an editing session and remembers
// whether it changed since the layout was last computed. Nothing is
// recomputed implicitly; callers check Dirty and call Recompute.
type Tracker struct {
	cfg    Config
	dirty  bool
	layout Layout
	valid  bool
}

// NewTracker starts a session with cfg. The first Recompute is pending.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg, dirty: true}
}

// Config returns the current configuration.
func (t *Tracker) Config() Config {
	return t.cfg
}

// Set replaces the configuration and reports whether any field differs
// from the previous one.
func (t *Tracker) Set(cfg Config) bool {
	changed := cfg.Cell != t.cfg.Cell ||
		cfg.Padding != t.cfg.Padding ||
		cfg.Offset != t.cfg.Offset ||
		cfg.Margin != t.cfg.Margin ||
		cfg.Fixed != t.cfg.Fixed ||
		cfg.FixedCells != t.cfg.FixedCells
	if changed {
		t.cfg = cfg
		t.dirty = true
	}
	return changed
}

// Dirty reports whether the configuration changed since the last
// successful Recompute.
func (t *Tracker) Dirty() bool {
	return t.dirty
}

// Recompute lays the current configuration out over a width x height
// texture. On error the previous layout is kept and the tracker stays
// dirty.
func (t *Tracker) Recompute(width, height int) (Layout, error) {
	l, err := Compute(width, height, t.cfg)
	if err != nil {
		return t.layout, err
	}
	t.layout = l
	t.valid = true
	t.dirty = false
	return l, nil
}

// Layout returns the last successfully computed layout.
func (t *Tracker) Layout() (Layout, bool) {
	return t.layout, t.valid
}
