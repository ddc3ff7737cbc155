package grid

import (
	"errors"
	"image"
	"testing"
)

func TestComputeDynamic(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		cfg           Config
		wantCells     image.Point
		wantAdvance   image.Point
		wantArea      image.Rectangle
	}{
		{
			name:        "exact_fit_gets_extra_cell",
			width:       64,
			height:      64,
			cfg:         Config{Cell: image.Pt(32, 32)},
			wantCells:   image.Pt(3, 3),
			wantAdvance: image.Pt(32, 32),
			wantArea:    image.Rect(0, 0, 64, 64),
		},
		{
			name:        "padding",
			width:       70,
			height:      34,
			cfg:         Config{Cell: image.Pt(16, 16), Padding: image.Pt(2, 2)},
			wantCells:   image.Pt(4, 2),
			wantAdvance: image.Pt(18, 18),
			wantArea:    image.Rect(0, 0, 70, 34),
		},
		{
			name:        "margin_and_offset",
			width:       100,
			height:      50,
			cfg:         Config{Cell: image.Pt(10, 10), Margin: image.Pt(5, 5), Offset: image.Pt(2, 0)},
			wantCells:   image.Pt(9, 5),
			wantAdvance: image.Pt(10, 10),
			wantArea:    image.Rect(7, 5, 95, 45),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, err := Compute(c.width, c.height, c.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Cells != c.wantCells {
				t.Fatalf("cells = %v, want %v", l.Cells, c.wantCells)
			}
			if l.Advance != c.wantAdvance {
				t.Fatalf("advance = %v, want %v", l.Advance, c.wantAdvance)
			}
			if l.Area != c.wantArea {
				t.Fatalf("area = %v, want %v", l.Area, c.wantArea)
			}
			if l.Advance.X < l.Cell.X || l.Advance.Y < l.Cell.Y {
				t.Fatalf("advance %v smaller than cell %v", l.Advance, l.Cell)
			}
		})
	}
}

func TestComputeFixed(t *testing.T) {
	cfg := Config{Cell: image.Pt(8, 8), Fixed: true, FixedCells: image.Pt(3, 2)}
	l, err := Compute(100, 50, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Cells != image.Pt(3, 2) {
		t.Fatalf("cells = %v, want (3,2)", l.Cells)
	}
	// remainder discarded, each axis on its own
	if l.Advance != image.Pt(33, 25) {
		t.Fatalf("advance = %v, want (33,25)", l.Advance)
	}

	again, err := Compute(100, 50, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != l {
		t.Fatalf("Compute is not idempotent: %+v vs %+v", again, l)
	}
}

func TestComputeFixedClampsCounts(t *testing.T) {
	l, err := Compute(40, 40, Config{Cell: image.Pt(8, 8), Fixed: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Cells != image.Pt(1, 1) {
		t.Fatalf("cells = %v, want (1,1)", l.Cells)
	}
	if l.Advance != image.Pt(40, 40) {
		t.Fatalf("advance = %v, want (40,40)", l.Advance)
	}
}

func TestComputeErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero_cell", Config{}, ErrInvalidCellSize},
		{"negative_cell", Config{Cell: image.Pt(-1, 4)}, ErrInvalidCellSize},
		{"negative_padding", Config{Cell: image.Pt(4, 4), Padding: image.Pt(0, -1)}, ErrNegativePadding},
		{"margin_eats_area", Config{Cell: image.Pt(4, 4), Margin: image.Pt(16, 0)}, ErrEmptyArea},
		{"offset_eats_area", Config{Cell: image.Pt(4, 4), Offset: image.Pt(0, 32)}, ErrEmptyArea},
		{"negative_margin", Config{Cell: image.Pt(4, 4), Margin: image.Pt(-2, 0)}, ErrNegativeMargin},
		{"negative_offset", Config{Cell: image.Pt(4, 4), Offset: image.Pt(0, -1)}, ErrNegativeMargin},
		{"more_columns_than_pixels", Config{Cell: image.Pt(2, 2), Fixed: true, FixedCells: image.Pt(33, 1)}, ErrDegenerateGrid},
		{"more_rows_than_pixels", Config{Cell: image.Pt(2, 2), Fixed: true, FixedCells: image.Pt(1, 64)}, ErrDegenerateGrid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Compute(32, 32, c.cfg)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	n := Config{Cell: image.Pt(0, -3), FixedCells: image.Pt(0, 4)}.Normalize()
	if n.Cell != image.Pt(1, 1) {
		t.Fatalf("cell = %v, want (1,1)", n.Cell)
	}
	if n.FixedCells != image.Pt(1, 4) {
		t.Fatalf("fixed cells = %v, want (1,4)", n.FixedCells)
	}
	if err := n.Validate(); err != nil {
		t.Fatalf("normalized config should validate: %v", err)
	}
}

func TestCellRect(t *testing.T) {
	l := Layout{
		Cell:    image.Pt(8, 6),
		Cells:   image.Pt(2, 2),
		Advance: image.Pt(10, 7),
		Area:    image.Rect(3, 4, 23, 18),
	}
	got := l.CellRect(1, 1)
	want := image.Rect(13, 11, 21, 17)
	if got != want {
		t.Fatalf("CellRect(1,1) = %v, want %v", got, want)
	}
}

func TestTracker(t *testing.T) {
	cfg := Config{Cell: image.Pt(16, 16)}
	tr := NewTracker(cfg)
	if !tr.Dirty() {
		t.Fatalf("new tracker should be dirty")
	}
	if _, ok := tr.Layout(); ok {
		t.Fatalf("no layout expected before Recompute")
	}

	l, err := tr.Recompute(32, 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Dirty() {
		t.Fatalf("tracker should be clean after Recompute")
	}

	if tr.Set(cfg) {
		t.Fatalf("setting an equal config should not report a change")
	}
	if tr.Dirty() {
		t.Fatalf("equal config should not dirty the tracker")
	}

	cfg.Padding = image.Pt(1, 1)
	if !tr.Set(cfg) {
		t.Fatalf("padding change should be reported")
	}
	if tr.Config().Padding != image.Pt(1, 1) {
		t.Fatalf("Config should return the new padding, got %v", tr.Config().Padding)
	}
	if !tr.Dirty() {
		t.Fatalf("tracker should be dirty after a change")
	}

	cfg.Margin = image.Pt(40, 40)
	tr.Set(cfg)
	if _, err := tr.Recompute(32, 32); !errors.Is(err, ErrEmptyArea) {
		t.Fatalf("expected ErrEmptyArea, got %v", err)
	}
	if !tr.Dirty() {
		t.Fatalf("failed recompute should leave the tracker dirty")
	}
	if prev, ok := tr.Layout(); !ok || prev != l {
		t.Fatalf("failed recompute should keep the previous layout")
	}
}
