package loader

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, path string, encode func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(3, 0, color.NRGBA{R: 0xff, A: 0xff})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name   string
		file   string
		format string
		encode func(*os.File, image.Image) error
	}{
		{"png", "hero.png", "png", func(f *os.File, img image.Image) error { return png.Encode(f, img) }},
		{"bmp", "hero.bmp", "bmp", func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), c.file)
			writeImage(t, path, c.encode)

			f, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if f.Format != c.format {
				t.Fatalf("format = %q, want %q", f.Format, c.format)
			}
			if f.Name() != "hero" {
				t.Fatalf("name = %q, want hero", f.Name())
			}
			s, err := f.Pixels()
			if err != nil {
				t.Fatalf("pixels: %v", err)
			}
			if s.Width != 4 || s.Height != 2 {
				t.Fatalf("size = %dx%d, want 4x2", s.Width, s.Height)
			}
			// image row 0 is the top row, row 1 bottom-up
			if s.Alpha(3, 1) != 0xff {
				t.Fatalf("expected opaque pixel at (3,1)")
			}
			if c.format == "png" && s.Alpha(0, 0) != 0 {
				t.Fatalf("expected transparent pixel at (0,0)")
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSupported(t *testing.T) {
	for _, p := range []string{"a.png", "b.JPG", "c.webp", "d.tiff", "e.bmp"} {
		if !Supported(p) {
			t.Fatalf("%s should be supported", p)
		}
	}
	for _, p := range []string{"a.yaml", "b", "c.psd"} {
		if Supported(p) {
			t.Fatalf("%s should not be supported", p)
		}
	}
}
