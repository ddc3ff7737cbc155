// Package loader decodes sprite sheet files into sheets.
package loader

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/milk9111/tileslicer/sheet"
)

// File is a decoded sheet together with where it came from.
type File struct {
	Path   string
	Format string
	Sheet  *sheet.Sheet
}

// Name returns the file name without directory or extension, the default
// base name for sliced sprites.
func (f *File) Name() string {
	return BaseName(f.Path)
}

// Pixels makes a File usable as a sheet.Source.
func (f *File) Pixels() (*sheet.Sheet, error) {
	if f == nil || f.Sheet == nil {
		return nil, sheet.ErrUnreadable
	}
	return f.Sheet, nil
}

// Load reads and decodes the image at path.
func Load(path string) (*File, error) {
	img, format, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return &File{Path: path, Format: format, Sheet: sheet.FromImage(img)}, nil
}

// Decode reads the image at path without converting it, for hosts that
// upload it somewhere else first.
func Decode(path string) (image.Image, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("loader: read %s: %w", path, err)
	}
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, "", fmt.Errorf("loader: decode %s: %w", path, err)
	}
	return img, format, nil
}

// BaseName returns the file name of path without directory or extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Supported reports whether path has an extension Load can decode.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}
