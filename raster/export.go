package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Image returns the destination image. It is the live backing store, not a
// copy: pixels change as the surface is drawn to.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// WritePNG encodes the destination image as PNG to w.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("linden/raster: encode png: %w", err)
	}
	return nil
}

// SavePNG encodes the destination image as a PNG file at path.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("linden/raster: create %s: %w", path, err)
	}
	if err := png.Encode(f, s.img); err != nil {
		f.Close()
		return fmt.Errorf("linden/raster: encode %s: %w", path, err)
	}
	return f.Close()
}
