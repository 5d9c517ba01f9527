package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Save writes the image to a file, choosing the format from the
// extension (.png or .ppm)
func Save(filename string, img *image.RGBA) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return SavePNG(filename, img)
	case ".ppm":
		return SavePPM(filename, img)
	default:
		return fmt.Errorf("unsupported image format: %s (expected .png or .ppm)", filepath.Ext(filename))
	}
}

// SavePNG writes the image as a PNG file
func SavePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePPM writes the image as a binary P6 PPM file
func SavePPM(filename string, img *image.RGBA) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	bounds := img.Bounds()
	w := bufio.NewWriter(f)

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if _, err := w.Write([]byte{c.R, c.G, c.B}); err != nil {
				return fmt.Errorf("failed to write PPM pixel data: %w", err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM data: %w", err)
	}
	return nil
}
