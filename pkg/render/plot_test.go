package render

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gocaustics/pkg/geometry"
	"github.com/philipparndt/gocaustics/pkg/optics"
)

func hitAt(x, y float64) optics.Hit {
	return optics.Hit{Point: geometry.NewVector2(x, y), OK: true}
}

func TestPlotFixedWindow(t *testing.T) {
	window := geometry.Rect{
		Min: geometry.NewVector2(0, 0),
		Max: geometry.NewVector2(256, 256),
	}
	hits := []optics.Hit{
		hitAt(0, 0),
		hitAt(128, 128),
		{}, // miss, must not be drawn
	}

	img := Plot(hits, Options{Width: 256, Height: 256, Window: &window})

	if img.RGBAAt(0, 0) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected white pixel at (0, 0), got %v", img.RGBAAt(0, 0))
	}
	if img.RGBAAt(128, 128) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected white pixel at (128, 128), got %v", img.RGBAAt(128, 128))
	}

	// Count lit pixels: exactly the two hits
	lit := 0
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			if img.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	if lit != 2 {
		t.Errorf("expected 2 lit pixels, got %d", lit)
	}
}

func TestPlotClipsOutsideWindow(t *testing.T) {
	window := geometry.Rect{
		Min: geometry.NewVector2(0, 0),
		Max: geometry.NewVector2(10, 10),
	}
	hits := []optics.Hit{hitAt(-5, 5), hitAt(15, 5)}

	img := Plot(hits, Options{Width: 32, Height: 32, Window: &window})

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if img.RGBAAt(x, y).R > 0 {
				t.Fatalf("expected no lit pixels, found one at (%d, %d)", x, y)
			}
		}
	}
}

func TestPlotAccumulate(t *testing.T) {
	window := geometry.Rect{
		Min: geometry.NewVector2(0, 0),
		Max: geometry.NewVector2(1, 1),
	}
	hits := []optics.Hit{hitAt(0.5, 0.5), hitAt(0.5, 0.5), hitAt(0.5, 0.5)}

	img := Plot(hits, Options{Width: 8, Height: 8, Window: &window, Accumulate: true})

	single := Plot(hits[:1], Options{Width: 8, Height: 8, Window: &window, Accumulate: true})
	if img.RGBAAt(4, 4).R <= single.RGBAAt(4, 4).R {
		t.Errorf("repeated hits should brighten the pixel: %v vs %v",
			img.RGBAAt(4, 4), single.RGBAAt(4, 4))
	}
}

func TestFitWindowIsSquareWithMargin(t *testing.T) {
	hits := []optics.Hit{hitAt(-2, 0), hitAt(2, 0), hitAt(0, 1)}

	window := FitWindow(hits)
	size := window.Size()

	if size.X != size.Y {
		t.Errorf("expected square window, got %v", size)
	}
	if size.X < 4 {
		t.Errorf("window too small to cover hits: %v", size)
	}
	for _, hit := range hits {
		if hit.Point.X < window.Min.X || hit.Point.X > window.Max.X ||
			hit.Point.Y < window.Min.Y || hit.Point.Y > window.Max.Y {
			t.Errorf("hit %v outside fitted window %v", hit.Point, window)
		}
	}
}

func TestFitWindowDegenerate(t *testing.T) {
	window := FitWindow(nil)
	if window.Size().X <= 0 || window.Size().Y <= 0 {
		t.Errorf("expected a finite fallback window, got %v", window)
	}

	point := FitWindow([]optics.Hit{hitAt(3, 3)})
	if point.Size().X <= 0 {
		t.Errorf("expected a finite window for a single point, got %v", point)
	}
}

func TestSavePPM(t *testing.T) {
	window := geometry.Rect{
		Min: geometry.NewVector2(0, 0),
		Max: geometry.NewVector2(1, 1),
	}
	img := Plot([]optics.Hit{hitAt(0.5, 0.5)}, Options{Width: 4, Height: 4, Window: &window})

	path := filepath.Join(t.TempDir(), "caustics.ppm")
	if err := SavePPM(path, img); err != nil {
		t.Fatalf("SavePPM failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading PPM failed: %v", err)
	}

	header := []byte("P6\n4 4\n255\n")
	if !bytes.HasPrefix(data, header) {
		t.Errorf("bad PPM header: %q", data[:min(len(data), 16)])
	}
	if len(data) != len(header)+4*4*3 {
		t.Errorf("bad PPM size: expected %d bytes, got %d", len(header)+4*4*3, len(data))
	}
}

func TestSaveByExtension(t *testing.T) {
	window := geometry.Rect{
		Min: geometry.NewVector2(0, 0),
		Max: geometry.NewVector2(1, 1),
	}
	img := Plot([]optics.Hit{hitAt(0.5, 0.5)}, Options{Width: 4, Height: 4, Window: &window})
	dir := t.TempDir()

	if err := Save(filepath.Join(dir, "out.png"), img); err != nil {
		t.Errorf("Save png failed: %v", err)
	}
	if err := Save(filepath.Join(dir, "out.ppm"), img); err != nil {
		t.Errorf("Save ppm failed: %v", err)
	}
	if err := Save(filepath.Join(dir, "out.bmp"), img); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
