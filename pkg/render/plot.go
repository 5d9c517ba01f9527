package render

import (
	"image"
	"image/color"

	"github.com/philipparndt/gocaustics/pkg/geometry"
	"github.com/philipparndt/gocaustics/pkg/optics"
)

// NominalSize is the edge length of the default square frame, matching
// the classic 256x256 receiver window.
const NominalSize = 256

// Options controls how receiver-plane points are mapped to pixels.
// When Window is nil the frame is fitted to the points with a small
// margin; otherwise Window gives the region of the receiver plane that
// fills the image.
type Options struct {
	Width      int
	Height     int
	Window     *geometry.Rect
	Accumulate bool // brighten pixels hit more than once
}

// DefaultOptions returns a nominal square auto-fit frame
func DefaultOptions() Options {
	return Options{Width: NominalSize, Height: NominalSize}
}

// FitWindow returns the smallest centered square region covering all
// hits, grown by a 5% margin. A degenerate pattern (no hits, or all
// hits on one point) gets a unit window so the mapping stays finite.
func FitWindow(hits []optics.Hit) geometry.Rect {
	bounds := geometry.NewRect()
	for _, hit := range hits {
		if hit.OK {
			bounds.Extend(hit.Point)
		}
	}

	if bounds.Empty() {
		return geometry.Rect{
			Min: geometry.NewVector2(-0.5, -0.5),
			Max: geometry.NewVector2(0.5, 0.5),
		}
	}

	center := bounds.Center()
	size := bounds.Size()
	half := size.X
	if size.Y > half {
		half = size.Y
	}
	half = half / 2 * 1.05
	if half == 0 {
		half = 0.5
	}

	return geometry.Rect{
		Min: geometry.NewVector2(center.X-half, center.Y-half),
		Max: geometry.NewVector2(center.X+half, center.Y+half),
	}
}

// Plot draws the hit points into a new image. Points outside the
// window are clipped. The core hands over raw receiver-plane
// coordinates; every scaling decision lives here.
func Plot(hits []optics.Hit, opts Options) *image.RGBA {
	width := opts.Width
	height := opts.Height
	if width <= 0 {
		width = NominalSize
	}
	if height <= 0 {
		height = NominalSize
	}

	var window geometry.Rect
	if opts.Window != nil {
		window = *opts.Window
	} else {
		window = FitWindow(hits)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	size := window.Size()
	if size.X <= 0 || size.Y <= 0 {
		return img
	}

	for _, hit := range hits {
		if !hit.OK {
			continue
		}

		x := int((hit.Point.X - window.Min.X) / size.X * float64(width))
		y := int((hit.Point.Y - window.Min.Y) / size.Y * float64(height))
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}

		if opts.Accumulate {
			img.SetRGBA(x, y, brighten(img.RGBAAt(x, y)))
		} else {
			img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
		}
	}

	return img
}

// brighten adds one accumulation step to a pixel, saturating at white
func brighten(c color.RGBA) color.RGBA {
	const step = 48
	add := func(v uint8) uint8 {
		if v > 255-step {
			return 255
		}
		return v + step
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: 255}
}
