package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gocaustics/pkg/analysis"
	"github.com/philipparndt/gocaustics/pkg/geometry"
	"github.com/philipparndt/gocaustics/pkg/render"
	"github.com/spf13/cobra"
)

var (
	renderDistance   float64
	renderEta        float64
	renderOut        string
	renderSize       int
	renderWindow     string
	renderAccumulate bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render the caustic pattern to an image file",
	Long: `Project the refracted beam onto the receiver plane and write the
resulting point pattern as a PNG or PPM image (chosen by extension).`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Float64Var(&renderDistance, "distance", -10.0, "Receiver-plane distance along the Z axis")
	renderCmd.Flags().Float64Var(&renderEta, "eta", defaultEta, "Refractive index ratio")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "caustics.png", "Output image file (.png or .ppm)")
	renderCmd.Flags().IntVar(&renderSize, "size", render.NominalSize, "Image edge length in pixels")
	renderCmd.Flags().StringVar(&renderWindow, "window", "", "Receiver-plane region minX,minY,maxX,maxY (default: fit to pattern)")
	renderCmd.Flags().BoolVar(&renderAccumulate, "accumulate", true, "Brighten pixels hit by multiple rays")
}

func runRender(cmd *cobra.Command, args []string) {
	field := loadField(args[0], renderEta)
	hits := field.Project(renderDistance)

	opts := render.Options{
		Width:      renderSize,
		Height:     renderSize,
		Accumulate: renderAccumulate,
	}

	if renderWindow != "" {
		window, err := parseWindow(renderWindow)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing window: %v\n", err)
			os.Exit(1)
		}
		opts.Window = &window
	}

	img := render.Plot(hits, opts)
	if err := render.Save(renderOut, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}

	stats := analysis.AnalyzePattern(hits)
	fmt.Printf("Rendered %d points to %s (distance %g)\n", stats.HitCount, renderOut, renderDistance)
}

// parseWindow parses a minX,minY,maxX,maxY receiver-plane region
func parseWindow(spec string) (geometry.Rect, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return geometry.Rect{}, fmt.Errorf("expected minX,minY,maxX,maxY, got %q", spec)
	}

	var values [4]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Rect{}, fmt.Errorf("bad coordinate %q: %w", part, err)
		}
		values[i] = value
	}

	if values[2] <= values[0] || values[3] <= values[1] {
		return geometry.Rect{}, fmt.Errorf("window %q has no area", spec)
	}

	return geometry.Rect{
		Min: geometry.NewVector2(values[0], values[1]),
		Max: geometry.NewVector2(values[2], values[3]),
	}, nil
}
