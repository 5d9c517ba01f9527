package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gocaustics/pkg/render"
	"github.com/spf13/cobra"
)

var (
	sweepFrom   float64
	sweepTo     float64
	sweepFrames int
	sweepEta    float64
	sweepOut    string
	sweepSize   int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep [file]",
	Short: "Render an image sequence over a range of distances",
	Long: `Move the receiver plane from one distance to another in equal steps
and render one numbered image per step. The same receiver-plane window,
fitted across all frames, is used throughout so the focal motion stays
visible.`,
	Args: cobra.ExactArgs(1),
	Run:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Float64Var(&sweepFrom, "from", -20.0, "First receiver-plane distance")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", -1.0, "Last receiver-plane distance")
	sweepCmd.Flags().IntVar(&sweepFrames, "frames", 20, "Number of frames to render")
	sweepCmd.Flags().Float64Var(&sweepEta, "eta", defaultEta, "Refractive index ratio")
	sweepCmd.Flags().StringVarP(&sweepOut, "out", "o", "sweep.png", "Output name pattern; frame numbers are appended")
	sweepCmd.Flags().IntVar(&sweepSize, "size", render.NominalSize, "Image edge length in pixels")
}

func runSweep(cmd *cobra.Command, args []string) {
	if sweepFrames < 2 {
		fmt.Fprintf(os.Stderr, "Error: need at least 2 frames, got %d\n", sweepFrames)
		os.Exit(1)
	}

	field := loadField(args[0], sweepEta)

	// One pass to fit a window covering every frame
	window := render.FitWindow(field.Project(sweepFrom))
	for i := 1; i < sweepFrames; i++ {
		distance := frameDistance(i)
		hits := field.Project(distance)
		frameWindow := render.FitWindow(hits)
		if frameWindow.Min.X < window.Min.X {
			window.Min.X = frameWindow.Min.X
		}
		if frameWindow.Min.Y < window.Min.Y {
			window.Min.Y = frameWindow.Min.Y
		}
		if frameWindow.Max.X > window.Max.X {
			window.Max.X = frameWindow.Max.X
		}
		if frameWindow.Max.Y > window.Max.Y {
			window.Max.Y = frameWindow.Max.Y
		}
	}

	ext := filepath.Ext(sweepOut)
	base := strings.TrimSuffix(sweepOut, ext)

	for i := 0; i < sweepFrames; i++ {
		distance := frameDistance(i)
		img := render.Plot(field.Project(distance), render.Options{
			Width:      sweepSize,
			Height:     sweepSize,
			Window:     &window,
			Accumulate: true,
		})

		filename := fmt.Sprintf("%s_%03d%s", base, i, ext)
		if err := render.Save(filename, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving frame %d: %v\n", i, err)
			os.Exit(1)
		}
		fmt.Printf("Frame %3d: distance %8.3f -> %s\n", i, distance, filename)
	}
}

// frameDistance interpolates the receiver-plane distance for a frame
func frameDistance(frame int) float64 {
	return sweepFrom + (sweepTo-sweepFrom)*float64(frame)/float64(sweepFrames-1)
}
