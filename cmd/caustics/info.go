package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gocaustics/pkg/analysis"
	"github.com/philipparndt/gocaustics/pkg/obj"
	"github.com/philipparndt/gocaustics/pkg/optics"
	"github.com/spf13/cobra"
)

var (
	infoDistance float64
	infoEta      float64
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display mesh, refraction and pattern statistics",
	Long:  "Show mesh extents, refraction outcomes and the measurements of the pattern projected at the given receiver-plane distance.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64Var(&infoDistance, "distance", -10.0, "Receiver-plane distance along the Z axis")
	infoCmd.Flags().Float64Var(&infoEta, "eta", defaultEta, "Refractive index ratio")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, err := obj.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OBJ file: %v\n", err)
		os.Exit(1)
	}

	field, err := optics.NewField(mesh, infoEta, optics.DefaultBeam())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building field: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeField(field, infoDistance)
	bbox := mesh.BoundingBox()

	fmt.Println("Lens Mesh Information")
	fmt.Println("=====================")
	if mesh.Name != "" {
		fmt.Printf("Name: %s\n", mesh.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh:")
	fmt.Printf("  Vertices: %d\n", mesh.VertexCount())
	fmt.Printf("  Min: %s\n", analysis.FormatVector(bbox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(bbox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(bbox.Center()))

	fmt.Printf("Refraction (eta = %g):\n", infoEta)
	fmt.Printf("  Valid rays: %d\n", result.ValidRays)
	fmt.Printf("  Total internal reflection: %d\n", result.TIRCount)
	fmt.Printf("  Degenerate normals: %d\n\n", result.DegenerateCount)

	fmt.Printf("Pattern at distance %g:\n", infoDistance)
	fmt.Printf("  Hits: %d\n", result.HitCount)
	fmt.Printf("  Misses: %d\n", result.MissCount)
	if result.HitCount > 0 {
		fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.Bounds.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.Bounds.Max))
		fmt.Printf("  Centroid: %s\n", analysis.FormatPoint(result.Centroid))
		fmt.Printf("  RMS spread: %.6f units\n", result.RMSSpread)
	}
}
