package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gocaustics/internal/app"
	"github.com/philipparndt/gocaustics/version"
	"github.com/spf13/cobra"
)

// defaultEta is the refractive index ratio the lens surfaces are
// generated for (acrylic-like material)
const defaultEta = 1.457

var (
	rootDistance float64
	rootEta      float64
)

var rootCmd = &cobra.Command{
	Use:   "caustics <file>",
	Short: "Lens caustic simulator",
	Long: `caustics projects a collimated light beam through a lens surface mesh
and shows the refracted pattern on a movable receiver plane.

The viewer opens a window where the receiver-plane distance is adjusted
from the keyboard; the render, sweep, info and focus subcommands work
headlessly on the same mesh files.`,
	Version: version.GetFullVersion(),
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := app.Run(args[0], rootDistance, rootEta); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().Float64Var(&rootDistance, "distance", -10.0, "Initial receiver-plane distance along the Z axis")
	rootCmd.Flags().Float64Var(&rootEta, "eta", defaultEta, "Refractive index ratio (incident medium / transmitted medium)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
