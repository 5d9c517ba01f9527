package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gocaustics/pkg/obj"
	"github.com/philipparndt/gocaustics/pkg/optics"
)

// loadField parses a mesh file and refracts it, exiting on failure.
// All headless subcommands start here.
func loadField(filename string, eta float64) *optics.Field {
	mesh, err := obj.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OBJ file: %v\n", err)
		os.Exit(1)
	}

	field, err := optics.NewField(mesh, eta, optics.DefaultBeam())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building field: %v\n", err)
		os.Exit(1)
	}

	return field
}
