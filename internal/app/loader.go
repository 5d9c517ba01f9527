package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/gocaustics/pkg/obj"
	"github.com/philipparndt/gocaustics/pkg/optics"
	"github.com/philipparndt/gocaustics/pkg/render"
	"github.com/philipparndt/gocaustics/pkg/watcher"
)

// setupMeshWatcher starts watching the source file for changes
func (app *App) setupMeshWatcher() error {
	mw, err := watcher.NewMeshWatcher(app.FileWatch.sourceFile, 500*time.Millisecond, func(changedFile string) {
		fmt.Printf("\nFile changed: %s\n", changedFile)
		app.FileWatch.needsReload = true
	})
	if err != nil {
		return err
	}

	mw.Start()
	app.FileWatch.meshWatcher = mw
	fmt.Printf("Watching file for changes: %s\n", app.FileWatch.sourceFile)
	return nil
}

// closeMeshWatcher stops the watcher if one is running
func (app *App) closeMeshWatcher() {
	if app.FileWatch.meshWatcher != nil {
		app.FileWatch.meshWatcher.Close()
	}
}

// reloadMesh parses the source file in the background. The field is
// rebuilt on the main thread once the mesh is available.
func (app *App) reloadMesh() {
	app.FileWatch.isLoading = true
	fmt.Println("Reloading mesh...")

	go func() {
		mesh, err := obj.Parse(app.FileWatch.sourceFile)
		if err != nil {
			fmt.Printf("Error reloading mesh: %v\n", err)
			app.FileWatch.isLoading = false
			return
		}
		app.FileWatch.loadedMesh = mesh
	}()
}

// applyLoadedMesh swaps in a background-loaded mesh, keeping the
// current receiver-plane distance
func (app *App) applyLoadedMesh() {
	mesh := app.FileWatch.loadedMesh
	if mesh == nil {
		return
	}
	app.FileWatch.loadedMesh = nil
	app.FileWatch.isLoading = false

	field, err := optics.NewField(mesh, app.Scene.eta, optics.DefaultBeam())
	if err != nil {
		fmt.Printf("Error rebuilding field: %v\n", err)
		return
	}

	app.Scene.mesh = mesh
	app.Scene.field = field
	app.reproject()
	if !app.View.autoFit {
		// The frozen window may no longer cover the new pattern
		app.View.window = render.FitWindow(app.Scene.hits)
	}

	fmt.Printf("Mesh reloaded: %d vertices\n", mesh.VertexCount())
}
