package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocaustics/pkg/analysis"
	"github.com/philipparndt/gocaustics/pkg/obj"
	"github.com/philipparndt/gocaustics/pkg/optics"
	"github.com/philipparndt/gocaustics/pkg/render"
)

// App is the interactive caustics viewer
type App struct {
	Scene     SceneState
	View      ViewSettings
	FileWatch FileWatchState
}

// Run opens the interactive viewer for the given OBJ file. distance is
// the initial receiver-plane position and eta the session refractive
// index ratio; both come from the caller, the viewer owns no hidden
// configuration.
func Run(sourceFile string, distance, eta float64) error {
	mesh, err := obj.Parse(sourceFile)
	if err != nil {
		return fmt.Errorf("failed to load mesh: %w", err)
	}
	fmt.Printf("Loaded %s with %d vertices\n", sourceFile, mesh.VertexCount())

	field, err := optics.NewField(mesh, eta, optics.DefaultBeam())
	if err != nil {
		return fmt.Errorf("failed to build field: %w", err)
	}

	app := &App{
		Scene: SceneState{
			mesh:     mesh,
			field:    field,
			distance: distance,
			eta:      eta,
		},
		View: ViewSettings{
			autoFit: true,
			showHUD: true,
		},
		FileWatch: FileWatchState{
			sourceFile: sourceFile,
		},
	}
	app.reproject()

	if err := app.setupMeshWatcher(); err != nil {
		// Live reload is a convenience, the viewer still works without it
		fmt.Printf("File watching disabled: %v\n", err)
	}
	defer app.closeMeshWatcher()

	screenWidth := int32(render.NominalSize * 3)
	screenHeight := int32(render.NominalSize * 3)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(screenWidth, screenHeight, "Caustics")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		if app.FileWatch.needsReload && !app.FileWatch.isLoading {
			app.FileWatch.needsReload = false
			app.reloadMesh()
		}
		if app.FileWatch.loadedMesh != nil {
			app.applyLoadedMesh()
		}

		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		app.drawPattern()
		if app.View.showHUD {
			app.drawHUD()
		}
		rl.EndDrawing()
	}

	return nil
}

// reproject recomputes the receiver-plane pattern for the current
// distance. The refracted rays stay untouched.
func (app *App) reproject() {
	app.Scene.hits = app.Scene.field.Project(app.Scene.distance)
	app.Scene.stats = analysis.AnalyzePattern(app.Scene.hits)
	app.Scene.stats.ValidRays, app.Scene.stats.DegenerateCount, app.Scene.stats.TIRCount =
		analysis.CountRayStatuses(app.Scene.field.Rays())
	if app.View.autoFit {
		app.View.window = render.FitWindow(app.Scene.hits)
	}
}

// setDistance moves the receiver plane and reprojects
func (app *App) setDistance(distance float64) {
	app.Scene.distance = distance
	app.reproject()
}
