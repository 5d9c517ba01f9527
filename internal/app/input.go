package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocaustics/pkg/render"
)

// Receiver-plane step sizes, fine and coarse
const (
	smallStep = 0.1
	bigStep   = 1.0
)

// handleInput processes keyboard input
func (app *App) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeyW):
		app.setDistance(app.Scene.distance + smallStep)
	case rl.IsKeyPressed(rl.KeyS):
		app.setDistance(app.Scene.distance - smallStep)
	case rl.IsKeyPressed(rl.KeyE):
		app.setDistance(app.Scene.distance + bigStep)
	case rl.IsKeyPressed(rl.KeyD):
		app.setDistance(app.Scene.distance - bigStep)

	case rl.IsKeyPressed(rl.KeyQ):
		fmt.Printf("Current distance between lens and receiver plane: %g\n", app.Scene.distance)

	case rl.IsKeyPressed(rl.KeyP):
		app.savePattern()

	case rl.IsKeyPressed(rl.KeyA):
		app.View.autoFit = !app.View.autoFit
		if app.View.autoFit {
			app.View.window = render.FitWindow(app.Scene.hits)
		}

	case rl.IsKeyPressed(rl.KeyH):
		app.View.showHUD = !app.View.showHUD
	}
}

// savePattern exports the current pattern through the offline raster,
// using the same receiver-plane window as the screen
func (app *App) savePattern() {
	window := app.View.window
	img := render.Plot(app.Scene.hits, render.Options{
		Width:      render.NominalSize,
		Height:     render.NominalSize,
		Window:     &window,
		Accumulate: true,
	})

	filename := "caustics.png"
	if err := render.Save(filename, img); err != nil {
		fmt.Printf("Error saving pattern: %v\n", err)
		return
	}
	fmt.Printf("Saved %s (distance %g)\n", filename, app.Scene.distance)
}
