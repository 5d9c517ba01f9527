package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawPattern maps the receiver-plane hits into the current window
// size and draws one point per hit. Colors follow a simple gradient
// over the window position and vertex index so neighboring mesh
// regions stay visually distinguishable.
func (app *App) drawPattern() {
	window := app.View.window
	size := window.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}

	screenW := float64(rl.GetScreenWidth())
	screenH := float64(rl.GetScreenHeight())
	total := len(app.Scene.hits)

	for i, hit := range app.Scene.hits {
		if !hit.OK {
			continue
		}

		fx := (hit.Point.X - window.Min.X) / size.X
		fy := (hit.Point.Y - window.Min.Y) / size.Y
		if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
			continue
		}

		col := rl.NewColor(
			uint8(fx*255),
			uint8(fy*255),
			uint8(float64(i)/float64(total)*255),
			255,
		)
		rl.DrawPixel(int32(fx*screenW), int32(fy*screenH), col)
	}
}
