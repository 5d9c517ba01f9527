package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawHUD draws the parameter and statistics overlay
func (app *App) drawHUD() {
	y := int32(10)
	lineHeight := int32(20)

	stats := app.Scene.stats

	rl.DrawText(fmt.Sprintf("Mesh: %s", app.Scene.mesh.Name), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Distance: %.2f", app.Scene.distance), 10, y, 16, rl.Yellow)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Eta: %.4f", app.Scene.eta), 10, y, 16, rl.White)
	y += lineHeight * 2

	rl.DrawText(fmt.Sprintf("Vertices: %d", stats.VertexCount), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Hits: %d  Misses: %d", stats.HitCount, stats.MissCount), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("TIR: %d  Degenerate: %d", stats.TIRCount, stats.DegenerateCount), 10, y, 16, rl.White)
	y += lineHeight
	if stats.HitCount > 0 {
		rl.DrawText(fmt.Sprintf("Spread: %.4f", stats.RMSSpread), 10, y, 16, rl.White)
		y += lineHeight
	}
	y += lineHeight

	rl.DrawText("Controls:", 10, y, 16, rl.Yellow)
	y += lineHeight
	rl.DrawText("  W/S: Distance +/- 0.1", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  E/D: Distance +/- 1.0", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  Q: Print distance", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  P: Save image", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  A: Toggle auto-fit", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  H: Toggle this overlay", 10, y, 14, rl.LightGray)

	if app.FileWatch.isLoading {
		rl.DrawText("Reloading...", 10, int32(rl.GetScreenHeight())-60, 16, rl.Orange)
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, int32(rl.GetScreenHeight())-30, 20, rl.Lime)
}
