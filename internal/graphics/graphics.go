package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run opens a window and drives the main loop at 60 FPS: each frame it calls
// update (input and state), then clears the screen and calls draw. The FPS
// cap is also the rate limit on drag-position updates, since those happen at
// most once per frame. ESC is reserved for the terminal bar; quit via the
// window close button.
func Run(width, height int, title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 18, 24, 255))
		draw()
		rl.EndDrawing()
	}
}
