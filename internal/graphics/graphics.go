package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the surface Run opens.
type Window struct {
	Width, Height int
	Title         string
}

// Run opens the window and runs the main loop. setup runs once after the window and GL
// context exist (load fonts there). Each frame it calls update (input); when update returns
// false the loop ends and the window is closed. Then it clears the screen to black and
// calls draw. ESC is not raylib's exit key here; update decides when to quit.
func Run(win Window, setup func(), update func() bool, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)
	if setup != nil {
		setup()
	}

	for !rl.WindowShouldClose() {
		if !update() {
			return
		}
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// ScreenSize returns the current render size in pixels.
func ScreenSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// FPS returns raylib's current frame rate estimate.
func FPS() int {
	return int(rl.GetFPS())
}
