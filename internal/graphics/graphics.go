package graphics

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures the window opened by Run.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool // use the monitor size; Width and Height are ignored
	TargetFPS  int
	// OnResize, if set, is called with the new render size after the window is resized.
	OnResize func(width, height int)
	// OnExit, if set, runs after the last frame while the window still exists, to free GPU resources.
	OnExit func()
}

// Run opens the window and runs the main loop until the window is closed. Each frame it calls update with the
// seconds since the previous frame, then clears the screen and calls draw.
// raylib must be driven from the thread that created the window, so Run locks the calling goroutine to its OS thread.
func Run(opts Options, update func(dt float32), draw func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := opts.Width, opts.Height
	rl.InitWindow(int32(width), int32(height), opts.Title)
	defer rl.CloseWindow()
	if opts.Fullscreen {
		monitor := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
	}

	rl.SetExitKey(rl.KeyNull) // close via the window button; ESC belongs to the console
	rl.SetTargetFPS(int32(opts.TargetFPS))

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && opts.OnResize != nil {
			opts.OnResize(rl.GetRenderWidth(), rl.GetRenderHeight())
		}
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	if opts.OnExit != nil {
		opts.OnExit()
	}
}
