package debug

import (
	"fmt"
	"image/color"
	"runtime"

	"earthquake-explorer/internal/tour"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime overlays drawn at the top-right. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowState    bool // mode, highlight, shake and transition of the current scene state
	font         rl.Font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the overlay font. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// StateLines describes st for the state overlay.
func StateLines(st tour.State) []string {
	lines := []string{
		fmt.Sprintf("Mode: %s", st.Mode),
		fmt.Sprintf("Arrows: %s", st.Highlight),
	}
	if st.Shaking {
		lines = append(lines, fmt.Sprintf("Shake: %+.3f %+.3f", st.EarthOffset.X, st.EarthOffset.Y))
	}
	if tw, ok := st.Transition.Current(); ok {
		lines = append(lines, fmt.Sprintf("Camera: %3.0f%% %s", tw.Progress()*100, tw.Curve))
	}
	if !st.PanelsReady {
		lines = append(lines, "Captions: loading")
	}
	return lines
}

// Draw renders the enabled overlays. Call after the scene and console in the draw loop.
// FPS and memory text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(st tour.State) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, y, rl.Green)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, y, rl.Green)
		y += fpsLineHeight
	}
	if d.ShowState {
		for _, line := range StateLines(st) {
			d.drawRight(line, y, rl.SkyBlue)
			y += fpsLineHeight
		}
	}
}

func (d *Debug) drawRight(text string, y int32, c color.RGBA) {
	if text == "" {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, c)
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, c)
}
