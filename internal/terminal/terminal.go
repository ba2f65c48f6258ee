package terminal

import (
	"errors"
	"image/color"
	"unicode/utf8"

	"earthquake-explorer/internal/commands"
	"earthquake-explorer/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineChars     = 200
	// maxHistory bounds the submitted lines kept for Up/Down recall.
	maxHistory = 50
)

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console bar at the bottom of the screen, toggled with the grave key (`) and closed with ESC.
// While open it captures the keyboard, so the scene keys 1-4 only select modes when it is closed.
// Each submitted line is echoed to the log and executed through the command registry; errors are logged.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	history  []string
	recall   int // index into history while browsing with Up/Down; len(history) when not browsing
	font     rl.Font
}

// New returns a closed console that logs to log and runs lines through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the console. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update handles toggling, and when open: typing, paste, history, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	toggled := false
	if rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		toggled = true
	} else if t.open && rl.IsKeyPressed(rl.KeyEscape) {
		t.open = false
		toggled = true
	}
	if toggled {
		// Drop queued characters so the toggle key does not end up in the input.
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			if c == '`' {
				continue
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		t.browse(-1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		t.browse(1)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		t.Submit(t.inputBuf)
		t.inputBuf = ""
	}
}

// Submit echoes line to the log, records it in the history and executes it.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	t.history = append(t.history, line)
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
	t.recall = len(t.history)
	if err := t.reg.ExecuteLine(line); err != nil && !errors.Is(err, commands.ErrEmpty) {
		t.log.Log(err.Error())
	}
}

func (t *Terminal) browse(step int) {
	if len(t.history) == 0 {
		return
	}
	t.recall = max(0, min(len(t.history), t.recall+step))
	if t.recall == len(t.history) {
		t.inputBuf = ""
		return
	}
	t.inputBuf = t.history[t.recall]
}

// Draw draws the input bar at the bottom when open, and the recent log lines above it.
// Uses GetScreenWidth/GetScreenHeight so the bar matches the 2D overlay coordinate system.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Lines()
	start := max(0, len(lines)-maxLinesOnScreen)
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > maxLineChars {
			line = line[:maxLineChars-3] + "..."
		}
		t.drawText(line, padding, y, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	t.drawText(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) drawText(text string, x, y int, c color.RGBA) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(text, int32(x), int32(y), fontSize, c)
}
