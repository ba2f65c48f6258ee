package tour

import "fmt"

// Mode is the active camera/content preset. Keys 1-4 select Overview..ConvectionFocus.
// The zero value Intro is the startup view shown before any key press.
type Mode int

const (
	Intro Mode = iota
	Overview
	CoreFocus
	SurfaceFocus
	ConvectionFocus
)

// Modes lists the selectable modes in key order.
var Modes = []Mode{Overview, CoreFocus, SurfaceFocus, ConvectionFocus}

var modeNames = map[Mode]string{
	Intro:           "intro",
	Overview:        "overview",
	CoreFocus:       "core",
	SurfaceFocus:    "surface",
	ConvectionFocus: "convection",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Key returns the number key that selects m, or 0 for Intro.
func (m Mode) Key() rune {
	if m == Intro {
		return 0
	}
	return '0' + rune(m)
}

// ModeForKey maps '1'..'4' to a mode. Any other key returns false.
func ModeForKey(key rune) (Mode, bool) {
	if key < '1' || key > '4' {
		return Intro, false
	}
	return Mode(key - '0'), true
}

// ArrowHighlight selects which arrow set is opaque. At most one set is visible at a time.
type ArrowHighlight int

const (
	HighlightNone ArrowHighlight = iota
	HighlightCore
	HighlightConvection
)

var highlightNames = map[ArrowHighlight]string{
	HighlightNone:       "none",
	HighlightCore:       "core",
	HighlightConvection: "convection",
}

func (h ArrowHighlight) String() string {
	if name, ok := highlightNames[h]; ok {
		return name
	}
	return fmt.Sprintf("ArrowHighlight(%d)", int(h))
}

// CoreOpacity is the opacity applied to every core arrow.
func (h ArrowHighlight) CoreOpacity() float32 {
	if h == HighlightCore {
		return 1
	}
	return 0
}

// ConvectionOpacity is the opacity applied to every convection arrow.
func (h ArrowHighlight) ConvectionOpacity() float32 {
	if h == HighlightConvection {
		return 1
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (h ArrowHighlight) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler ("none", "core", "convection").
func (h *ArrowHighlight) UnmarshalText(b []byte) error {
	for v, name := range highlightNames {
		if name == string(b) {
			*h = v
			return nil
		}
	}
	return fmt.Errorf("unknown arrow highlight %q", string(b))
}
