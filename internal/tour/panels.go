package tour

import "fmt"

// Panel identifies one of the 3D caption panels.
type Panel int

const (
	Question Panel = iota
	Instructions
	CoreExplanation
	ConvectionExplanation
	ConvectionFollowup
	PanelCount
)

var panelNames = [PanelCount]string{
	Question:              "question",
	Instructions:          "instructions",
	CoreExplanation:       "core-explanation",
	ConvectionExplanation: "convection-explanation",
	ConvectionFollowup:    "convection-followup",
}

func (p Panel) String() string {
	if p >= 0 && p < PanelCount {
		return panelNames[p]
	}
	return fmt.Sprintf("Panel(%d)", int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Panel) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the kebab-case panel names.
func (p *Panel) UnmarshalText(b []byte) error {
	for i, name := range panelNames {
		if name == string(b) {
			*p = Panel(i)
			return nil
		}
	}
	return fmt.Errorf("unknown panel %q", string(b))
}

// Anchor says which point of the rendered caption sits at the panel position.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
)

// BaseGlyphSize is the caption letter height in world units before per-panel scaling.
const BaseGlyphSize = 0.25

// Caption is the text content and layout of a panel.
type Caption struct {
	Text      string
	GlyphSize float32 // letter height in world units
	Anchor    Anchor
}

// Captions holds the caption for each panel, indexed by Panel.
var Captions = [PanelCount]Caption{
	Question: {
		Text:      "We know that earthquakes can be caused\nby tectonic plates shifting,\nbut why do they shift in the first place?",
		GlyphSize: BaseGlyphSize,
		Anchor:    AnchorCenter,
	},
	Instructions: {
		Text:      "Use numbers 1 through 4 for scene selection.\nClick and drag to navigate scene.",
		GlyphSize: BaseGlyphSize,
		Anchor:    AnchorCenter,
	},
	CoreExplanation: {
		Text: "It all starts in the core.\nDeep in the Earth, heavy elements such as Iron,\nNickel, Uranium, and Potassium are in a constant\n" +
			"state of Nuclear Fission (splitting atoms) because they\nare breaking down. As these metallic isotopes break down,\n" +
			"they release what's called radioactive decay.",
		GlyphSize: BaseGlyphSize / 4,
		Anchor:    AnchorTopLeft,
	},
	ConvectionExplanation: {
		Text: "This Radioactive Decay releases incredible\namounts of energy that ascend toward the\nsurface via the process of Convection,\n" +
			"heating up the Asthenosphere, a\nsemi-solid viscous layer below the crust.",
		GlyphSize: BaseGlyphSize * 1.5,
		Anchor:    AnchorTopLeft,
	},
	ConvectionFollowup: {
		Text: "This energy then transfers its heat to the\ntectonic plates, pulling the plates away from\neach other (and toward each other in some parts)\n" +
			"as it cools down and sinks back down to the core,\nstarting the process over again.\n" +
			"Repeated pulling on these slabs causes tectonic\nmovement over time; i.e., earthquakes.",
		GlyphSize: BaseGlyphSize / 2,
		Anchor:    AnchorTopLeft,
	},
}
