package tour

import (
	"earthquake-explorer/internal/geom"
	"earthquake-explorer/internal/tween"
)

// Camera and panel placement constants.
const (
	// FarPlane is the camera's far clip distance. Anything farther from the camera is not drawn.
	FarPlane = 1000
	// ShakeAmplitude bounds the per-frame Earth jitter on X and Y.
	ShakeAmplitude = 0.05
)

var (
	// HiddenPosition parks a caption panel well beyond FarPlane.
	HiddenPosition = geom.V3(0, 0, -3050)
	// parkedPosition is where captions wait before the first mode switch.
	parkedPosition = geom.V3(0, 0, -1050)

	initialCamera = CameraPose{
		Position: geom.V3(0, 11, 5),
		Target:   geom.V3(0, 13, 0),
	}
)

// CameraPose is where the camera sits and what it looks at.
type CameraPose struct {
	Position geom.Vec3
	Target   geom.Vec3
}

// PanelPose is the transform of a caption panel.
type PanelPose struct {
	Position geom.Vec3
	Rotation geom.Vec3 // Euler XYZ, radians
}

// State is the complete animated state of the scene for one frame.
// Controller.Apply and Animator.Tick take a State and return the next one; nothing else mutates it.
type State struct {
	Mode      Mode
	Highlight ArrowHighlight

	Shaking     bool
	Jitter      geom.Vec2 // sampled each tick, applied to EarthOffset while shaking
	EarthOffset geom.Vec2

	Camera     CameraPose
	Transition tween.Slot

	CoreArrows       [CoreArrowCount]Arrow
	ConvectionArrows [ConvectionArrowCount]Arrow

	Panels      [PanelCount]PanelPose
	PanelsReady bool // set once the caption font has loaded and every panel exists
}

// NewState returns the startup state: Intro mode, instructions in view, arrows at rest and transparent.
func NewState() State {
	s := State{
		Mode:             Intro,
		Highlight:        HighlightNone,
		Camera:           initialCamera,
		CoreArrows:       initialCoreArrows(),
		ConvectionArrows: initialConvectionArrows(),
	}
	for i := range s.Panels {
		s.Panels[i].Position = parkedPosition
	}
	s.Panels[Instructions].Position = geom.V3(0, 10, 0)
	return s
}

// WithPanelsReady returns s with PanelsReady set. Call once the scene has built every caption.
func (s State) WithPanelsReady() State {
	s.PanelsReady = true
	return s
}

// PanelVisible reports whether panel p lies within the camera's far plane.
func (s State) PanelVisible(p Panel) bool {
	return s.Panels[p].Position.Sub(s.Camera.Position).Length() <= FarPlane
}

// VisiblePanels returns the panels currently within the far plane, in Panel order.
func (s State) VisiblePanels() []Panel {
	var out []Panel
	for p := Panel(0); p < PanelCount; p++ {
		if s.PanelVisible(p) {
			out = append(out, p)
		}
	}
	return out
}
