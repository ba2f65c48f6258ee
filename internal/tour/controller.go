package tour

import (
	"earthquake-explorer/internal/geom"
	"earthquake-explorer/internal/tween"
)

// Controller maps a mode to its preset and produces the resulting State.
type Controller struct {
	presets Presets
}

// NewController returns a controller driven by presets.
func NewController(presets Presets) *Controller {
	return &Controller{presets: presets}
}

// Presets returns the mode table in use.
func (c *Controller) Presets() Presets {
	return c.presets
}

// SetPresets replaces the mode table. The current State is not touched; the new table applies from the next Apply.
func (c *Controller) SetPresets(p Presets) {
	c.presets = p
}

// Apply switches s to mode m. Until s.PanelsReady is set, or for a mode without a preset, s is returned unchanged.
//
// The camera target, shake flag, arrow highlight and panel poses change immediately. The camera position
// starts a transition from where the camera is now; a transition already running is replaced.
// Every panel other than the preset's is moved to HiddenPosition, keeping its rotation.
func (c *Controller) Apply(s State, m Mode) State {
	if !s.PanelsReady {
		return s
	}
	p, ok := c.presets.Modes[m]
	if !ok {
		return s
	}
	s.Mode = m
	s.Transition = s.Transition.Start(tween.New(
		s.Camera.Position,
		p.Camera.Position,
		c.presets.Transition.Duration,
		c.presets.Transition.Curve,
	))
	s.Camera.Target = p.Camera.Target
	s.Shaking = p.Shake
	s.Highlight = p.Highlight
	for i := range s.Panels {
		if Panel(i) == p.Panel {
			s.Panels[i] = p.PanelPose
			continue
		}
		s.Panels[i].Position = HiddenPosition
	}
	return s
}

// ApplyKey applies the mode bound to key ('1'..'4'). ok is false for any other key, in which case s is returned as is.
func (c *Controller) ApplyKey(s State, key rune) (next State, ok bool) {
	m, ok := ModeForKey(key)
	if !ok {
		return s, false
	}
	return c.Apply(s, m), true
}

// Orbit rotates the camera around its target (yaw around +Y, pitch toward +Y, radians) and scales
// its distance by zoom. While a mode transition is running the camera belongs to it and s is returned unchanged.
func Orbit(s State, dYaw, dPitch, zoom float32) State {
	if s.Transition.Active() {
		return s
	}
	s.Camera.Position = geom.Orbit(s.Camera.Position, s.Camera.Target, dYaw, dPitch, zoom)
	return s
}
