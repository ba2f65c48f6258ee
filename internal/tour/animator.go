package tour

import (
	"fmt"
	"math/rand/v2"
)

// Motion selects how arrow velocities are scaled each tick.
type Motion int

const (
	// MotionDelta scales velocities by the measured frame time.
	MotionDelta Motion = iota
	// MotionFrame advances a fixed FrameStep per tick, so apparent speed follows the frame rate.
	MotionFrame
)

// Timing constants.
const (
	FrameStep = 1.0 / 60
	// MaxStep caps a single tick so a stalled window (drag, breakpoint) does not teleport the arrows.
	MaxStep = 0.25
)

func (m Motion) String() string {
	switch m {
	case MotionDelta:
		return "delta"
	case MotionFrame:
		return "frame"
	}
	return fmt.Sprintf("Motion(%d)", int(m))
}

// ParseMotion parses "delta" or "frame".
func ParseMotion(s string) (Motion, error) {
	switch s {
	case "delta":
		return MotionDelta, nil
	case "frame":
		return MotionFrame, nil
	}
	return MotionDelta, fmt.Errorf("unknown motion %q (want delta or frame)", s)
}

// Animator advances the arrows, the Earth shake, and the camera transition once per frame.
type Animator struct {
	rng    *rand.Rand
	motion Motion
}

// NewAnimator returns an animator sampling shake jitter from rng.
func NewAnimator(rng *rand.Rand, motion Motion) *Animator {
	return &Animator{rng: rng, motion: motion}
}

// Motion returns the active motion model.
func (a *Animator) Motion() Motion {
	return a.motion
}

// SetMotion switches the motion model from the next tick on.
func (a *Animator) SetMotion(m Motion) {
	a.motion = m
}

// Tick returns s advanced by one frame that took dt seconds. Call once per frame before drawing.
//
// Order: core arrows, convection arrows, jitter sampling, shake offset, camera transition.
// Arrow motion uses FrameStep instead of dt under MotionFrame; the camera transition always uses dt
// so a mode switch takes the same wall-clock time under either model.
func (a *Animator) Tick(s State, dt float32) State {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxStep {
		dt = MaxStep
	}
	step := dt
	if a.motion == MotionFrame {
		step = FrameStep
	}

	s.CoreArrows = stepCoreArrows(s.CoreArrows, CoreArrowSpeed*step, s.Highlight.CoreOpacity())
	s.ConvectionArrows = stepConvectionArrows(s.ConvectionArrows, step, s.Highlight.ConvectionOpacity())

	s.Jitter.X = a.jitter()
	s.Jitter.Y = a.jitter()
	if s.Shaking {
		s.EarthOffset = s.Jitter
	} else {
		s.EarthOffset.X, s.EarthOffset.Y = 0, 0
	}

	next, pos, ok := s.Transition.Advance(dt)
	s.Transition = next
	if ok {
		s.Camera.Position = pos
	}
	return s
}

// jitter returns a uniform sample in [-ShakeAmplitude, ShakeAmplitude].
func (a *Animator) jitter() float32 {
	return (a.rng.Float32()*2 - 1) * ShakeAmplitude
}
