package tween

import "earthquake-explorer/internal/geom"

// Slot holds at most one running tween. Starting a new tween replaces the current one,
// so a camera only ever follows the most recent request.
type Slot struct {
	current Tween
	active  bool
}

// Start returns a slot running tw. Any tween already in flight is dropped.
func (s Slot) Start(tw Tween) Slot {
	return Slot{current: tw, active: true}
}

// Active reports whether a tween is in flight.
func (s Slot) Active() bool {
	return s.active
}

// Current returns the in-flight tween, if any.
func (s Slot) Current() (Tween, bool) {
	return s.current, s.active
}

// Advance steps the in-flight tween by dt and returns the new slot and the sampled value.
// ok is false when the slot is empty. The slot empties after producing the final sample.
func (s Slot) Advance(dt float32) (next Slot, value geom.Vec3, ok bool) {
	if !s.active {
		return s, geom.Vec3{}, false
	}
	tw := s.current.Advance(dt)
	value = tw.Sample()
	if tw.Done() {
		return Slot{}, value, true
	}
	return Slot{current: tw, active: true}, value, true
}
