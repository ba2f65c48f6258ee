package tween

import "earthquake-explorer/internal/geom"

// Tween moves a vector from From to To over Duration seconds along Curve.
// It is a value: Advance returns the advanced tween and leaves the receiver untouched.
type Tween struct {
	From     geom.Vec3
	To       geom.Vec3
	Duration float32
	Elapsed  float32
	Curve    Curve
}

// New returns a tween from from to to lasting duration seconds.
func New(from, to geom.Vec3, duration float32, curve Curve) Tween {
	return Tween{From: from, To: to, Duration: duration, Curve: curve}
}

// Progress returns elapsed/duration in [0, 1]. A non-positive duration counts as complete.
func (t Tween) Progress() float32 {
	if t.Duration <= 0 {
		return 1
	}
	p := t.Elapsed / t.Duration
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// Done reports whether the tween has reached To.
func (t Tween) Done() bool {
	return t.Progress() >= 1
}

// Sample returns the eased value at the current elapsed time.
func (t Tween) Sample() geom.Vec3 {
	if t.Done() {
		return t.To
	}
	return t.From.Lerp(t.To, t.Curve.Apply(t.Progress()))
}

// Advance returns the tween moved forward by dt seconds. Negative dt is ignored.
func (t Tween) Advance(dt float32) Tween {
	if dt > 0 {
		t.Elapsed += dt
	}
	return t
}
