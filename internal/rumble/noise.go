package rumble

import (
	"math/rand/v2"
	"sync/atomic"
)

// Gate is an on/off switch written by the frame loop and read by the audio goroutine.
type Gate struct {
	on atomic.Bool
}

// Set turns the gate on or off.
func (g *Gate) Set(on bool) {
	g.on.Store(on)
}

// On reports whether the gate is open.
func (g *Gate) On() bool {
	return g.on.Load()
}

const (
	// leak pulls the random walk back toward zero so brown noise stays centred.
	leak = 1.02
	// walkStep is the largest change per sample of the random walk.
	walkStep = 0.02
	// gain lifts the walk to a useful level; brown noise is quiet before it.
	gain = 3.5
	// fadeStep is how far the envelope moves per sample; 1/fadeStep samples from silence to full (about 11 ms at 44.1 kHz).
	fadeStep = 1.0 / 500
)

// Noise is a beep.Streamer producing a low brown-noise rumble while its gate is open and silence otherwise.
// The envelope ramps instead of switching so toggling the gate does not click.
type Noise struct {
	gate     *Gate
	rng      *rand.Rand
	walk     float64
	envelope float64
}

// NewNoise returns a rumble source gated by gate.
func NewNoise(gate *Gate, rng *rand.Rand) *Noise {
	return &Noise{gate: gate, rng: rng}
}

// Stream fills samples. It never ends, so it always reports len(samples), true.
func (n *Noise) Stream(samples [][2]float64) (int, bool) {
	target := 0.0
	if n.gate.On() {
		target = 1
	}
	for i := range samples {
		switch {
		case n.envelope < target:
			n.envelope = min(target, n.envelope+fadeStep)
		case n.envelope > target:
			n.envelope = max(target, n.envelope-fadeStep)
		}
		if n.envelope == 0 {
			samples[i] = [2]float64{}
			continue
		}
		n.walk = (n.walk + walkStep*(n.rng.Float64()*2-1)) / leak
		v := max(-1, min(1, n.walk*gain)) * n.envelope
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

// Err always returns nil.
func (n *Noise) Err() error { return nil }
