package rumble

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// SampleRate is the output rate of the rumble.
const SampleRate = beep.SampleRate(44100)

// volume is the rumble level relative to full scale, as a power of two.
const volume = -1.5

// Player plays a Noise through the speaker until Close.
type Player struct {
	ctrl *beep.Ctrl
}

// Start initialises the speaker and starts playing rumble gated by gate.
func Start(gate *Gate, rng *rand.Rand) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	vol := &effects.Volume{Streamer: NewNoise(gate, rng), Base: 2, Volume: volume}
	p := &Player{ctrl: &beep.Ctrl{Streamer: vol}}
	speaker.Play(p.ctrl)
	return p, nil
}

// SetMuted pauses or resumes output without touching the gate.
func (p *Player) SetMuted(muted bool) {
	speaker.Lock()
	p.ctrl.Paused = muted
	speaker.Unlock()
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
}
