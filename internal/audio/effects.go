// Package audio plays short procedural sound effects. Playback is
// fire-and-forget: failures disable sound instead of surfacing errors, since
// the game is fully playable silent (and always silent over SSH).
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effects owns the speaker and synthesizes the game's sounds on demand.
type Effects struct {
	enabled  bool
	initOnce sync.Once
	ready    bool
}

// NewEffects creates the effect player. When enabled is false every play
// call is a no-op.
func NewEffects(enabled bool) *Effects {
	return &Effects{enabled: enabled}
}

// Capture plays a rising two-note blip for an asteroid capture.
func (e *Effects) Capture() {
	e.play(beep.Seq(
		tone(660, 60*time.Millisecond, 0.5),
		tone(990, 90*time.Millisecond, 0.5),
	))
}

// Collision plays a low thud for hitting junk.
func (e *Effects) Collision() {
	e.play(tone(110, 250*time.Millisecond, 0.8))
}

// GameOver plays a falling tone for fuel exhaustion.
func (e *Effects) GameOver() {
	e.play(beep.Seq(
		tone(440, 150*time.Millisecond, 0.6),
		tone(330, 150*time.Millisecond, 0.6),
		tone(220, 300*time.Millisecond, 0.6),
	))
}

// play initializes the speaker on first use and hands the streamer off.
func (e *Effects) play(s beep.Streamer) {
	if !e.enabled {
		return
	}
	e.initOnce.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err == nil {
			e.ready = true
		}
	})
	if !e.ready {
		return
	}
	speaker.Play(s)
}

// tone returns a finite sine streamer with an exponential decay envelope.
func tone(freq float64, d time.Duration, gain float64) beep.Streamer {
	total := sampleRate.N(d)
	osc := &oscillator{
		step:  freq / float64(sampleRate),
		decay: 5.0 / float64(total),
		gain:  gain,
		left:  total,
	}
	return osc
}

// oscillator is a decaying sine wave streamer.
type oscillator struct {
	phase float64
	step  float64
	decay float64
	gain  float64
	age   int
	left  int
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.left <= 0 {
		return 0, false
	}
	for i := range samples {
		if o.left <= 0 {
			return i, i > 0
		}
		v := o.gain * math.Exp(-o.decay*float64(o.age)) * math.Sin(2*math.Pi*o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.step
		if o.phase >= 1 {
			o.phase -= 1
		}
		o.age++
		o.left--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
