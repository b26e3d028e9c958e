// Package game runs the salvage simulation: a player satellite maneuvering
// in a 2D orbital plane, capturing asteroids for fuel while dodging junk.
package game

import (
	"math/rand"

	"github.com/perihelion/salvage/internal/input"
	"github.com/perihelion/salvage/internal/object"
)

// Phase is the session's game state. The simulation makes exactly one
// transition on its own: Playing to GameOver when the satellite is
// deactivated. Start to Playing is driven by the host loop.
type Phase int

const (
	PhaseStart    Phase = iota // title screen
	PhasePlaying               // active gameplay
	PhaseGameOver              // terminal; satellite deactivated
)

// Session owns all simulation state for one play-through. It is mutated
// in place by exactly one goroutine; the renderer only reads it.
//
// Asteroid and junk collections only ever grow: captured asteroids and the
// satellite itself are deactivated in place, never removed. Sessions are
// short-lived, so the memory cost is accepted for simplicity.
type Session struct {
	Sat       object.FlyingObject
	Asteroids []object.FlyingObject
	Junks     []object.FlyingObject

	Fuel     float64
	Frames   uint32
	Controls input.Controls
	Phase    Phase

	rng *rand.Rand
}

// NewSession creates a fresh session using the given random source for
// spawn placement. Injecting the source keeps tests deterministic.
func NewSession(rng *rand.Rand) *Session {
	return &Session{
		Sat:  object.NewFlyingObject(),
		Fuel: InitialFuel,
		rng:  rng,
	}
}

// FrameEvents reports what happened during one Update call, so the host
// loop can react (sound effects, phase display) without re-deriving it.
type FrameEvents struct {
	Captured  int  // asteroids captured this frame
	Collided  bool // satellite hit junk
	OutOfFuel bool // fuel crossed below zero
}

// GameOver reports whether this frame ended the session.
func (e FrameEvents) GameOver() bool {
	return e.Collided || e.OutOfFuel
}
