package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/perihelion/salvage/internal/object"
	"github.com/perihelion/salvage/internal/physics"
)

// Update advances the simulation by dt seconds (pre-clamped by the host
// loop): integrates the satellite from the thruster flags, tumbles every
// spawned object, resolves captures and collisions, and runs the
// frame-counted spawner. Called exactly once per frame.
func (s *Session) Update(dt float64) FrameEvents {
	s.integrateSat(dt)

	// Inactive debris keeps tumbling; only interaction checks and rendering
	// skip it.
	for i := range s.Asteroids {
		s.Asteroids[i].Transform = s.Asteroids[i].Transform.Tumble(asteroidTumbleAxis, dt)
	}
	for i := range s.Junks {
		s.Junks[i].Transform = s.Junks[i].Transform.Tumble(junkTumbleAxis, dt)
	}

	var ev FrameEvents
	s.resolveCaptures(&ev)
	s.resolveCollisions(&ev)

	if s.Fuel < 0 {
		s.Sat.Active = false
		ev.OutOfFuel = true
	}
	if !s.Sat.Active && s.Phase == PhasePlaying {
		s.Phase = PhaseGameOver
	}

	s.spawnDue()
	s.Frames++
	return ev
}

// integrateSat applies one frame of thruster input to the satellite and
// burns fuel for every firing thruster.
func (s *Session) integrateSat(dt float64) {
	amtLin := dt * LinearGain
	amtRot := dt * AngularGain

	var th object.Thrust
	if s.Controls.YawLeft {
		th.DW += amtRot
	}
	if s.Controls.YawRight {
		th.DW -= amtRot
	}
	// Translations are in the satellite's body frame; flags combine
	// additively, so diagonals are faster than a single axis.
	if s.Controls.TransLeft {
		th.DV = th.DV.Add(mgl64.Vec3{-amtLin, 0, 0})
	}
	if s.Controls.TransRight {
		th.DV = th.DV.Add(mgl64.Vec3{amtLin, 0, 0})
	}
	if s.Controls.TransFwd {
		th.DV = th.DV.Add(mgl64.Vec3{0, amtLin, 0})
	}
	if s.Controls.TransBack {
		th.DV = th.DV.Add(mgl64.Vec3{0, -amtLin, 0})
	}

	s.Sat.Transform = s.Sat.Transform.Steer(th, dt)
	s.Fuel -= float64(s.Controls.ThrusterCount()) * FuelBurnPerThruster
}

// resolveCaptures deactivates every active asteroid within capture range
// while grab is held and credits the fuel reward.
func (s *Session) resolveCaptures(ev *FrameEvents) {
	if !s.Controls.Grab {
		return
	}
	for i := range s.Asteroids {
		a := &s.Asteroids[i]
		if !a.Active {
			continue
		}
		if physics.WithinRange(s.Sat.Transform.Position, a.Transform.Position, CaptureRadius) {
			a.Active = false
			s.Fuel += AsteroidFuelReward
			ev.Captured++
		}
	}
}

// resolveCollisions deactivates the satellite when any junk piece is within
// collision range. Junk survives the collision; the game does not.
func (s *Session) resolveCollisions(ev *FrameEvents) {
	for i := range s.Junks {
		if physics.WithinRange(s.Sat.Transform.Position, s.Junks[i].Transform.Position, CollisionRadius) {
			s.Sat.Active = false
			ev.Collided = true
		}
	}
}

// spawnDue appends new debris when the frame counter hits a spawn interval.
// The two interval checks are independent and may both fire on one frame.
func (s *Session) spawnDue() {
	if s.Frames%AsteroidSpawnInterval == 0 {
		s.Asteroids = append(s.Asteroids, s.spawnAtEdge())
	}
	if s.Frames%JunkSpawnInterval == 0 {
		s.Junks = append(s.Junks, s.spawnAtEdge())
	}
}

// spawnAtEdge creates an object entering from a uniformly random edge of the
// play frame, headed toward an independently random point on the opposite
// edge. Start and end coordinates along the edge axis are independent, so
// trajectories can be near-tangential and need not cross the field center.
func (s *Session) spawnAtEdge() object.FlyingObject {
	randIn := func(min, max float64) float64 {
		return min + s.rng.Float64()*(max-min)
	}

	var xs, xe, ys, ye float64
	switch s.rng.Intn(4) {
	case 0: // top
		xs, xe = randIn(FrameMinX, FrameMaxX), randIn(FrameMinX, FrameMaxX)
		ys, ye = FrameMaxY, FrameMinY
	case 1: // right
		xs, xe = FrameMaxX, FrameMinX
		ys, ye = randIn(FrameMinY, FrameMaxY), randIn(FrameMinY, FrameMaxY)
	case 2: // bottom
		xs, xe = randIn(FrameMinX, FrameMaxX), randIn(FrameMinX, FrameMaxX)
		ys, ye = FrameMinY, FrameMaxY
	case 3: // left
		xs, xe = FrameMinX, FrameMaxX
		ys, ye = randIn(FrameMinY, FrameMaxY), randIn(FrameMinY, FrameMaxY)
	}

	heading := math.Atan2(ye-ys, xe-xs)
	obj := object.NewFlyingObject()
	obj.Transform.Position = mgl64.Vec3{xs, ys, 0}
	obj.Transform.Velocity = mgl64.Vec3{math.Cos(heading) * SpawnSpeed, math.Sin(heading) * SpawnSpeed, 0}
	return obj
}
