package game

import "github.com/go-gl/mathgl/mgl64"

// Gameplay tunables, centralized for easy adjustment. Distances are in world
// units; the play frame spans [-0.85, 0.85] x [-0.5, 0.5].

// Fuel
const (
	InitialFuel         = 0.6
	FuelBurnPerThruster = 0.0005 // per update call, per firing thruster
	AsteroidFuelReward  = 0.03
	FullFuelDisplay     = 1.0 // fuel bar renders as "full" above this
)

// Maneuvering
const (
	LinearGain  = 0.2  // body-frame delta-v per second per translate thruster
	AngularGain = 0.03 // yaw delta per second
)

// Interaction radii
const (
	CaptureRadius   = 0.07
	CollisionRadius = 0.1
)

// Spawning
const (
	AsteroidSpawnInterval = 800 // frames
	JunkSpawnInterval     = 400 // frames
	SpawnSpeed            = 0.1
)

// Play frame bounds
const (
	FrameMinX = -0.85
	FrameMaxX = 0.85
	FrameMinY = -0.5
	FrameMaxY = 0.5
)

// Tumble axes for debris spin. Deliberately unnormalized; the composed
// rotation is renormalized every frame.
var (
	asteroidTumbleAxis = mgl64.Vec3{1, 1, 1}
	junkTumbleAxis     = mgl64.Vec3{-1, 1, -1}
)
