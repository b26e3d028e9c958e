package object

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the rigid-body state of a single flying object. Rotation and
// AngVel are kept at unit length; both update methods renormalize after
// composing to correct floating-point drift.
type Transform struct {
	Rotation mgl64.Quat // orientation
	AngVel   mgl64.Quat // incremental rotation applied each frame
	Position mgl64.Vec3 // z stays 0 for gameplay objects
	Velocity mgl64.Vec3
}

// NewTransform returns a stationary, unrotated transform at the origin.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		AngVel:   mgl64.QuatIdent(),
	}
}

// Thrust is one frame's thruster contribution: a delta-velocity in the
// satellite's body frame and a yaw delta about the body Z axis. Both are
// already scaled by elapsed time when the controls are sampled.
type Thrust struct {
	DV mgl64.Vec3
	DW float64
}

// Steer advances the transform by dt seconds under the given thruster
// contribution and returns the result. The body-frame delta-velocity is
// rotated into the world frame by the pre-update orientation; velocity is
// persistent (inertial model), not reset each frame.
func (t Transform) Steer(th Thrust, dt float64) Transform {
	dv := t.Rotation.Rotate(th.DV)
	w := t.AngVel.Mul(mgl64.QuatRotate(th.DW, mgl64.Vec3{0, 0, 1})).Normalize()
	r := t.Rotation.Mul(w).Normalize()
	v := t.Velocity.Add(dv)
	return Transform{
		Rotation: r,
		AngVel:   w,
		Position: t.Position.Add(v.Mul(dt)),
		Velocity: v,
	}
}

// Tumble advances the transform by composing a constant-rate spin about the
// given fixed axis scaled by dt, and drifting in the play plane. The z
// component of velocity is ignored; motion stays in 2D.
func (t Transform) Tumble(axis mgl64.Vec3, dt float64) Transform {
	out := t
	out.Rotation = t.Rotation.Mul(mgl64.QuatRotate(dt, axis)).Normalize()
	out.Position = t.Position.Add(mgl64.Vec3{t.Velocity.X() * dt, t.Velocity.Y() * dt, 0})
	return out
}
