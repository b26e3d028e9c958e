// Package object holds the rigid-body entities the simulation advances each
// frame: the player satellite and the asteroids and junk pieces that drift
// across the play frame.
package object

// FlyingObject is a transform plus a liveness flag. Deactivated objects stay
// in their collection and are skipped by interaction checks and rendering;
// they are never removed or compacted during a session.
type FlyingObject struct {
	Transform Transform
	Active    bool
}

// NewFlyingObject returns an active object with an identity transform.
func NewFlyingObject() FlyingObject {
	return FlyingObject{
		Transform: NewTransform(),
		Active:    true,
	}
}
