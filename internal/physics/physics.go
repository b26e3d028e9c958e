// Package physics provides distance and proximity utilities.
package physics

import "github.com/go-gl/mathgl/mgl64"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b mgl64.Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// WithinRange checks if two points are within radius of each other.
func WithinRange(a, b mgl64.Vec3, radius float64) bool {
	return DistanceSquared(a, b) <= radius*radius
}
