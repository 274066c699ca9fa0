// Package geometry provides the 2D and 3D vector types animated by the
// motion engine.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Vec2 represents a 2D point or direction.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < epsilon {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Equals reports whether v and o are equal within a small tolerance.
func (v Vec2) Equals(o Vec2) bool {
	return math.Abs(v.X-o.X) < epsilon && math.Abs(v.Y-o.Y) < epsilon
}

// LerpVec2 interpolates from a toward b by t. The motion is along the
// straight line through a and b; t outside [0, 1] continues past either
// endpoint on the same line.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

// Vec3 represents a 3D point or direction.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference of v and o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied by the scalar s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < epsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Equals reports whether v and o are equal within a small tolerance.
func (v Vec3) Equals(o Vec3) bool {
	return math.Abs(v.X-o.X) < epsilon &&
		math.Abs(v.Y-o.Y) < epsilon &&
		math.Abs(v.Z-o.Z) < epsilon
}

// LerpVec3 interpolates from a toward b by t. The motion is along the
// straight line through a and b; t outside [0, 1] continues past either
// endpoint on the same line.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}
