package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D float32 vector. Used for the Earth shake offset.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D float32 vector in world units (Y up, +Z toward the default camera).
// It mirrors raylib's Vector3 layout so the scene can convert without copying field by field.
type Vec3 struct {
	X, Y, Z float32
}

// V3 returns Vec3{x, y, z}.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Lerp returns v + (o - v) * t. t is not clamped.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Deg converts degrees to radians.
func Deg(d float32) float32 {
	return d * math32.Pi / 180
}
