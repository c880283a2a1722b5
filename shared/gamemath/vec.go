package gamemath

import "math"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// RotateXYZ applies Euler angles in X, Y, Z order (R = Rx * Ry * Rz), matching
// the convention the section objects were authored with.
func (v Vec3) RotateXYZ(r Vec3) Vec3 {
	// Rz
	sz, cz := math.Sincos(r.Z)
	x := v.X*cz - v.Y*sz
	y := v.X*sz + v.Y*cz
	z := v.Z

	// Ry
	sy, cy := math.Sincos(r.Y)
	x, z = x*cy+z*sy, -x*sy+z*cy

	// Rx
	sx, cx := math.Sincos(r.X)
	y, z = y*cx-z*sx, y*sx+z*cx

	return Vec3{x, y, z}
}
