package gamemath

import "math"

// Projection maps world points to screen pixels for an unrotated perspective
// camera at Eye looking down -Z.
type Projection struct {
	Eye    Vec3
	FOV    float64 // vertical, radians
	Near   float64
	Far    float64
	Width  float64 // target size in pixels
	Height float64

	// AspectRatio overrides Width/Height when set.
	AspectRatio float64
}

// Aspect returns AspectRatio if set, else Width/Height, or 1 for an empty target.
func (p Projection) Aspect() float64 {
	if p.AspectRatio > 0 {
		return p.AspectRatio
	}
	if p.Height <= 0 {
		return 1
	}
	return p.Width / p.Height
}

// Focal is the distance at which one world unit spans half the target height.
func (p Projection) Focal() float64 {
	return 1 / math.Tan(p.FOV/2)
}

// Project returns the pixel position and view depth of v. ok is false when v
// lies outside the near/far range.
func (p Projection) Project(v Vec3) (x, y, depth float64, ok bool) {
	rel := v.Sub(p.Eye)
	depth = -rel.Z
	if depth < p.Near || depth > p.Far {
		return 0, 0, depth, false
	}
	f := p.Focal()
	ndcX := rel.X * f / p.Aspect() / depth
	ndcY := rel.Y * f / depth
	x = (ndcX*0.5 + 0.5) * p.Width
	y = (1 - (ndcY*0.5 + 0.5)) * p.Height
	return x, y, depth, true
}
