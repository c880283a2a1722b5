package motion

import (
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// CameraY maps the scroll offset straight to the camera height:
// -offsetY / viewportHeight * spacing.
func CameraY(offsetY, viewportHeight, spacing float64) float64 {
	if viewportHeight <= 0 {
		return 0
	}
	return -offsetY / viewportHeight * spacing
}

// NormalizePointer converts a cursor position in pixels to [-0.5, 0.5] on both axes.
func NormalizePointer(cursorX, cursorY, width, height float64) math.Vec2 {
	if width <= 0 || height <= 0 {
		return math.Vec2{}
	}
	return math.Vec2{X: cursorX/width - 0.5, Y: cursorY/height - 0.5}
}

// ParallaxTarget is the rig position the pointer asks for; screen Y grows
// downward so it is inverted.
func ParallaxTarget(pointer math.Vec2) math.Vec2 {
	return math.Vec2{X: pointer.X, Y: -pointer.Y}
}

// EaseToward moves pos toward target by (target - pos) * smoothing * dt.
// The step is clamped so a long frame never overshoots the target.
func EaseToward(pos, target math.Vec2, smoothing, dt float64) math.Vec2 {
	k := smoothing * dt
	if k > 1 {
		k = 1
	}
	if k < 0 {
		k = 0
	}
	return math.Vec2{
		X: pos.X + (target.X-pos.X)*k,
		Y: pos.Y + (target.Y-pos.Y)*k,
	}
}

// IdleSpin adds the constant idle rotation for one frame.
func IdleSpin(rot gamemath.Vec3, rateX, rateY, dt float64) gamemath.Vec3 {
	rot.X += dt * rateX
	rot.Y += dt * rateY
	return rot
}

// Rules are the constants of the frame update.
type Rules struct {
	Spacing   float64 // vertical distance between sections
	Smoothing float64 // parallax smoothing factor
	IdleRateX float64
	IdleRateY float64
}

// Inputs is what the frame update reads from the page.
type Inputs struct {
	OffsetY        float64
	ViewportHeight float64
	Pointer        math.Vec2
}

// Frame is the transform state the frame update owns.
type Frame struct {
	Rig       math.Vec2
	CameraY   float64
	Rotations []gamemath.Vec3
}

// Step advances f by dt seconds and returns the new frame; f is not modified.
func Step(f Frame, in Inputs, r Rules, dt float64) Frame {
	next := Frame{
		Rig:       EaseToward(f.Rig, ParallaxTarget(in.Pointer), r.Smoothing, dt),
		CameraY:   CameraY(in.OffsetY, in.ViewportHeight, r.Spacing),
		Rotations: make([]gamemath.Vec3, len(f.Rotations)),
	}
	for i, rot := range f.Rotations {
		next.Rotations[i] = IdleSpin(rot, r.IdleRateX, r.IdleRateY, dt)
	}
	return next
}
