package motion

import (
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Spin is a relative rotation played over a fixed duration with a quadratic
// ease-in-out. It yields increments rather than absolute values so several
// spins and the idle rotation can drive the same object additively.
type Spin struct {
	Delta    gamemath.Vec3
	progress *gween.Tween
	applied  float64
	done     bool
}

// NewSpin returns a spin that rotates by delta over duration seconds.
func NewSpin(delta gamemath.Vec3, duration float64) *Spin {
	return &Spin{
		Delta:    delta,
		progress: gween.New(0, 1, float32(duration), ease.InOutQuad),
	}
}

// Advance moves the spin forward by dt seconds and returns the rotation to add
// this frame. finished is true once the whole delta has been handed out.
func (s *Spin) Advance(dt float64) (step gamemath.Vec3, finished bool) {
	if s.done {
		return gamemath.Vec3{}, true
	}
	p, finished := s.progress.Update(float32(dt))
	cur := float64(p)
	if finished {
		cur = 1
	}
	step = s.Delta.Scale(cur - s.applied)
	s.applied = cur
	s.done = finished
	return step, finished
}

// Done reports whether the spin has completed.
func (s *Spin) Done() bool {
	return s.done
}
