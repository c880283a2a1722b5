package gamemath

// Ramp is a toon gradient: brightness steps sampled with nearest filtering.
type Ramp []float64

// DefaultRamp is used when no gradient texture could be loaded.
var DefaultRamp = Ramp{0.27, 0.53, 1}

// Sample returns the step that covers t in [0, 1].
func (r Ramp) Sample(t float64) float64 {
	if len(r) == 0 {
		return t
	}
	i := int(t * float64(len(r)))
	if i < 0 {
		i = 0
	}
	if i >= len(r) {
		i = len(r) - 1
	}
	return r[i]
}

// Toon returns the shaded brightness of a face with normal n lit by a
// directional light coming from toLight.
func Toon(r Ramp, n, toLight Vec3, intensity float64) float64 {
	d := n.Dot(toLight.Normalize()) * intensity
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	return r.Sample(d)
}
