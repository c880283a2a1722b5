package gamemath

import (
	"math"
	"testing"
)

func near(a, b Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestRotateXYZSingleAxis(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		r    Vec3
		want Vec3
	}{
		{"x quarter", V3(0, 1, 0), V3(math.Pi/2, 0, 0), V3(0, 0, 1)},
		{"y quarter", V3(0, 0, 1), V3(0, math.Pi/2, 0), V3(1, 0, 0)},
		{"z quarter", V3(1, 0, 0), V3(0, 0, math.Pi/2), V3(0, 1, 0)},
		{"zero", V3(1, 2, 3), Vec3{}, V3(1, 2, 3)},
	}
	for _, tt := range tests {
		if got := tt.v.RotateXYZ(tt.r); !near(got, tt.want) {
			t.Fatalf("%s: RotateXYZ() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// Z is applied first, then Y, then X.
func TestRotateXYZOrder(t *testing.T) {
	v := V3(1, 0, 0)
	got := v.RotateXYZ(V3(math.Pi/2, 0, math.Pi/2))
	// Rz takes X to Y, then Rx takes Y to Z.
	if want := V3(0, 0, 1); !near(got, want) {
		t.Fatalf("RotateXYZ() = %v, want %v", got, want)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := V3(0.3, -1.2, 2.5)
	got := v.RotateXYZ(V3(6, 3, 1.5))
	if math.Abs(got.Len()-v.Len()) > 1e-9 {
		t.Fatalf("Len() = %v, want %v", got.Len(), v.Len())
	}
}

func TestProjectCenter(t *testing.T) {
	p := Projection{Eye: V3(0, 0, 6), FOV: 35 * math.Pi / 180, Near: 0.1, Far: 100, Width: 800, Height: 600}
	x, y, depth, ok := p.Project(Vec3{})
	if !ok {
		t.Fatalf("Project(origin) ok = false")
	}
	if x != 400 || y != 300 || depth != 6 {
		t.Fatalf("Project(origin) = (%v, %v, %v), want (400, 300, 6)", x, y, depth)
	}
	if _, _, _, ok := p.Project(V3(0, 0, 7)); ok {
		t.Fatalf("Project(behind camera) ok = true, want false")
	}
}

func TestProjectUpIsScreenUp(t *testing.T) {
	p := Projection{Eye: V3(0, 0, 6), FOV: 1, Near: 0.1, Far: 100, Width: 100, Height: 100}
	_, y, _, _ := p.Project(V3(0, 1, 0))
	if y >= 50 {
		t.Fatalf("Project(up).y = %v, want above center", y)
	}
}

func TestAspectRatioOverridesTargetSize(t *testing.T) {
	p := Projection{Eye: V3(0, 0, 6), FOV: 1, Near: 0.1, Far: 100, Width: 100, Height: 100}
	if got := p.Aspect(); got != 1 {
		t.Fatalf("Aspect() = %v, want 1", got)
	}
	xSquare, _, _, _ := p.Project(V3(1, 0, 0))

	p.AspectRatio = 2
	if got := p.Aspect(); got != 2 {
		t.Fatalf("Aspect() = %v, want 2", got)
	}
	xWide, _, _, _ := p.Project(V3(1, 0, 0))
	if math.Abs((xWide-50)*2-(xSquare-50)) > 1e-9 {
		t.Fatalf("Project(x=1).x = %v with aspect 2, want half the offset of %v", xWide, xSquare)
	}
}

func TestRampSample(t *testing.T) {
	r := Ramp{0.2, 0.5, 1}
	tests := map[float64]float64{0: 0.2, 0.3: 0.2, 0.34: 0.5, 0.66: 0.5, 0.7: 1, 1: 1, -1: 0.2, 2: 1}
	for in, want := range tests {
		if got := r.Sample(in); got != want {
			t.Fatalf("Sample(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestToonFacingAway(t *testing.T) {
	got := Toon(DefaultRamp, V3(-1, 0, 0), V3(1, 1, 0), 1)
	if got != DefaultRamp[0] {
		t.Fatalf("Toon() = %v, want darkest step %v", got, DefaultRamp[0])
	}
}
