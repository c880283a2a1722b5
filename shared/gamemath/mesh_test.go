package gamemath

import (
	"math"
	"testing"
)

func TestTorusCounts(t *testing.T) {
	m := Torus(1, 0.4, 16, 60)
	if got, want := len(m.Vertices), 17*61; got != want {
		t.Fatalf("len(Vertices) = %d, want %d", got, want)
	}
	if got, want := len(m.Faces), 16*60*2; got != want {
		t.Fatalf("len(Faces) = %d, want %d", got, want)
	}
}

func TestConeCounts(t *testing.T) {
	m := Cone(1, 2, 32)
	if got, want := len(m.Faces), 64; got != want {
		t.Fatalf("len(Faces) = %d, want %d", got, want)
	}
}

func TestSphereCounts(t *testing.T) {
	m := Sphere(1.3, 16, 8)
	// Poles contribute one triangle per segment instead of two.
	if got, want := len(m.Faces), 16*8*2-2*16; got != want {
		t.Fatalf("len(Faces) = %d, want %d", got, want)
	}
	for i, v := range m.Vertices {
		if math.Abs(v.Len()-1.3) > 1e-9 {
			t.Fatalf("vertex %d radius = %v, want 1.3", i, v.Len())
		}
	}
}

// Every face normal of a convex mesh centered on the origin points away from it.
func TestConvexMeshesFaceOutward(t *testing.T) {
	meshes := map[string]*Mesh{
		"cone":   Cone(1, 2, 32),
		"sphere": Sphere(1.3, 16, 8),
	}
	for name, m := range meshes {
		for i, f := range m.Faces {
			centroid := m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]]).Scale(1.0 / 3)
			if m.FaceNormal(i).Dot(centroid) <= 0 {
				t.Fatalf("%s face %d points inward", name, i)
			}
		}
	}
}

func TestTorusFacesOutward(t *testing.T) {
	m := Torus(1, 0.4, 16, 60)
	for i, f := range m.Faces {
		centroid := m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]]).Scale(1.0 / 3)
		// Direction from the tube's center line to the face.
		ring := Vec3{X: centroid.X, Y: centroid.Y}.Normalize()
		out := centroid.Sub(ring)
		if m.FaceNormal(i).Dot(out) <= 0 {
			t.Fatalf("torus face %d points inward", i)
		}
	}
}
