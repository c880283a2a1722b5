package gamemath

import "math"

// Mesh is an indexed triangle list centered on its local origin.
// Faces are wound counter-clockwise when seen from outside.
type Mesh struct {
	Vertices []Vec3
	Faces    [][3]int
}

// FaceNormal returns the unit normal of face i in local space.
func (m *Mesh) FaceNormal(i int) Vec3 {
	f := m.Faces[i]
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Torus builds a ring of the given radius around the Z axis with a tube of radius tube.
func Torus(radius, tube float64, radialSegments, tubularSegments int) *Mesh {
	m := &Mesh{}
	for j := 0; j <= radialSegments; j++ {
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * math.Pi
			ring := radius + tube*math.Cos(v)
			m.Vertices = append(m.Vertices, Vec3{
				X: ring * math.Cos(u),
				Y: ring * math.Sin(u),
				Z: tube * math.Sin(v),
			})
		}
	}

	row := tubularSegments + 1
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := row*j + i - 1
			b := row*(j-1) + i - 1
			c := row*(j-1) + i
			d := row*j + i
			m.Faces = append(m.Faces, [3]int{a, b, d}, [3]int{b, c, d})
		}
	}
	return m
}

// Cone builds an upright cone with its apex at +height/2 and a closed base.
func Cone(radius, height float64, radialSegments int) *Mesh {
	half := height / 2
	m := &Mesh{Vertices: []Vec3{{Y: half}, {Y: -half}}}
	const apex, center = 0, 1

	for i := 0; i < radialSegments; i++ {
		theta := float64(i) / float64(radialSegments) * 2 * math.Pi
		m.Vertices = append(m.Vertices, Vec3{
			X: radius * math.Sin(theta),
			Y: -half,
			Z: radius * math.Cos(theta),
		})
	}

	for i := 0; i < radialSegments; i++ {
		cur := 2 + i
		next := 2 + (i+1)%radialSegments
		m.Faces = append(m.Faces,
			[3]int{apex, cur, next},
			[3]int{center, next, cur},
		)
	}
	return m
}

// Sphere builds a UV sphere. Degenerate triangles at the poles are skipped.
func Sphere(radius float64, widthSegments, heightSegments int) *Mesh {
	m := &Mesh{}
	grid := make([][]int, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		grid[iy] = make([]int, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			grid[iy][ix] = len(m.Vertices)
			m.Vertices = append(m.Vertices, Vec3{
				X: -radius * math.Cos(u*2*math.Pi) * math.Sin(v*math.Pi),
				Y: radius * math.Cos(v*math.Pi),
				Z: radius * math.Sin(u*2*math.Pi) * math.Sin(v*math.Pi),
			})
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				m.Faces = append(m.Faces, [3]int{a, b, d})
			}
			if iy != heightSegments-1 {
				m.Faces = append(m.Faces, [3]int{b, c, d})
			}
		}
	}
	return m
}
