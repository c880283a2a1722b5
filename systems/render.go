package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/automoto/scrollscene/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Max vertices per DrawTriangles call; indices are uint16.
const maxBatchVertices = 65532

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	trianglesOp   = &ebiten.DrawTrianglesOptions{}
	scene         = &sceneRenderer{}
)

// sceneRenderer keeps its buffers between frames so drawing does not allocate
// once the scene has been seen at its largest.
type sceneRenderer struct {
	tris     []sceneTriangle
	world    []gamemath.Vec3
	vertices []ebiten.Vertex
	indices  []uint16
}

// sceneTriangle is a projected, shaded triangle ready for sorting.
type sceneTriangle struct {
	depth float64
	x, y  [3]float32
	r, g  float32
	b     float32
}

func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// DrawScene renders the section objects and particles from the camera.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Material.Background)

	proj, ok := projectionFor(ecs, screen.Bounds())
	if !ok {
		return
	}

	scene.tris = scene.tris[:0]
	scene.collectSections(ecs, proj)
	scene.collectParticles(ecs, proj)
	scene.flush(screen)
}

// projectionFor builds the camera projection for a render target of the given bounds.
func projectionFor(ecs *ecs.ECS, bounds image.Rectangle) (gamemath.Projection, bool) {
	cameraEntry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return gamemath.Projection{}, false
	}
	rig := components.CameraRig.Get(cameraEntry)
	camera := components.Camera.Get(cameraEntry)

	return gamemath.Projection{
		Eye:    gamemath.V3(rig.Position.X, rig.Position.Y+camera.Y, camera.Z),
		FOV:    camera.FOV * math.Pi / 180,
		Near:   camera.Near,
		Far:    camera.Far,
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),

		AspectRatio: camera.Aspect,
	}, true
}

func (s *sceneRenderer) collectSections(ecs *ecs.ECS, proj gamemath.Projection) {
	materialEntry, ok := tags.SolidMaterial.First(ecs.World)
	if !ok {
		return
	}
	material := components.Material.Get(materialEntry)

	toLight := gamemath.V3(0, 0, 1)
	intensity := 1.0
	if lightEntry, ok := tags.Light.First(ecs.World); ok {
		light := components.Light.Get(lightEntry)
		toLight = light.Position
		intensity = light.Intensity
	}

	tags.Section.Each(ecs.World, func(e *donburi.Entry) {
		section := components.Section.Get(e)
		if section.Mesh == nil {
			return
		}
		s.collectMesh(section, material, toLight, intensity, proj)
	})
}

func (s *sceneRenderer) collectMesh(section *components.SectionData, material *components.MaterialData, toLight gamemath.Vec3, intensity float64, proj gamemath.Projection) {
	mesh := section.Mesh
	s.world = s.world[:0]
	for _, v := range mesh.Vertices {
		s.world = append(s.world, v.RotateXYZ(section.Rotation).Add(section.Position))
	}
	world := s.world

	for fi, f := range mesh.Faces {
		a, b, c := world[f[0]], world[f[1]], world[f[2]]
		n := mesh.FaceNormal(fi).RotateXYZ(section.Rotation)

		// Cull faces pointing away from the eye.
		center := a.Add(b).Add(c).Scale(1.0 / 3)
		if n.Dot(center.Sub(proj.Eye)) >= 0 {
			continue
		}

		var t sceneTriangle
		visible := true
		depth := 0.0
		for k, v := range [3]gamemath.Vec3{a, b, c} {
			x, y, d, ok := proj.Project(v)
			if !ok {
				visible = false
				break
			}
			t.x[k], t.y[k] = float32(x), float32(y)
			depth += d
		}
		if !visible {
			continue
		}
		t.depth = depth / 3

		shade := 1.0
		if material.Ramp != nil {
			shade = gamemath.Toon(material.Ramp, n, toLight, intensity)
		}
		t.r, t.g, t.b = shadeChannels(material.Color, shade)
		s.tris = append(s.tris, t)
	}
}

func (s *sceneRenderer) collectParticles(ecs *ecs.ECS, proj gamemath.Projection) {
	materialEntry, ok := tags.ParticleMaterial.First(ecs.World)
	if !ok {
		return
	}
	material := components.Material.Get(materialEntry)
	r, g, b := shadeChannels(material.Color, 1)

	tags.Particles.Each(ecs.World, func(e *donburi.Entry) {
		particles := components.Particles.Get(e)
		for _, p := range particles.Positions {
			x, y, depth, ok := proj.Project(p)
			if !ok {
				continue
			}
			// Point size is attenuated by distance, scaled to half the target height.
			half := float32(math.Max(particles.Size*proj.Height/2/depth, 1) / 2)
			fx, fy := float32(x), float32(y)
			s.tris = append(s.tris,
				sceneTriangle{depth: depth, x: [3]float32{fx - half, fx + half, fx - half}, y: [3]float32{fy - half, fy - half, fy + half}, r: r, g: g, b: b},
				sceneTriangle{depth: depth, x: [3]float32{fx + half, fx + half, fx - half}, y: [3]float32{fy - half, fy + half, fy + half}, r: r, g: g, b: b},
			)
		}
	})
}

// flush draws the collected triangles far to near.
func (s *sceneRenderer) flush(screen *ebiten.Image) {
	sort.SliceStable(s.tris, func(i, j int) bool {
		return s.tris[i].depth > s.tris[j].depth
	})

	src := white()
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, t := range s.tris {
		if len(s.vertices)+3 > maxBatchVertices {
			screen.DrawTriangles(s.vertices, s.indices, src, trianglesOp)
			s.vertices = s.vertices[:0]
			s.indices = s.indices[:0]
		}
		base := uint16(len(s.vertices))
		for k := 0; k < 3; k++ {
			s.vertices = append(s.vertices, ebiten.Vertex{
				DstX:   t.x[k],
				DstY:   t.y[k],
				SrcX:   1,
				SrcY:   1,
				ColorR: t.r,
				ColorG: t.g,
				ColorB: t.b,
				ColorA: 1,
			})
		}
		s.indices = append(s.indices, base, base+1, base+2)
	}
	if len(s.vertices) > 0 {
		screen.DrawTriangles(s.vertices, s.indices, src, trianglesOp)
	}
}

func shadeChannels(c color.RGBA, shade float64) (r, g, b float32) {
	k := float32(shade) / 255
	return float32(c.R) * k, float32(c.G) * k, float32(c.B) * k
}
