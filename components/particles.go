package components

import (
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ParticlesData is a static point cloud drawn with size attenuation
type ParticlesData struct {
	Positions []gamemath.Vec3
	Size      float64 // world units
}

var Particles = donburi.NewComponentType[ParticlesData]()
