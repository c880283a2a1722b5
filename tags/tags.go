package tags

import "github.com/yohamta/donburi"

var (
	Story            = donburi.NewTag().SetName("Story")
	Section          = donburi.NewTag().SetName("Section")
	Particles        = donburi.NewTag().SetName("Particles")
	SolidMaterial    = donburi.NewTag().SetName("SolidMaterial")
	ParticleMaterial = donburi.NewTag().SetName("ParticleMaterial")
	Light            = donburi.NewTag().SetName("Light")
	Camera           = donburi.NewTag().SetName("Camera")
)

// Section shapes, as named in the scene layout
const (
	ShapeTorus  = "torus"
	ShapeCone   = "cone"
	ShapeSphere = "sphere"
)
