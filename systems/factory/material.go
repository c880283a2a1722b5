package factory

import (
	"image/color"

	"github.com/automoto/scrollscene/archetypes"
	"github.com/automoto/scrollscene/components"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// CreateMaterials spawns the toon material shared by the section objects and
// the unlit particle material. Both start with the same color.
func CreateMaterials(ecs *ecs.ECS, c color.RGBA, ramp gamemath.Ramp) {
	solid := archetypes.SolidMaterial.Spawn(ecs)
	components.Material.SetValue(solid, components.MaterialData{
		Color: c,
		Ramp:  ramp,
	})

	particle := archetypes.ParticleMaterial.Spawn(ecs)
	components.Material.SetValue(particle, components.MaterialData{
		Color: c,
	})
}
