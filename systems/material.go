package systems

import (
	"image/color"

	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/tags"
	"github.com/yohamta/donburi/ecs"
)

// MaterialColor returns the shared solid material color.
func MaterialColor(ecs *ecs.ECS) color.RGBA {
	entry, ok := tags.SolidMaterial.First(ecs.World)
	if !ok {
		return color.RGBA{}
	}
	return components.Material.Get(entry).Color
}

// SetMaterialColor changes the material color option. The solid material and
// the particle material always receive the same color; the choice is persisted.
func SetMaterialColor(ecs *ecs.ECS, c color.RGBA) {
	c.A = 255
	if entry, ok := tags.SolidMaterial.First(ecs.World); ok {
		components.Material.Get(entry).Color = c
	}
	if entry, ok := tags.ParticleMaterial.First(ecs.World); ok {
		components.Material.Get(entry).Color = c
	}

	cfg.Material.Color = cfg.FormatHexColor(c)
	_ = SaveSettings(&SavedSettings{MaterialColor: cfg.Material.Color})
}
