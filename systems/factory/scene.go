package factory

import (
	"image/color"

	"github.com/automoto/scrollscene/assets"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene builds the whole scene graph for a layout. Nothing is added or
// removed afterwards; systems only change transforms and material colors.
func CreateScene(ecs *ecs.ECS, layout *assets.Layout, ramp gamemath.Ramp, c color.RGBA, width, height, pixelRatio float64) error {
	for _, spec := range layout.Sections {
		if _, err := CreateSection(ecs, spec); err != nil {
			return err
		}
	}
	CreateStory(ecs, len(layout.Sections), width, height, pixelRatio)
	CreateMaterials(ecs, c, ramp)
	CreateParticles(ecs, len(layout.Sections))
	CreateLight(ecs, layout.Light)
	CreateCamera(ecs, width, height)
	return nil
}
