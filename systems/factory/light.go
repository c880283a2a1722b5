package factory

import (
	"github.com/automoto/scrollscene/archetypes"
	"github.com/automoto/scrollscene/assets"
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLight spawns the directional light. A nil spec uses cfg.Light.
func CreateLight(ecs *ecs.ECS, spec *assets.LightSpec) *donburi.Entry {
	data := components.LightData{
		Position:  gamemath.V3(cfg.Light.X, cfg.Light.Y, cfg.Light.Z),
		Intensity: cfg.Light.Intensity,
	}
	if spec != nil {
		data.Position = gamemath.V3(spec.X, spec.Y, spec.Z)
		data.Intensity = spec.Intensity
	}

	light := archetypes.Light.Spawn(ecs)
	components.Light.SetValue(light, data)
	return light
}
