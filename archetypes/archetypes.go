package archetypes

import (
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Story is the single page-state entity read by every system.
	Story = newArchetype(
		tags.Story,
		components.Viewport,
		components.Pointer,
		components.Scroll,
		components.Clock,
		components.Input,
		components.Debug,
	)
	Section = newArchetype(
		tags.Section,
		components.Section,
		components.Spin,
	)
	Particles = newArchetype(
		tags.Particles,
		components.Particles,
	)
	SolidMaterial = newArchetype(
		tags.SolidMaterial,
		components.Material,
	)
	ParticleMaterial = newArchetype(
		tags.ParticleMaterial,
		components.Material,
	)
	Light = newArchetype(
		tags.Light,
		components.Light,
	)
	Camera = newArchetype(
		tags.Camera,
		components.CameraRig,
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
