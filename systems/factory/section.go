package factory

import (
	"fmt"

	"github.com/automoto/scrollscene/archetypes"
	"github.com/automoto/scrollscene/assets"
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/automoto/scrollscene/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MeshFor builds the geometry for a named section shape.
func MeshFor(shape string) (*gamemath.Mesh, error) {
	switch shape {
	case tags.ShapeTorus:
		return gamemath.Torus(1, 0.4, 16, 60), nil
	case tags.ShapeCone:
		return gamemath.Cone(1, 2, 32), nil
	case tags.ShapeSphere:
		return gamemath.Sphere(1.3, 16, 8), nil
	}
	return nil, fmt.Errorf("unknown section shape %q", shape)
}

// CreateSection spawns one section object, placed one section spacing below the previous.
func CreateSection(ecs *ecs.ECS, spec assets.SectionSpec) (*donburi.Entry, error) {
	mesh, err := MeshFor(spec.Shape)
	if err != nil {
		return nil, fmt.Errorf("section %d: %w", spec.Index, err)
	}

	section := archetypes.Section.Spawn(ecs)
	components.Section.SetValue(section, components.SectionData{
		Index:    spec.Index,
		Shape:    spec.Shape,
		Caption:  spec.Caption,
		Position: gamemath.V3(spec.OffsetX, -float64(spec.Index)*cfg.Section.Spacing, 0),
		Mesh:     mesh,
	})
	components.Spin.SetValue(section, components.SpinData{})
	return section, nil
}
