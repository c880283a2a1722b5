package factory

import (
	"math/rand"

	"github.com/automoto/scrollscene/archetypes"
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ParticlePositions scatters count points over the page: a square of
// cfg.Particles.Spread on X and Z, and from just above the first section down
// past the last one on Y. The same seed always gives the same field.
func ParticlePositions(count, sectionCount int, seed int64) []gamemath.Vec3 {
	rng := rand.New(rand.NewSource(seed))
	spread := cfg.Particles.Spread
	depth := cfg.Section.Spacing * float64(sectionCount)

	positions := make([]gamemath.Vec3, count)
	for i := range positions {
		x := (rng.Float64() - 0.5) * spread
		y := rng.Float64()*0.5 - rng.Float64()*depth
		z := (rng.Float64() - 0.5) * spread
		positions[i] = gamemath.V3(x, y, z)
	}
	return positions
}

func CreateParticles(ecs *ecs.ECS, sectionCount int) *donburi.Entry {
	particles := archetypes.Particles.Spawn(ecs)
	components.Particles.SetValue(particles, components.ParticlesData{
		Positions: ParticlePositions(cfg.Particles.Count, sectionCount, cfg.Particles.Seed),
		Size:      cfg.Particles.Size,
	})
	return particles
}
