package systems

import (
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RequestSpin starts the section-change spin on the section at index.
// Spins already playing on it keep running; their rotations add up.
func RequestSpin(ecs *ecs.ECS, index int) {
	entry, ok := sectionAt(ecs, index)
	if !ok {
		return
	}
	spin := components.Spin.Get(entry)
	delta := gamemath.V3(cfg.Section.SpinX, cfg.Section.SpinY, cfg.Section.SpinZ)
	spin.Active = append(spin.Active, motion.NewSpin(delta, cfg.Section.SpinDuration))
}

// UpdateSpins advances every playing spin by the frame delta and drops the finished ones.
func UpdateSpins(ecs *ecs.ECS) {
	dt := components.Clock.Get(MustStory(ecs)).Delta

	components.Spin.Each(ecs.World, func(e *donburi.Entry) {
		spin := components.Spin.Get(e)
		if len(spin.Active) == 0 {
			return
		}
		section := components.Section.Get(e)

		active := spin.Active[:0]
		for _, s := range spin.Active {
			step, finished := s.Advance(dt)
			section.Rotation = section.Rotation.Add(step)
			if !finished {
				active = append(active, s)
			}
		}
		// Clear the tail so finished spins can be collected.
		for i := len(active); i < len(spin.Active); i++ {
			spin.Active[i] = nil
		}
		spin.Active = active
	})
}
