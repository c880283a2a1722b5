package systems

import (
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/automoto/scrollscene/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock ticks the frame clock. Must run first so every later system
// sees this frame's delta.
func UpdateClock(ecs *ecs.ECS) {
	clock := components.Clock.Get(MustStory(ecs))
	clock.Elapsed, clock.Delta = clock.Clock.Tick()
}

// UpdateFrame applies the per-frame rules: camera height from scroll,
// parallax easing of the rig and idle rotation of every section.
func UpdateFrame(ecs *ecs.ECS) {
	story := MustStory(ecs)
	cameraEntry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return
	}
	rig := components.CameraRig.Get(cameraEntry)
	camera := components.Camera.Get(cameraEntry)

	sections := Sections(ecs)
	frame := motion.Frame{
		Rig:       rig.Position,
		CameraY:   camera.Y,
		Rotations: make([]gamemath.Vec3, len(sections)),
	}
	for i, e := range sections {
		frame.Rotations[i] = components.Section.Get(e).Rotation
	}

	in := motion.Inputs{
		OffsetY:        components.Scroll.Get(story).OffsetY,
		ViewportHeight: components.Viewport.Get(story).Height,
		Pointer:        components.Pointer.Get(story).Vec2,
	}
	next := motion.Step(frame, in, frameRules(), components.Clock.Get(story).Delta)

	rig.Position = next.Rig
	camera.Y = next.CameraY
	for i, e := range sections {
		components.Section.Get(e).Rotation = next.Rotations[i]
	}
}

func frameRules() motion.Rules {
	return motion.Rules{
		Spacing:   cfg.Section.Spacing,
		Smoothing: cfg.Camera.ParallaxSmoothing,
		IdleRateX: cfg.Section.IdleRateX,
		IdleRateY: cfg.Section.IdleRateY,
	}
}
