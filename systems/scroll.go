package systems

import (
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll turns wheel and key input into page scroll.
func UpdateScroll(ecs *ecs.ECS) {
	story := MustStory(ecs)
	input := components.Input.Get(story)
	scroll := components.Scroll.Get(story)
	vp := components.Viewport.Get(story)

	dy := -input.WheelY * cfg.Scroll.WheelStep
	if GetAction(input, cfg.ActionScrollDown).Pressed {
		dy += cfg.Scroll.KeyStep
	}
	if GetAction(input, cfg.ActionScrollUp).Pressed {
		dy -= cfg.Scroll.KeyStep
	}
	if GetAction(input, cfg.ActionPageDown).JustPressed {
		dy += vp.Height
	}
	if GetAction(input, cfg.ActionPageUp).JustPressed {
		dy -= vp.Height
	}

	target := scroll.OffsetY + dy
	if GetAction(input, cfg.ActionHome).JustPressed {
		target = 0
	}
	if GetAction(input, cfg.ActionEnd).JustPressed {
		target = motion.MaxScroll(vp.Height, scroll.Tracker.Count)
	}
	ScrollTo(ecs, target)
}

// ScrollTo moves the page to offsetY, clamped to the page. A change in offset
// is a scroll notification and runs the section check.
func ScrollTo(ecs *ecs.ECS, offsetY float64) {
	story := MustStory(ecs)
	scroll := components.Scroll.Get(story)
	vp := components.Viewport.Get(story)

	offsetY = motion.ClampScroll(offsetY, vp.Height, scroll.Tracker.Count)
	if offsetY == scroll.OffsetY {
		return
	}
	scroll.OffsetY = offsetY
	CheckSection(ecs)
}

// CheckSection recomputes the current section and spins the section that
// became current, once per transition.
func CheckSection(ecs *ecs.ECS) {
	story := MustStory(ecs)
	scroll := components.Scroll.Get(story)
	vp := components.Viewport.Get(story)

	if index, changed := scroll.Tracker.Observe(scroll.OffsetY, vp.Height); changed {
		RequestSpin(ecs, index)
	}
}
