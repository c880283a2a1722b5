package factory

import (
	"github.com/automoto/scrollscene/archetypes"
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStory spawns the page-state entity for a page of sectionCount sections.
// The page starts at the top with section 0 current.
func CreateStory(ecs *ecs.ECS, sectionCount int, width, height, pixelRatio float64) *donburi.Entry {
	story := archetypes.Story.Spawn(ecs)

	components.Viewport.SetValue(story, components.ViewportData{
		Width:      width,
		Height:     height,
		PixelRatio: pixelRatio,
	})
	components.Scroll.SetValue(story, components.ScrollData{
		Tracker: motion.Tracker{Current: 0, Count: sectionCount},
	})
	components.Clock.SetValue(story, components.ClockData{
		Clock: motion.NewClock(),
	})
	components.Debug.SetValue(story, components.DebugData{
		PanelOpen: cfg.Debug.Panel,
		Overlay:   cfg.Debug.Overlay,
	})
	return story
}
