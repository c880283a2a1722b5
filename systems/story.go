package systems

import (
	"sort"

	"github.com/automoto/scrollscene/components"
	"github.com/automoto/scrollscene/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MustStory returns the page-state entity. The scene creates it before any
// system runs, so a missing entity is a wiring bug.
func MustStory(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := tags.Story.First(ecs.World)
	if !ok {
		panic("story entity not created")
	}
	return entry
}

// Sections returns the section entities ordered by index.
func Sections(ecs *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Section.Each(ecs.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Section.Get(out[i]).Index < components.Section.Get(out[j]).Index
	})
	return out
}

func sectionAt(ecs *ecs.ECS, index int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Section.Each(ecs.World, func(e *donburi.Entry) {
		if components.Section.Get(e).Index == index {
			found = e
		}
	})
	return found, found != nil
}

func sectionCount(ecs *ecs.ECS) int {
	n := 0
	tags.Section.Each(ecs.World, func(*donburi.Entry) {
		n++
	})
	return n
}
