package systems

import (
	"log"

	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/fonts"
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/automoto/scrollscene/tags"
	"github.com/yohamta/donburi/ecs"
)

// PixelRatio caps a device scale factor to the configured maximum.
func PixelRatio(deviceScale float64) float64 {
	if deviceScale <= 0 {
		return 1
	}
	if deviceScale > cfg.Render.MaxPixelRatio {
		return cfg.Render.MaxPixelRatio
	}
	return deviceScale
}

// ResizeViewport applies a new window size in logical pixels. The camera
// aspect follows immediately. The scroll offset is scaled with the viewport
// height so the page keeps its place, clamped to the new page, and the
// current section is re-derived from it.
func ResizeViewport(ecs *ecs.ECS, width, height, pixelRatio float64) {
	story := MustStory(ecs)
	vp := components.Viewport.Get(story)
	if vp.Width == width && vp.Height == height && vp.PixelRatio == pixelRatio {
		return
	}
	oldHeight := vp.Height
	ratioChanged := vp.PixelRatio != pixelRatio

	vp.Width = width
	vp.Height = height
	vp.PixelRatio = pixelRatio

	if cameraEntry, ok := tags.Camera.First(ecs.World); ok && height > 0 {
		components.Camera.Get(cameraEntry).Aspect = width / height
	}

	if ratioChanged {
		if err := fonts.LoadDefaults(pixelRatio); err != nil {
			log.Printf("Warning: Could not reload fonts for pixel ratio %.2f: %v", pixelRatio, err)
		}
	}

	scroll := components.Scroll.Get(story)
	offset := scroll.OffsetY
	if oldHeight > 0 {
		offset = offset * height / oldHeight
	}
	scroll.OffsetY = motion.ClampScroll(offset, height, scroll.Tracker.Count)
	CheckSection(ecs)
}
