package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/fonts"
	"github.com/automoto/scrollscene/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var overlay struct {
	frames int
	lines  []string
}

// UpdateDebug handles the debug toggles and the capture key.
func UpdateDebug(ecs *ecs.ECS) {
	story := MustStory(ecs)
	input := components.Input.Get(story)
	debug := components.Debug.Get(story)

	if GetAction(input, cfg.ActionTogglePanel).JustPressed {
		debug.PanelOpen = !debug.PanelOpen
	}
	if GetAction(input, cfg.ActionToggleOverlay).JustPressed {
		debug.Overlay = !debug.Overlay
		overlay.frames = 0
	}
	if GetAction(input, cfg.ActionCapture).JustPressed {
		debug.CapturePending = true
	}
}

// DrawDebug renders the stats overlay. The text is rebuilt every
// cfg.Debug.UpdateInterval frames so it stays readable.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	story := MustStory(ecs)
	if !components.Debug.Get(story).Overlay {
		return
	}

	if overlay.frames%max(cfg.Debug.UpdateInterval, 1) == 0 {
		overlay.lines = debugLines(ecs)
	}
	overlay.frames++

	face := fonts.Debug.Get()
	lineHeight := face.Metrics().Height.Ceil()
	width := 0
	for _, l := range overlay.lines {
		width = max(width, len(l))
	}
	// Monospace estimate; goregular digits are close enough.
	boxW := float32(width*lineHeight/2 + 16)
	boxH := float32(len(overlay.lines)*lineHeight + 12)
	vector.FillRect(screen, 4, 4, boxW, boxH, cfg.BlackOverlay, false)

	for i, l := range overlay.lines {
		text.Draw(screen, l, face, 12, 4+lineHeight*(i+1), cfg.Green)
	}
}

func debugLines(ecs *ecs.ECS) []string {
	story := MustStory(ecs)
	scroll := components.Scroll.Get(story)
	vp := components.Viewport.Get(story)

	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("section %d/%d  scroll %.0f", scroll.Tracker.Current+1, scroll.Tracker.Count, scroll.OffsetY),
		fmt.Sprintf("viewport %.0fx%.0f @%.2f", vp.Width, vp.Height, vp.PixelRatio),
	}
	if cameraEntry, ok := tags.Camera.First(ecs.World); ok {
		rig := components.CameraRig.Get(cameraEntry)
		camera := components.Camera.Get(cameraEntry)
		lines = append(lines,
			fmt.Sprintf("rig %.3f,%.3f  camera y %.3f", rig.Position.X, rig.Position.Y, camera.Y),
			fmt.Sprintf("aspect %.3f", camera.Aspect),
		)
	}

	spinning := make([]string, 0, 3)
	for _, e := range Sections(ecs) {
		if n := len(components.Spin.Get(e).Active); n > 0 {
			spinning = append(spinning, fmt.Sprintf("%d:%d", components.Section.Get(e).Index, n))
		}
	}
	if len(spinning) > 0 {
		lines = append(lines, "spins "+strings.Join(spinning, " "))
	}
	lines = append(lines, "materialColor "+cfg.FormatHexColor(MaterialColor(ecs)))
	return lines
}
