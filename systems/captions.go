package systems

import (
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// CaptionPosition returns where a section caption's baseline starts, in render
// pixels. Each caption is centered on its page section and sits on the side
// opposite its object.
func CaptionPosition(index int, offsetX float64, textWidth, ascent float64, vp *components.ViewportData, scrollY float64) (x, y float64) {
	ratio := vp.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	margin := cfg.Caption.Margin * vp.Width * ratio

	centerY := ((float64(index)+0.5)*vp.Height - scrollY) * ratio
	y = centerY + ascent/2

	if offsetX > 0 {
		return margin, y
	}
	return vp.Width*ratio - margin - textWidth, y
}

// DrawCaptions draws the section captions scrolled with the page.
func DrawCaptions(ecs *ecs.ECS, screen *ebiten.Image) {
	story := MustStory(ecs)
	vp := components.Viewport.Get(story)
	scrollY := components.Scroll.Get(story).OffsetY

	face := fonts.Caption.Get()
	ascent := float64(face.Metrics().Ascent.Ceil())
	screenH := float64(screen.Bounds().Dy())

	for _, e := range Sections(ecs) {
		section := components.Section.Get(e)
		if section.Caption == "" {
			continue
		}
		width := float64(font.MeasureString(face, section.Caption).Ceil())
		x, y := CaptionPosition(section.Index, section.Position.X, width, ascent, vp, scrollY)

		// Skip captions scrolled fully off screen.
		if y < 0 || y-ascent > screenH {
			continue
		}
		text.Draw(screen, section.Caption, face, int(x), int(y), cfg.Caption.Color)
	}
}
