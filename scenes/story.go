package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/scrollscene/assets"
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/fonts"
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/automoto/scrollscene/systems"
	"github.com/automoto/scrollscene/systems/factory"
	"github.com/automoto/scrollscene/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StoryScene is the scrolling page: one section object per screen height,
// the particle field behind them and the debug tooling on top.
type StoryScene struct {
	ecs   *ecs.ECS
	panel *ui.DebugPanel
	once  sync.Once

	// Last size reported by the window, applied once the scene exists.
	width, height, pixelRatio float64
}

// NewStoryScene creates the story scene sized to the configured window.
func NewStoryScene() *StoryScene {
	return &StoryScene{
		width:      float64(cfg.C.Width),
		height:     float64(cfg.C.Height),
		pixelRatio: 1,
	}
}

func (ss *StoryScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if ss.panelOpen() {
		ss.panel.UI.Update()
	}
}

func (ss *StoryScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Material.Background)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)

	if ss.panelOpen() {
		ss.panel.UI.Draw(screen)
	}
	systems.CaptureFrame(ss.ecs, screen)
}

// Resize applies a window size in logical pixels and the render pixel ratio.
// Panel text is rebuilt when the pixel ratio changes.
func (ss *StoryScene) Resize(width, height, pixelRatio float64) {
	ratioChanged := pixelRatio != ss.pixelRatio
	ss.width, ss.height, ss.pixelRatio = width, height, pixelRatio
	if ss.ecs == nil {
		return
	}
	systems.ResizeViewport(ss.ecs, width, height, pixelRatio)

	if ratioChanged && ss.panel != nil {
		ss.panel = ui.NewDebugPanel(ss.panel.Color(), pixelRatio, ss.panel.OnChange)
	}
}

func (ss *StoryScene) panelOpen() bool {
	if ss.ecs == nil || ss.panel == nil {
		return false
	}
	return components.Debug.Get(systems.MustStory(ss.ecs)).PanelOpen
}

func (ss *StoryScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	if err := fonts.LoadDefaults(ss.pixelRatio); err != nil {
		panic(err)
	}

	layout, err := assets.LoadLayout(assets.FS(), assets.StoryPath)
	if err != nil {
		log.Printf("Warning: Could not load scene layout, using built-in layout: %v", err)
		layout = assets.DefaultLayout()
	}

	ramp, err := assets.LoadRamp(assets.FS(), assets.GradientPath)
	if err != nil {
		log.Printf("Warning: Could not load gradient texture, using built-in ramp: %v", err)
		ramp = gamemath.DefaultRamp
	}

	materialColor, err := cfg.ParseHexColor(cfg.Material.Color)
	if err != nil {
		log.Printf("Warning: Invalid material color %q: %v", cfg.Material.Color, err)
		materialColor, _ = cfg.ParseHexColor("#ffeded")
	}

	if err := factory.CreateScene(ss.ecs, layout, ramp, materialColor, ss.width, ss.height, ss.pixelRatio); err != nil {
		panic(err)
	}

	ss.panel = ui.NewDebugPanel(materialColor, ss.pixelRatio, func(c color.RGBA) {
		systems.SetMaterialColor(ss.ecs, c)
	})

	// Clock first so every system sees this frame's delta
	ss.ecs.AddSystem(systems.UpdateClock)
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdatePointer)
	ss.ecs.AddSystem(systems.UpdateScroll)
	ss.ecs.AddSystem(systems.UpdateDebug)
	ss.ecs.AddSystem(systems.UpdateFrame)
	ss.ecs.AddSystem(systems.UpdateSpins)

	// Renderers
	ss.ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawCaptions)
	ss.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
}
