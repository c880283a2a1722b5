package main

import (
	"flag"
	"log"
	"math"

	"github.com/automoto/scrollscene/config"
	"github.com/automoto/scrollscene/scenes"
	"github.com/automoto/scrollscene/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height, pixelRatio float64)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewStoryScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout renders at the device pixel density, capped by config.Render.MaxPixelRatio.
func (g *Game) Layout(width, height int) (int, int) {
	ratio := systems.PixelRatio(ebiten.Monitor().DeviceScaleFactor())
	g.scene.Resize(float64(width), float64(height), ratio)
	return int(math.Ceil(float64(width) * ratio)), int(math.Ceil(float64(height) * ratio))
}

func main() {
	debug := flag.Bool("debug", false, "Open the material panel and the stats overlay")
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	seed := flag.Int64("seed", config.Particles.Seed, "Particle field seed")
	width := flag.Int("width", config.C.Width, "Window width")
	height := flag.Int("height", config.C.Height, "Window height")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Initialize persistence and restore the last material color
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags win over both the config file and saved settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			config.Particles.Seed = *seed
		case "width":
			config.C.Width = *width
		case "height":
			config.C.Height = *height
		}
	})
	if *debug {
		config.Debug.Panel = true
		config.Debug.Overlay = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
