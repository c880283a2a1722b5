package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; every entity is spawned into it.
const Default ecs.LayerID = 0

// SectionConfig contains section layout and animation values
type SectionConfig struct {
	Spacing float64 // Vertical distance between section objects (world units)

	// Spin played when a section becomes current
	SpinDuration float64 // seconds
	SpinX        float64 // radians, relative
	SpinY        float64
	SpinZ        float64

	// Idle rotation, radians per second
	IdleRateX float64
	IdleRateY float64
}

// CameraConfig contains camera and parallax configuration
type CameraConfig struct {
	FOV      float64 // vertical field of view in degrees
	Near     float64
	Far      float64
	Distance float64 // camera Z inside the rig

	ParallaxSmoothing float64 // exponential smoothing factor, per second
}

// ScrollConfig contains page scrolling values
type ScrollConfig struct {
	WheelStep float64 // pixels per wheel notch
	KeyStep   float64 // pixels per arrow key press
}

// ParticleConfig contains particle field values
type ParticleConfig struct {
	Count  int
	Spread float64 // width and depth of the field
	Size   float64 // world units, attenuated by distance
	Seed   int64
}

// MaterialConfig contains the shared material values
type MaterialConfig struct {
	Color      string     // hex, e.g. "#ffeded"
	Background color.RGBA // clear color behind the scene
}

// LightConfig is the fallback directional light when the layout has none
type LightConfig struct {
	X, Y, Z   float64
	Intensity float64
}

// RenderConfig contains render target values
type RenderConfig struct {
	MaxPixelRatio float64
}

// CaptionConfig contains section caption values
type CaptionConfig struct {
	Margin float64 // distance from the screen edge as a fraction of the viewport width
	Color  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Panel          bool // show the material color panel
	Overlay        bool // show the stats overlay
	UpdateInterval int  // frames between overlay text refreshes
	CaptureDir     string
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Section SectionConfig
var Camera CameraConfig
var Scroll ScrollConfig
var Particles ParticleConfig
var Material MaterialConfig
var Light LightConfig
var Render RenderConfig
var Caption CaptionConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	PageBlack    = color.RGBA{R: 30, G: 26, B: 32, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "scrollscene",
	}

	Section = SectionConfig{
		Spacing: 4,

		SpinDuration: 1.5,
		SpinX:        6,
		SpinY:        3,
		SpinZ:        1.5,

		IdleRateX: 0.1,
		IdleRateY: 0.12,
	}

	Camera = CameraConfig{
		FOV:      35,
		Near:     0.1,
		Far:      100,
		Distance: 6,

		ParallaxSmoothing: 5,
	}

	Scroll = ScrollConfig{
		WheelStep: 60,
		KeyStep:   40,
	}

	Particles = ParticleConfig{
		Count:  250,
		Spread: 10,
		Size:   0.03,
		Seed:   1,
	}

	Material = MaterialConfig{
		Color:      "#ffeded",
		Background: PageBlack,
	}

	Light = LightConfig{
		X: 1, Y: 1, Z: 0,
		Intensity: 1,
	}

	Render = RenderConfig{
		MaxPixelRatio: 2,
	}

	Caption = CaptionConfig{
		Margin: 0.1,
		Color:  color.RGBA{R: 255, G: 237, B: 237, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Panel:          false,
		Overlay:        false,
		UpdateInterval: 30,
		CaptureDir:     "captures",
	}
}
