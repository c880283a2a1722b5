package components

import "github.com/yohamta/donburi"

// ViewportData is the window size in logical pixels and the density the scene is rendered at
type ViewportData struct {
	Width      float64
	Height     float64
	PixelRatio float64 // render pixels per logical pixel, capped by config.Render.MaxPixelRatio
}

var Viewport = donburi.NewComponentType[ViewportData]()
