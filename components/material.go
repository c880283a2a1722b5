package components

import (
	"image/color"

	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MaterialData is a flat surface color, optionally toon shaded through a ramp
type MaterialData struct {
	Color color.RGBA
	Ramp  gamemath.Ramp // nil = unlit
}

var Material = donburi.NewComponentType[MaterialData]()
