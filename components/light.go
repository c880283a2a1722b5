package components

import (
	"github.com/automoto/scrollscene/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LightData is a directional light shining from Position toward the origin
type LightData struct {
	Position  gamemath.Vec3
	Intensity float64
}

var Light = donburi.NewComponentType[LightData]()
