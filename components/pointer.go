package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PointerData is the cursor position normalized to [-0.5, 0.5] on both axes
type PointerData struct {
	math.Vec2
}

var Pointer = donburi.NewComponentType[PointerData]()
