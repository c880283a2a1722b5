package components

import (
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/yohamta/donburi"
)

// ClockData holds the frame clock and the values of its latest tick
type ClockData struct {
	Clock   *motion.Clock
	Elapsed float64
	Delta   float64
}

var Clock = donburi.NewComponentType[ClockData]()
