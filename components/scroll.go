package components

import (
	"github.com/automoto/scrollscene/shared/motion"
	"github.com/yohamta/donburi"
)

// ScrollData is the page scroll offset and the section tracker fed by it
type ScrollData struct {
	OffsetY float64 // logical pixels from the top of the page
	Tracker motion.Tracker
}

var Scroll = donburi.NewComponentType[ScrollData]()
