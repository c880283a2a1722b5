package components

import (
	cfg "github.com/automoto/scrollscene/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	WheelY   float64 // wheel notches this frame, positive = toward the top of the page
}

var Input = donburi.NewComponentType[InputData]()

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}
