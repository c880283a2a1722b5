package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical page action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd
	ActionTogglePanel
	ActionToggleOverlay
	ActionCapture
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionScrollUp: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
			},
			ActionScrollDown: {
				Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			},
			ActionPageUp: {
				Keys: []ebiten.Key{ebiten.KeyPageUp},
			},
			ActionPageDown: {
				Keys: []ebiten.Key{ebiten.KeyPageDown, ebiten.KeySpace},
			},
			ActionHome: {
				Keys: []ebiten.Key{ebiten.KeyHome},
			},
			ActionEnd: {
				Keys: []ebiten.Key{ebiten.KeyEnd},
			},
			ActionTogglePanel: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionToggleOverlay: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionCapture: {
				Keys: []ebiten.Key{ebiten.KeyF12},
			},
		},
	}
}
