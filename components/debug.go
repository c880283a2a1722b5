package components

import "github.com/yohamta/donburi"

// DebugData tracks the debug panel, the stats overlay and pending frame captures
type DebugData struct {
	PanelOpen      bool
	Overlay        bool
	CapturePending bool
}

var Debug = donburi.NewComponentType[DebugData]()
