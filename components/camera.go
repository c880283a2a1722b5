package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraRigData is the group the camera hangs from; it lags behind the pointer.
type CameraRigData struct {
	Position math.Vec2
}

var CameraRig = donburi.NewComponentType[CameraRigData]()

// CameraData is the perspective camera inside the rig
type CameraData struct {
	Y      float64 // driven directly by scroll
	Z      float64
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
	Aspect float64 // width / height, updated on resize
}

var Camera = donburi.NewComponentType[CameraData]()
