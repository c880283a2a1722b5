package factory

import (
	"github.com/automoto/scrollscene/archetypes"
	"github.com/automoto/scrollscene/components"
	cfg "github.com/automoto/scrollscene/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera rig with the perspective camera inside it.
func CreateCamera(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.CameraRig.SetValue(camera, components.CameraRigData{})

	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	components.Camera.SetValue(camera, components.CameraData{
		Z:      cfg.Camera.Distance,
		FOV:    cfg.Camera.FOV,
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
		Aspect: aspect,
	})
	return camera
}
