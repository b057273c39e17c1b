package system

import (
	"github.com/milk9111/platformer3d/common"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward the player. The first update snaps so the
// level does not open with a long pan from the origin.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		e, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = e
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	target := t.Position.Add(cam.Offset)
	if !cam.Snapped || cam.Smoothness <= 0 || cam.Smoothness >= 1 {
		cam.Position = target
		cam.Snapped = true
		return
	}
	for i := 0; i < 3; i++ {
		cam.Position[i] = common.Lerp(cam.Position[i], target[i], cam.Smoothness)
	}
}
