package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

type PickupHoverSystem struct{}

func NewPickupHoverSystem() *PickupHoverSystem { return &PickupHoverSystem{} }

func (s *PickupHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.HoverComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, hover *component.Hover, t *component.Transform) {
		if !hover.Initialized {
			hover.BaseY = t.Position.Y()
			hover.Initialized = true
			if hover.Amplitude == 0 {
				hover.Amplitude = 0.15
			}
			if hover.Speed == 0 {
				hover.Speed = 3
			}
		}

		hover.Phase += hover.Speed * dt
		t.Position[1] = hover.BaseY + math.Sin(hover.Phase)*hover.Amplitude
		if hover.Spin != 0 {
			t.Rotation = mgl64.QuatRotate(hover.Spin*dt, worldUp).Mul(t.Rotation).Normalize()
		}
	})
}
