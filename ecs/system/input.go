package system

import (
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

// InputSource produces one input snapshot per tick. The host implements it
// over its keyboard; tests script it.
type InputSource interface {
	Sample() component.Input
}

// InputSystem copies the sampled snapshot onto every entity with Input.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	snapshot := i.source.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = snapshot
	})
}
