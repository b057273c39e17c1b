package entity

import (
	"fmt"

	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
	"github.com/milk9111/platformer3d/levels"
)

// NewPlatform creates a static box and registers it with the probe space.
func NewPlatform(w *ecs.World, pw *ecs.PhysicsWorld, spec levels.Platform) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{
		Name:   spec.Name,
		Center: spec.Center,
		Size:   spec.Size,
	}); err != nil {
		return 0, fmt.Errorf("platform %s: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(spec.Center)); err != nil {
		return 0, fmt.Errorf("platform %s: %w", spec.Name, err)
	}
	pw.AddBox(e, spec.Center, spec.Size)
	return e, nil
}
