package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
	"github.com/milk9111/platformer3d/levels"
	"github.com/milk9111/platformer3d/prefabs"
)

// NewEnemy spawns a patrolling enemy at the start of its route, with one
// child entity per eye in the prefab.
func NewEnemy(w *ecs.World, spec *prefabs.EnemySpec, spawn levels.EnemySpawn) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("enemy: %w", component.ErrNilComponent)
	}

	speed := spawn.Speed
	if speed == 0 {
		speed = spec.Speed
	}
	damage := spawn.Damage
	if damage == 0 {
		damage = spec.Damage
	}

	route := component.PatrolRoute{Start: spawn.Start, End: spawn.End}
	e := ecs.CreateEntity(w)
	t := component.NewTransform(spawn.Start)

	children := &component.Children{}
	for _, off := range spec.EyeOffsets {
		eye := ecs.CreateEntity(w)
		if err := ecs.Add(w, eye, component.EyeTagComponent.Kind(), &component.EyeTag{}); err != nil {
			return 0, fmt.Errorf("enemy eye: %w", err)
		}
		if err := ecs.Add(w, eye, component.TransformComponent.Kind(), component.NewTransform(spawn.Start.Add(mgl64.Vec3(off)))); err != nil {
			return 0, fmt.Errorf("enemy eye: %w", err)
		}
		if err := ecs.Add(w, eye, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(e), Offset: mgl64.Vec3(off)}); err != nil {
			return 0, fmt.Errorf("enemy eye: %w", err)
		}
		children.Entities = append(children.Entities, uint64(eye))
	}

	adds := []error{
		ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}),
		ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
			Speed:           speed,
			Damage:          damage,
			PatrolDirection: route.Direction(),
			Phase:           component.EnemyPatrolling,
			DeathDuration:   spec.DeathDuration,
		}),
		ecs.Add(w, e, component.PatrolRouteComponent.Kind(), &route),
		ecs.Add(w, e, component.TransformComponent.Kind(), t),
		ecs.Add(w, e, component.ChildrenComponent.Kind(), children),
	}
	for _, err := range adds {
		if err != nil {
			return 0, fmt.Errorf("enemy: %w", err)
		}
	}
	return e, nil
}
