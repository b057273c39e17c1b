package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

// patrolTurnRadius is how close to an endpoint an enemy turns around.
const patrolTurnRadius = 0.5

// EnemyPatrolSystem walks patrolling enemies back and forth along their
// routes and keeps their child parts attached.
type EnemyPatrolSystem struct{}

func NewEnemyPatrolSystem() *EnemyPatrolSystem {
	return &EnemyPatrolSystem{}
}

func (s *EnemyPatrolSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach3(w,
		component.EnemyComponent.Kind(),
		component.PatrolRouteComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, enemy *component.Enemy, route *component.PatrolRoute, t *component.Transform) {
			if enemy.IsDying() {
				return
			}

			forward := route.Direction()
			switch {
			case t.Position.Sub(route.End).Len() < patrolTurnRadius:
				enemy.PatrolDirection = forward.Mul(-1)
			case t.Position.Sub(route.Start).Len() < patrolTurnRadius:
				enemy.PatrolDirection = forward
			}

			t.Position = t.Position.Add(enemy.PatrolDirection.Mul(enemy.Speed * dt))
			if enemy.PatrolDirection.Len() > 0.01 {
				t.Rotation = facing(enemy.PatrolDirection)
			}
		})

	syncChildren(w)
}

// facing turns a model that looks down +Z toward dir, about the Y axis.
func facing(dir mgl64.Vec3) mgl64.Quat {
	return mgl64.QuatRotate(math.Atan2(dir.X(), dir.Z()), worldUp)
}

// syncChildren moves every child part to its parent's transform.
func syncChildren(w *ecs.World) {
	ecs.ForEach2(w, component.ParentComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, parent *component.Parent, t *component.Transform) {
		pt, ok := ecs.Get(w, ecs.Entity(parent.Entity), component.TransformComponent.Kind())
		if !ok {
			return
		}
		offset := mgl64.Vec3{parent.Offset.X() * pt.Scale.X(), parent.Offset.Y() * pt.Scale.Y(), parent.Offset.Z() * pt.Scale.Z()}
		t.Position = pt.Position.Add(pt.Rotation.Rotate(offset))
		t.Rotation = pt.Rotation
	})
}
