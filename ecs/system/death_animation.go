package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

// completion slack so a timer built from summed deltas still finishes
// on the tick it should
const timerEpsilon = 1e-9

// DeathAnimationSystem plays the squash-and-sink of dying enemies and queues
// them, with their child parts, for removal once it completes.
type DeathAnimationSystem struct{}

func NewDeathAnimationSystem() *DeathAnimationSystem {
	return &DeathAnimationSystem{}
}

func (s *DeathAnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.DeathAnimationComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, anim *component.DeathAnimation, t *component.Transform) {
		if anim.StartTick == w.Ticks() {
			return
		}
		anim.Elapsed += dt
		f := anim.Fraction()

		base := anim.InitialScale
		t.Scale = mgl64.Vec3{base.X() * (1 + 0.5*f), base.Y() * (1 - 0.9*f), base.Z() * (1 + 0.5*f)}
		t.Position = anim.InitialPosition.Sub(mgl64.Vec3{0, 0.4 * f, 0})

		if anim.Elapsed+timerEpsilon < anim.Duration {
			return
		}
		if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			enemy.Phase = component.EnemyRemoved
		}
		destroyWithChildren(w, e)
	})
	syncChildren(w)
}

func destroyWithChildren(w *ecs.World, e ecs.Entity) {
	if children, ok := ecs.Get(w, e, component.ChildrenComponent.Kind()); ok {
		for _, child := range children.Entities {
			ecs.QueueDestroy(w, ecs.Entity(child))
		}
	}
	ecs.QueueDestroy(w, e)
}
