package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

// feetProbeFraction places the lower horizontal probe just above the feet.
const feetProbeFraction = 0.85

// PhysicsSystem is a small kinematic stand-in for a full physics backend: it
// applies gravity, moves bodies by the velocity written last tick and stops
// them at the static geometry the prober knows about.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	if dt <= 0 {
		return
	}
	probe := w.Prober()

	ecs.ForEach3(w,
		component.BodyComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, body *component.Body, vel *component.Velocity, t *component.Transform) {
			vel.Linear[1] -= body.Gravity * dt
			stepHorizontal(probe, e, body, vel, t, dt)
			stepVertical(probe, e, body, vel, t, dt)
		})
}

func stepHorizontal(probe ecs.Prober, e ecs.Entity, body *component.Body, vel *component.Velocity, t *component.Transform, dt float64) {
	step := mgl64.Vec3{vel.Linear.X() * dt, 0, vel.Linear.Z() * dt}
	l := step.Len()
	if l == 0 {
		return
	}
	dir := step.Mul(1 / l)

	origins := []mgl64.Vec3{
		t.Position,
		t.Position.Sub(mgl64.Vec3{0, body.HalfHeight * feetProbeFraction, 0}),
	}
	var nearest ecs.RayHit
	blocked := false
	for _, o := range origins {
		hit, ok := probe.CastRay(o, dir, l+body.Radius, e)
		if ok && (!blocked || hit.Distance < nearest.Distance) {
			nearest = hit
			blocked = true
		}
	}
	if !blocked {
		t.Position = t.Position.Add(step)
		return
	}

	t.Position = t.Position.Add(dir.Mul(math.Max(0, nearest.Distance-body.Radius)))
	if into := vel.Linear.Dot(nearest.Normal); into < 0 {
		vel.Linear = vel.Linear.Sub(nearest.Normal.Mul(into))
	}
}

func stepVertical(probe ecs.Prober, e ecs.Entity, body *component.Body, vel *component.Velocity, t *component.Transform, dt float64) {
	dy := vel.Linear.Y() * dt
	if dy == 0 {
		return
	}
	dir := worldUp
	if dy < 0 {
		dir = worldUp.Mul(-1)
	}
	hit, ok := probe.CastRay(t.Position, dir, math.Abs(dy)+body.HalfHeight, e)
	if !ok {
		t.Position[1] += dy
		return
	}
	t.Position = t.Position.Add(dir.Mul(math.Max(0, hit.Distance-body.HalfHeight)))
	vel.Linear[1] = 0
}
