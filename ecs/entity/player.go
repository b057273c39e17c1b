package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
	"github.com/milk9111/platformer3d/prefabs"
)

// NewPlayerAt creates the player at spawn, which is also where it comes
// back after falling out of the level.
func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, spawn mgl64.Vec3) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: %w", component.ErrNilComponent)
	}

	e := ecs.CreateEntity(w)
	player := &component.Player{HasDoubleJump: true}
	ApplyPlayerSpec(player, spec)

	adds := []error{
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.PlayerComponent.Kind(), player),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(spawn)),
		ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}),
		ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
			Radius:     spec.Radius,
			HalfHeight: spec.HalfHeight,
			Gravity:    spec.Gravity,
		}),
		ecs.Add(w, e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{Position: spawn}),
	}
	for _, err := range adds {
		if err != nil {
			return 0, fmt.Errorf("player: %w", err)
		}
	}
	return e, nil
}

// ApplyPlayerSpec copies tuning onto a live player. Kinematic state such as
// the grounded flag or a running cooldown is left alone, so it is safe to
// call on reload.
func ApplyPlayerSpec(p *component.Player, spec *prefabs.PlayerSpec) {
	p.BaseSpeed = spec.BaseSpeed
	p.SprintSpeed = spec.SprintSpeed
	p.JumpForce = spec.JumpForce
	p.WallJumpForce = spec.WallJumpForce
	p.Friction = spec.Friction
	p.TimeScaledFriction = spec.FrictionMode == prefabs.FrictionTimeScaled
	p.DoubleJumpFactor = spec.DoubleJumpFactor
	p.WallPush = spec.WallPush
	p.WallJumpCooldownTime = spec.WallJumpCooldown
	p.GroundProbeDistance = spec.GroundProbeDistance
	p.WallProbeDistance = spec.WallProbeDistance
}

// ReloadPlayer reapplies a freshly loaded spec to every player in w.
func ReloadPlayer(w *ecs.World, spec *prefabs.PlayerSpec) int {
	n := 0
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		ApplyPlayerSpec(p, spec)
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			body.Radius = spec.Radius
			body.HalfHeight = spec.HalfHeight
			body.Gravity = spec.Gravity
		}
		n++
	})
	return n
}
