package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

const (
	// below this a horizontal velocity component gives no wall probe direction
	wallProbeMinSpeed = 0.01
	frictionRefRate   = 60.0
)

var worldUp = mgl64.Vec3{0, 1, 0}

// jumpKind is the single jump branch chosen for one jump press.
type jumpKind int

const (
	jumpNone jumpKind = iota
	jumpGround
	jumpDouble
	jumpWall
)

func (k jumpKind) String() string {
	switch k {
	case jumpGround:
		return "ground"
	case jumpDouble:
		return "double"
	case jumpWall:
		return "wall"
	default:
		return "none"
	}
}

// resolveJump picks the jump for a press in strict priority order: ground,
// then double jump, then wall jump. Exactly one branch or none.
func resolveJump(p *component.Player) jumpKind {
	switch {
	case p.IsGrounded:
		return jumpGround
	case p.HasDoubleJump:
		return jumpDouble
	case p.HasWallNormal && p.WallJumpCooldown <= 0:
		return jumpWall
	default:
		return jumpNone
	}
}

// PlayerControllerSystem turns the input snapshot and world probes into the
// player's target velocity and kinematic flags.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaTime()
	probe := w.Prober()

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(e ecs.Entity, p *component.Player, input *component.Input, vel *component.Velocity) {
			t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok {
				return
			}

			p.WallJumpCooldown = math.Max(0, p.WallJumpCooldown-dt)

			applyMovement(p, input, vel, dt)
			detectGround(probe, e, p, t.Position)
			detectWall(probe, e, p, t.Position, vel.Linear)

			if !input.JumpPressed {
				return
			}
			kind := resolveJump(p)
			if effect, ok := applyJump(kind, p, vel); ok {
				w.Events().Push(ecs.Event{Kind: effect, Source: e, Position: t.Position})
			}
		})
}

func applyMovement(p *component.Player, input *component.Input, vel *component.Velocity, dt float64) {
	p.IsSprinting = input.Sprint

	var dir mgl64.Vec2
	if input.Forward {
		dir[1]--
	}
	if input.Back {
		dir[1]++
	}
	if input.Left {
		dir[0]--
	}
	if input.Right {
		dir[0]++
	}

	if dir.Len() > 0 {
		dir = dir.Normalize()
		speed := p.BaseSpeed
		if p.IsSprinting {
			speed = p.SprintSpeed
		}
		vel.Linear[0] = dir.X() * speed
		vel.Linear[2] = dir.Y() * speed
		return
	}

	factor := p.Friction
	if p.TimeScaledFriction {
		factor = math.Pow(p.Friction, dt*frictionRefRate)
	}
	vel.Linear[0] *= factor
	vel.Linear[2] *= factor
}

func detectGround(probe ecs.Prober, e ecs.Entity, p *component.Player, pos mgl64.Vec3) {
	_, hit := probe.CastRay(pos, worldUp.Mul(-1), p.GroundProbeDistance, e)
	p.IsGrounded = hit
	if hit {
		p.HasDoubleJump = true
	}
}

func detectWall(probe ecs.Prober, e ecs.Entity, p *component.Player, pos, vel mgl64.Vec3) {
	if p.IsGrounded || p.WallJumpCooldown > 0 {
		p.ClearWall()
		return
	}

	dir := mgl64.Vec3{axisSign(vel.X()), 0, axisSign(vel.Z())}
	if dir.Len() == 0 {
		p.ClearWall()
		return
	}

	hit, ok := probe.CastRay(pos, dir.Normalize(), p.WallProbeDistance, e)
	if !ok {
		p.ClearWall()
		return
	}
	p.SetWall(hit.Normal)
}

// applyJump performs the chosen branch and reports the effect to show.
func applyJump(kind jumpKind, p *component.Player, vel *component.Velocity) (ecs.EffectKind, bool) {
	switch kind {
	case jumpGround:
		vel.Linear[1] = p.JumpForce
		return ecs.EffectJump, true
	case jumpDouble:
		vel.Linear[1] = p.JumpForce * p.DoubleJumpFactor
		p.HasDoubleJump = false
		return ecs.EffectDoubleJump, true
	case jumpWall:
		launch := worldUp.Add(p.WallNormal.Mul(p.WallPush)).Normalize()
		vel.Linear = launch.Mul(p.WallJumpForce)
		p.WallJumpCooldown = p.WallJumpCooldownTime
		p.ClearWall()
		return ecs.EffectWallJump, true
	default:
		return "", false
	}
}

func axisSign(v float64) float64 {
	switch {
	case v > wallProbeMinSpeed:
		return 1
	case v < -wallProbeMinSpeed:
		return -1
	default:
		return 0
	}
}
