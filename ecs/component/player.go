package component

import "github.com/go-gl/mathgl/mgl64"

// Player holds the controller tuning and the kinematic flags the controller
// recomputes every tick.
type Player struct {
	BaseSpeed     float64
	SprintSpeed   float64
	JumpForce     float64
	WallJumpForce float64

	// Friction multiplies horizontal velocity each tick with no movement
	// input. With TimeScaledFriction it is treated as the factor per 1/60 s.
	Friction           float64
	TimeScaledFriction bool

	DoubleJumpFactor     float64
	WallPush             float64
	WallJumpCooldownTime float64
	GroundProbeDistance  float64
	WallProbeDistance    float64

	IsGrounded       bool
	IsSprinting      bool
	HasDoubleJump    bool
	HasWallNormal    bool
	WallNormal       mgl64.Vec3
	WallJumpCooldown float64
}

// ClearWall forgets any wall contact.
func (p *Player) ClearWall() {
	p.HasWallNormal = false
	p.WallNormal = mgl64.Vec3{}
}

// SetWall records the normal of the wall the player is pressed against.
func (p *Player) SetWall(normal mgl64.Vec3) {
	p.HasWallNormal = true
	p.WallNormal = normal
}

var PlayerComponent = NewComponent[Player]()
