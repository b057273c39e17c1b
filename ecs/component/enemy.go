package component

import "github.com/go-gl/mathgl/mgl64"

// EnemyPhase is the lifecycle of a patrolling enemy. Phases only move
// forward: Patrolling, then Dying, then Removed.
type EnemyPhase int

const (
	EnemyPatrolling EnemyPhase = iota
	EnemyDying
	EnemyRemoved
)

func (p EnemyPhase) String() string {
	switch p {
	case EnemyPatrolling:
		return "patrolling"
	case EnemyDying:
		return "dying"
	case EnemyRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

type Enemy struct {
	Speed           float64
	Damage          int
	PatrolDirection mgl64.Vec3
	Phase           EnemyPhase
	// DeathDuration is how long the Dying phase lasts, in seconds.
	DeathDuration float64
}

// IsDying reports whether the enemy has left patrol for good. Dying and
// removed enemies never take part in contact tests.
func (e *Enemy) IsDying() bool {
	return e.Phase != EnemyPatrolling
}

var EnemyComponent = NewComponent[Enemy]()

// PatrolRoute is fixed at spawn.
type PatrolRoute struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
}

// Direction is the unit vector from Start to End.
func (r PatrolRoute) Direction() mgl64.Vec3 {
	d := r.End.Sub(r.Start)
	if d.Len() == 0 {
		return mgl64.Vec3{}
	}
	return d.Normalize()
}

var PatrolRouteComponent = NewComponent[PatrolRoute]()

// DeathAnimation exists only while an enemy is Dying.
type DeathAnimation struct {
	// StartTick is the world tick the enemy died on; the animation starts
	// advancing on the tick after.
	StartTick       uint64
	Elapsed         float64
	Duration        float64
	InitialPosition mgl64.Vec3
	InitialScale    mgl64.Vec3
}

// Fraction is the completed share of the animation in [0, 1].
func (d *DeathAnimation) Fraction() float64 {
	if d.Duration <= 0 {
		return 1
	}
	return mgl64.Clamp(d.Elapsed/d.Duration, 0, 1)
}

var DeathAnimationComponent = NewComponent[DeathAnimation]()
