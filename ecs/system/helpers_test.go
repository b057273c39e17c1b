package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

const testDT = 1.0 / 60.0

// scriptedProbe answers downward casts with floor and horizontal casts with
// wall, each only within the caller's range.
type scriptedProbe struct {
	floor *ecs.RayHit
	wall  *ecs.RayHit
	casts int
}

func (p *scriptedProbe) CastRay(_, dir mgl64.Vec3, maxDistance float64, _ ecs.Entity) (ecs.RayHit, bool) {
	p.casts++
	var hit *ecs.RayHit
	switch {
	case dir.Y() < -0.5:
		hit = p.floor
	case math.Abs(dir.Y()) < 0.5:
		hit = p.wall
	}
	if hit == nil || hit.Distance > maxDistance {
		return ecs.RayHit{}, false
	}
	return *hit, true
}

type scriptedInput struct {
	frames []component.Input
	next   int
}

func (s *scriptedInput) Sample() component.Input {
	if s.next >= len(s.frames) {
		return component.Input{}
	}
	in := s.frames[s.next]
	s.next++
	return in
}

func newTestWorld(t *testing.T, lives int, systems ...ecs.System) (*ecs.World, *component.Ledger) {
	t.Helper()
	w := ecs.NewWorld()
	w.SetDeltaTime(testDT)
	for _, s := range systems {
		w.AddSystem(s)
	}
	ledger := component.NewLedger(lives)
	mustAdd(t, w, ecs.CreateEntity(w), component.LedgerComponent.Kind(), ledger)
	return w, ledger
}

func testPlayerTuning() *component.Player {
	return &component.Player{
		BaseSpeed:            8,
		SprintSpeed:          12,
		JumpForce:            12,
		WallJumpForce:        10,
		Friction:             0.8,
		DoubleJumpFactor:     0.9,
		WallPush:             1.5,
		WallJumpCooldownTime: 0.3,
		GroundProbeDistance:  1.1,
		WallProbeDistance:    0.6,
		HasDoubleJump:        true,
	}
}

type testPlayer struct {
	e      ecs.Entity
	player *component.Player
	input  *component.Input
	vel    *component.Velocity
	t      *component.Transform
}

func addTestPlayer(t *testing.T, w *ecs.World, pos mgl64.Vec3) testPlayer {
	t.Helper()
	tp := testPlayer{
		e:      ecs.CreateEntity(w),
		player: testPlayerTuning(),
		input:  &component.Input{},
		vel:    &component.Velocity{},
		t:      component.NewTransform(pos),
	}
	mustAdd(t, w, tp.e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, tp.e, component.PlayerComponent.Kind(), tp.player)
	mustAdd(t, w, tp.e, component.InputComponent.Kind(), tp.input)
	mustAdd(t, w, tp.e, component.VelocityComponent.Kind(), tp.vel)
	mustAdd(t, w, tp.e, component.TransformComponent.Kind(), tp.t)
	mustAdd(t, w, tp.e, component.SpawnPointComponent.Kind(), &component.SpawnPoint{Position: pos})
	return tp
}

func addTestEnemy(t *testing.T, w *ecs.World, pos mgl64.Vec3) (ecs.Entity, *component.Enemy) {
	t.Helper()
	e := ecs.CreateEntity(w)
	route := &component.PatrolRoute{Start: pos, End: pos.Add(mgl64.Vec3{4, 0, 0})}
	enemy := &component.Enemy{
		Speed:           2,
		Damage:          1,
		PatrolDirection: route.Direction(),
		DeathDuration:   0.5,
	}
	mustAdd(t, w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	mustAdd(t, w, e, component.EnemyComponent.Kind(), enemy)
	mustAdd(t, w, e, component.PatrolRouteComponent.Kind(), route)
	mustAdd(t, w, e, component.TransformComponent.Kind(), component.NewTransform(pos))
	return e, enemy
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add %s: %v", kind, err)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func approxVec(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-6)
}

func eventKinds(w *ecs.World) []ecs.EffectKind {
	var kinds []ecs.EffectKind
	for _, evt := range w.Events().Items() {
		kinds = append(kinds, evt.Kind)
	}
	return kinds
}
