package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

func TestContactOutcomes(t *testing.T) {
	enemyPos := mgl64.Vec3{0, 1, 0}
	cases := []struct {
		name       string
		playerPos  mgl64.Vec3
		vy         float64
		priorCombo int
		wantScore  int
		wantLives  int
		wantCombo  int
		wantDying  bool
	}{
		{"stomp", mgl64.Vec3{0, 1.5, 0.9}, -2, 0, 200, 3, 1, true},
		{"stomp_in_combo", mgl64.Vec3{0.5, 1.8, 0}, -6, 1, 200 + 400, 3, 2, true},
		{"damage_side_hit", mgl64.Vec3{0, 1.1, 0.5}, -2, 1, 200, 2, 0, false},
		{"damage_at_same_height_standing", mgl64.Vec3{0.3, 1, 0}, 0, 0, 0, 2, 0, false},
		{"damage_from_below", mgl64.Vec3{0, 0.2, 0}, 4, 0, 0, 2, 0, false},
		{"above_but_rising", mgl64.Vec3{0, 1.5, 0}, 3, 0, 0, 3, 0, false},
		{"above_but_still", mgl64.Vec3{0, 1.5, 0}, 0, 0, 0, 3, 0, false},
		{"planar_edge_is_out_of_reach", mgl64.Vec3{1, 1, 0}, -2, 0, 0, 3, 0, false},
		{"height_does_not_limit_reach", mgl64.Vec3{0, 40, 0}, -2, 0, 200, 3, 1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ledger := newTestWorld(t, 3, NewContactSystem())
			for i := 0; i < c.priorCombo; i++ {
				ledger.RegisterStomp()
			}
			tp := addTestPlayer(t, w, c.playerPos)
			tp.vel.Linear = mgl64.Vec3{0, c.vy, 0}
			e, enemy := addTestEnemy(t, w, enemyPos)

			w.Update()

			if ledger.Score() != c.wantScore {
				t.Fatalf("expected score %d, got %d", c.wantScore, ledger.Score())
			}
			if ledger.Lives() != c.wantLives {
				t.Fatalf("expected lives %d, got %d", c.wantLives, ledger.Lives())
			}
			if ledger.ComboCount() != c.wantCombo {
				t.Fatalf("expected combo %d, got %d", c.wantCombo, ledger.ComboCount())
			}
			if enemy.IsDying() != c.wantDying {
				t.Fatalf("expected dying %v, got phase %s", c.wantDying, enemy.Phase)
			}
			if c.wantDying {
				if enemy.PatrolDirection != (mgl64.Vec3{}) {
					t.Fatalf("dying enemy should stop, direction %v", enemy.PatrolDirection)
				}
				if !ecs.Has(w, e, component.DeathAnimationComponent.Kind()) {
					t.Fatalf("dying enemy needs a death animation")
				}
				if kinds := eventKinds(w); len(kinds) != 1 || kinds[0] != ecs.EffectEnemyDefeat {
					t.Fatalf("expected a defeat effect, got %v", kinds)
				}
			}
		})
	}
}

func TestContactIgnoresDyingEnemies(t *testing.T) {
	w, ledger := newTestWorld(t, 3, NewContactSystem())
	addTestPlayer(t, w, mgl64.Vec3{0, 1, 0})
	_, enemy := addTestEnemy(t, w, mgl64.Vec3{0, 1, 0})
	enemy.Phase = component.EnemyDying

	w.Update()
	if ledger.Lives() != 3 || ledger.Score() != 0 {
		t.Fatalf("dying enemy must not interact, lives %d score %d", ledger.Lives(), ledger.Score())
	}
}

func TestContactDamageSaturatesAtZero(t *testing.T) {
	w, ledger := newTestWorld(t, 1, NewContactSystem())
	addTestPlayer(t, w, mgl64.Vec3{0, 1, 0})
	addTestEnemy(t, w, mgl64.Vec3{0, 1, 0})

	for i := 0; i < 3; i++ {
		w.Update()
	}
	if ledger.Lives() != 0 || !ledger.GameOver() {
		t.Fatalf("expected game over at zero lives, got %d", ledger.Lives())
	}
}

func TestStompedEnemyRemovedAfterDeathDuration(t *testing.T) {
	w, ledger := newTestWorld(t, 3, NewEnemyPatrolSystem(), NewContactSystem(), NewDeathAnimationSystem())
	tp := addTestPlayer(t, w, mgl64.Vec3{0, 1.5, 0})
	tp.vel.Linear = mgl64.Vec3{0, -2, 0}
	e, enemy := addTestEnemy(t, w, mgl64.Vec3{0, 1, 0})

	eye := ecs.CreateEntity(w)
	mustAdd(t, w, eye, component.EyeTagComponent.Kind(), &component.EyeTag{})
	mustAdd(t, w, eye, component.TransformComponent.Kind(), component.NewTransform(mgl64.Vec3{}))
	mustAdd(t, w, eye, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(e), Offset: mgl64.Vec3{0.15, 0.3, 0.25}})
	mustAdd(t, w, e, component.ChildrenComponent.Kind(), &component.Children{Entities: []uint64{uint64(eye)}})

	w.Update()
	if ledger.Score() != 200 || !enemy.IsDying() {
		t.Fatalf("expected stomp, score %d phase %s", ledger.Score(), enemy.Phase)
	}

	// 0.5s at 60 ticks per second
	for i := 0; i < 29; i++ {
		w.Update()
	}
	if !ecs.IsAlive(w, e) || !ecs.IsAlive(w, eye) {
		t.Fatalf("enemy removed before its death animation finished")
	}
	et, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if et.Scale.Y() >= 1 || et.Position.Y() >= 1 {
		t.Fatalf("expected squashed and sinking enemy, got %+v", et)
	}
	if ledger.Score() != 200 {
		t.Fatalf("a dying enemy scored twice, score %d", ledger.Score())
	}

	w.Update()
	if ecs.IsAlive(w, e) {
		t.Fatalf("enemy should be removed exactly 0.5s after the stomp")
	}
	if ecs.IsAlive(w, eye) {
		t.Fatalf("enemy parts should go with it")
	}
	if enemy.Phase != component.EnemyRemoved {
		t.Fatalf("expected removed phase, got %s", enemy.Phase)
	}
}

func TestEnemyPatrol(t *testing.T) {
	w, _ := newTestWorld(t, 3, NewEnemyPatrolSystem())
	e, enemy := addTestEnemy(t, w, mgl64.Vec3{0, 1, 0})
	et, _ := ecs.Get(w, e, component.TransformComponent.Kind())

	w.Update()
	if !approxVec(et.Position, mgl64.Vec3{2 * testDT, 1, 0}) {
		t.Fatalf("expected a step toward the end, got %v", et.Position)
	}

	et.Position = mgl64.Vec3{3.6, 1, 0}
	w.Update()
	if enemy.PatrolDirection != (mgl64.Vec3{-1, 0, 0}) {
		t.Fatalf("expected turn at the end, got %v", enemy.PatrolDirection)
	}
	if !approx(et.Position.X(), 3.6-2*testDT) {
		t.Fatalf("expected to walk back, got %v", et.Position)
	}

	// facing follows the walk direction
	forward := et.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	if !approxVec(forward, mgl64.Vec3{-1, 0, 0}) {
		t.Fatalf("expected to face -x, got %v", forward)
	}

	et.Position = mgl64.Vec3{0.3, 1, 0}
	w.Update()
	if enemy.PatrolDirection != (mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("expected turn at the start, got %v", enemy.PatrolDirection)
	}
}
