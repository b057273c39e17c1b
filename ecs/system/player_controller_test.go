package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

func TestResolveJumpPriority(t *testing.T) {
	cases := []struct {
		name     string
		grounded bool
		double   bool
		wall     bool
		cooldown float64
		want     jumpKind
	}{
		{"ground_beats_everything", true, true, true, 0, jumpGround},
		{"double_beats_wall", false, true, true, 0, jumpDouble},
		{"wall_when_double_spent", false, false, true, 0, jumpWall},
		{"wall_refused_on_cooldown", false, false, true, 0.1, jumpNone},
		{"nothing_available", false, false, false, 0, jumpNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := testPlayerTuning()
			p.IsGrounded = c.grounded
			p.HasDoubleJump = c.double
			p.WallJumpCooldown = c.cooldown
			if c.wall {
				p.SetWall(mgl64.Vec3{1, 0, 0})
			}
			if got := resolveJump(p); got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestPlayerMovement(t *testing.T) {
	diag := 8 / math.Sqrt2
	cases := []struct {
		name        string
		input       component.Input
		start       mgl64.Vec3
		timeScaled  bool
		dt          float64
		wantX       float64
		wantZ       float64
		wantSprints bool
	}{
		{"forward_is_negative_z", component.Input{Forward: true}, mgl64.Vec3{}, false, testDT, 0, -8, false},
		{"right_is_positive_x", component.Input{Right: true}, mgl64.Vec3{}, false, testDT, 8, 0, false},
		{"diagonal_normalized", component.Input{Forward: true, Right: true}, mgl64.Vec3{}, false, testDT, diag, -diag, false},
		{"opposites_cancel_to_friction", component.Input{Left: true, Right: true}, mgl64.Vec3{5, 0, 5}, false, testDT, 4, 4, false},
		{"sprint", component.Input{Back: true, Sprint: true}, mgl64.Vec3{}, false, testDT, 0, 12, true},
		{"friction_per_tick", component.Input{}, mgl64.Vec3{10, 3, -10}, false, 1.0 / 30.0, 8, -8, false},
		{"friction_time_scaled_at_60", component.Input{}, mgl64.Vec3{10, 0, 0}, true, testDT, 8, 0, false},
		{"friction_time_scaled_at_30", component.Input{}, mgl64.Vec3{10, 0, 0}, true, 1.0 / 30.0, 6.4, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _ := newTestWorld(t, 3, NewPlayerControllerSystem())
			w.SetDeltaTime(c.dt)
			w.SetProber(&scriptedProbe{})
			tp := addTestPlayer(t, w, mgl64.Vec3{0, 5, 0})
			tp.player.TimeScaledFriction = c.timeScaled
			tp.vel.Linear = c.start
			*tp.input = c.input

			w.Update()

			if !approx(tp.vel.Linear.X(), c.wantX) || !approx(tp.vel.Linear.Z(), c.wantZ) {
				t.Fatalf("expected horizontal (%v, %v), got %v", c.wantX, c.wantZ, tp.vel.Linear)
			}
			if tp.vel.Linear.Y() != c.start.Y() {
				t.Fatalf("movement must not touch vertical velocity, got %v", tp.vel.Linear.Y())
			}
			if tp.player.IsSprinting != c.wantSprints {
				t.Fatalf("expected sprinting %v", c.wantSprints)
			}
		})
	}
}

func TestGroundProbeRestoresDoubleJump(t *testing.T) {
	probe := &scriptedProbe{floor: &ecs.RayHit{Distance: 1.0, Normal: worldUp}}
	w, _ := newTestWorld(t, 3, NewPlayerControllerSystem())
	w.SetProber(probe)
	tp := addTestPlayer(t, w, mgl64.Vec3{0, 1.1, 0})
	tp.player.HasDoubleJump = false

	w.Update()
	if !tp.player.IsGrounded || !tp.player.HasDoubleJump {
		t.Fatalf("expected grounded with double jump restored, got %+v", tp.player)
	}

	probe.floor.Distance = 1.2
	w.Update()
	if tp.player.IsGrounded {
		t.Fatalf("floor beyond the probe distance should not ground the player")
	}
}

func TestPlayerJumps(t *testing.T) {
	t.Run("ground", func(t *testing.T) {
		w, _ := newTestWorld(t, 3, NewPlayerControllerSystem())
		w.SetProber(&scriptedProbe{floor: &ecs.RayHit{Distance: 1.0, Normal: worldUp}})
		tp := addTestPlayer(t, w, mgl64.Vec3{0, 1.1, 0})
		tp.input.JumpPressed = true

		w.Update()
		if tp.vel.Linear.Y() != 12 {
			t.Fatalf("expected vy 12, got %v", tp.vel.Linear.Y())
		}
		if !tp.player.HasDoubleJump {
			t.Fatalf("ground jump must not spend the double jump")
		}
		if kinds := eventKinds(w); len(kinds) != 1 || kinds[0] != ecs.EffectJump {
			t.Fatalf("expected one jump effect, got %v", kinds)
		}
	})

	t.Run("double", func(t *testing.T) {
		w, _ := newTestWorld(t, 3, NewPlayerControllerSystem())
		w.SetProber(&scriptedProbe{})
		tp := addTestPlayer(t, w, mgl64.Vec3{0, 5, 0})
		tp.vel.Linear = mgl64.Vec3{0, -3, 0}
		tp.input.JumpPressed = true

		w.Update()
		if !approx(tp.vel.Linear.Y(), 10.8) {
			t.Fatalf("expected vy 10.8, got %v", tp.vel.Linear.Y())
		}
		if tp.player.HasDoubleJump {
			t.Fatalf("double jump should be spent")
		}

		w.Update()
		if !approx(tp.vel.Linear.Y(), 10.8) {
			t.Fatalf("second airborne press without wall must do nothing, got vy %v", tp.vel.Linear.Y())
		}
		if len(w.Events().Items()) != 0 {
			t.Fatalf("no effect expected, got %v", eventKinds(w))
		}
	})

	t.Run("wall_then_cooldown", func(t *testing.T) {
		probe := &scriptedProbe{wall: &ecs.RayHit{Distance: 0.4, Normal: mgl64.Vec3{1, 0, 0}}}
		w, _ := newTestWorld(t, 3, NewPlayerControllerSystem())
		w.SetProber(probe)
		tp := addTestPlayer(t, w, mgl64.Vec3{0, 5, 0})
		tp.player.HasDoubleJump = false
		tp.vel.Linear = mgl64.Vec3{-5, -1, 0}
		tp.input.JumpPressed = true

		w.Update()
		launch := mgl64.Vec3{1.5, 1, 0}.Normalize().Mul(10)
		if !approxVec(tp.vel.Linear, launch) {
			t.Fatalf("expected wall launch %v, got %v", launch, tp.vel.Linear)
		}
		if tp.player.WallJumpCooldown != 0.3 {
			t.Fatalf("expected cooldown 0.3, got %v", tp.player.WallJumpCooldown)
		}
		if tp.player.HasWallNormal {
			t.Fatalf("wall contact should clear after a wall jump")
		}
		if kinds := eventKinds(w); len(kinds) != 1 || kinds[0] != ecs.EffectWallJump {
			t.Fatalf("expected one wall jump effect, got %v", kinds)
		}

		// pressed against the wall again while the cooldown runs
		tp.vel.Linear = mgl64.Vec3{-5, 2, 0}
		w.Update()
		if tp.vel.Linear.Y() != 2 {
			t.Fatalf("wall jump during cooldown must be refused, got vy %v", tp.vel.Linear.Y())
		}
		if tp.player.HasWallNormal {
			t.Fatalf("no wall contact is recorded while cooling down")
		}
		if !approx(tp.player.WallJumpCooldown, 0.3-testDT) {
			t.Fatalf("cooldown should tick down, got %v", tp.player.WallJumpCooldown)
		}
	})
}

func TestWallDetection(t *testing.T) {
	cases := []struct {
		name     string
		vel      mgl64.Vec3
		grounded bool
		wantWall bool
	}{
		{"moving_into_wall", mgl64.Vec3{-3, 0, 0}, false, true},
		{"barely_moving", mgl64.Vec3{-0.005, 0, 0.005}, false, false},
		{"grounded_never_walls", mgl64.Vec3{-3, 0, 0}, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			probe := &scriptedProbe{wall: &ecs.RayHit{Distance: 0.5, Normal: mgl64.Vec3{1, 0, 0}}}
			if c.grounded {
				probe.floor = &ecs.RayHit{Distance: 1, Normal: worldUp}
			}
			w, _ := newTestWorld(t, 3, NewPlayerControllerSystem())
			w.SetProber(probe)
			tp := addTestPlayer(t, w, mgl64.Vec3{0, 5, 0})
			tp.player.Friction = 1
			tp.vel.Linear = c.vel

			w.Update()
			if tp.player.HasWallNormal != c.wantWall {
				t.Fatalf("expected wall %v, got %v", c.wantWall, tp.player.HasWallNormal)
			}
			if c.wantWall && tp.player.WallNormal != (mgl64.Vec3{1, 0, 0}) {
				t.Fatalf("unexpected wall normal %v", tp.player.WallNormal)
			}
		})
	}
}
