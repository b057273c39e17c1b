package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

func addCoin(t *testing.T, w *ecs.World, at mgl64.Vec3, value int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), component.NewTransform(at))
	mustAdd(t, w, e, component.CoinComponent.Kind(), &component.Coin{Value: value, ScorePerValue: 100, Radius: 1})
	return e
}

func TestPickupCollect(t *testing.T) {
	w, ledger := newTestWorld(t, 3, NewPickupCollectSystem())
	addTestPlayer(t, w, mgl64.Vec3{0, 1, 0})

	near := addCoin(t, w, mgl64.Vec3{0, 1.5, 0.5}, 1)
	big := addCoin(t, w, mgl64.Vec3{-0.5, 1, 0}, 5)
	edge := addCoin(t, w, mgl64.Vec3{1, 1, 0}, 1)
	star := ecs.CreateEntity(w)
	mustAdd(t, w, star, component.TransformComponent.Kind(), component.NewTransform(mgl64.Vec3{0, 2, 0}))
	mustAdd(t, w, star, component.PowerUpComponent.Kind(), &component.PowerUp{Kind: component.PowerUpStar, Score: 2000, Radius: 1.2})

	w.Update()
	if ledger.Coins() != 6 {
		t.Fatalf("expected 6 coins, got %d", ledger.Coins())
	}
	if ledger.Score() != 600+2000 {
		t.Fatalf("expected score 2600, got %d", ledger.Score())
	}
	for _, e := range []ecs.Entity{near, big, star} {
		if ecs.IsAlive(w, e) {
			t.Fatalf("collected pickup %v still alive", e)
		}
	}
	if !ecs.IsAlive(w, edge) {
		t.Fatalf("coin exactly at the radius should stay")
	}

	counts := map[ecs.EffectKind]int{}
	for _, k := range eventKinds(w) {
		counts[k]++
	}
	if counts[ecs.EffectCoinCollect] != 2 || counts[ecs.EffectPowerUpCollect] != 1 {
		t.Fatalf("unexpected effects %v", counts)
	}

	w.Update()
	if ledger.Coins() != 6 {
		t.Fatalf("pickups must only count once, got %d coins", ledger.Coins())
	}
}

func TestPickupHover(t *testing.T) {
	w, _ := newTestWorld(t, 3, NewPickupHoverSystem())
	e := addCoin(t, w, mgl64.Vec3{0, 2, 0}, 1)
	hover := &component.Hover{Spin: 2.5}
	mustAdd(t, w, e, component.HoverComponent.Kind(), hover)
	ct, _ := ecs.Get(w, e, component.TransformComponent.Kind())

	for i := 0; i < 90; i++ {
		w.Update()
		if y := ct.Position.Y(); y < 2-hover.Amplitude-1e-9 || y > 2+hover.Amplitude+1e-9 {
			t.Fatalf("tick %d: bob left its band, y %v", i, y)
		}
	}
	if hover.BaseY != 2 {
		t.Fatalf("expected base height 2, got %v", hover.BaseY)
	}
	if ct.Rotation.ApproxEqual(mgl64.QuatIdent()) {
		t.Fatalf("expected the coin to spin")
	}
}
