package system

import (
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

// PickupCollectSystem credits coins and power-ups the player touches and
// removes them from the level.
type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	ledger, ok := firstLedger(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, coin *component.Coin, t *component.Transform) {
		if pt.Position.Sub(t.Position).Len() >= coin.Radius {
			return
		}
		ledger.CollectCoins(coin.Value, coin.ScorePerValue)
		w.Events().Push(ecs.Event{Kind: ecs.EffectCoinCollect, Source: e, Position: t.Position})
		// the coin may be reached again before the flush; drop it from the store now
		_ = ecs.Remove(w, e, component.CoinComponent.Kind())
		ecs.QueueDestroy(w, e)
	})

	ecs.ForEach2(w, component.PowerUpComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.PowerUp, t *component.Transform) {
		if pt.Position.Sub(t.Position).Len() >= p.Radius {
			return
		}
		ledger.AddScore(p.Score)
		w.Events().Push(ecs.Event{Kind: ecs.EffectPowerUpCollect, Source: e, Position: t.Position})
		_ = ecs.Remove(w, e, component.PowerUpComponent.Kind())
		ecs.QueueDestroy(w, e)
	})
}
