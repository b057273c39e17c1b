package system

import (
	"log"

	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

const (
	// DeathY is the height below which the player has fallen out of the level.
	DeathY = -10.0
	// respawnHoldY keeps the player out of sight while the respawn timer runs.
	respawnHoldY = DeathY - 5
	respawnDelay = 2.0
)

// RespawnSystem watches the player's height against the death zone, takes a
// life when it is crossed and puts the player back at its spawn point once
// the respawn timer runs out.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if timer, ok := ecs.Get(w, player, component.RespawnTimerComponent.Kind()); ok {
		timer.Remaining -= w.DeltaTime()
		if timer.Remaining > timerEpsilon {
			t.Position[1] = respawnHoldY
			return
		}
		if spawn, ok := ecs.Get(w, player, component.SpawnPointComponent.Kind()); ok {
			t.Position = spawn.Position
		}
		// velocity is left as it was; momentum carries through a respawn
		_ = ecs.Remove(w, player, component.RespawnTimerComponent.Kind())
		log.Printf("respawn: player back at %v", t.Position)
		return
	}

	if t.Position.Y() >= DeathY {
		return
	}
	ledger, ok := firstLedger(w)
	if !ok || !ledger.LoseLife() {
		return
	}
	_ = ecs.Add(w, player, component.RespawnTimerComponent.Kind(), &component.RespawnTimer{Remaining: respawnDelay})
	t.Position[1] = respawnHoldY
	log.Printf("respawn: fell out of the level, %d lives left", ledger.Lives())
}
