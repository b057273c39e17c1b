package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
	"github.com/milk9111/platformer3d/levels"
	"github.com/milk9111/platformer3d/prefabs"
)

// LoadLevelToWorld builds the ledger, the static geometry and every spawn
// in lvl. The world gets a fresh probe space holding the level's platforms.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, specs *prefabs.Specs) (ecs.Entity, error) {
	if w == nil || lvl == nil || specs == nil {
		return 0, fmt.Errorf("load level: missing world, level or specs")
	}

	ledger := ecs.CreateEntity(w)
	if err := ecs.Add(w, ledger, component.LedgerComponent.Kind(), component.NewLedger(lvl.Lives)); err != nil {
		return 0, fmt.Errorf("load level: ledger: %w", err)
	}

	pw := ecs.NewPhysicsWorld()
	for _, p := range lvl.Platforms {
		if _, err := NewPlatform(w, pw, p); err != nil {
			return 0, fmt.Errorf("load level %s: %w", lvl.Name, err)
		}
	}
	w.SetProber(pw)

	player, err := NewPlayerAt(w, specs.Player, lvl.Spawn)
	if err != nil {
		return 0, fmt.Errorf("load level %s: %w", lvl.Name, err)
	}

	for _, spawn := range lvl.Enemies {
		if _, err := NewEnemy(w, specs.Enemy, spawn); err != nil {
			return 0, fmt.Errorf("load level %s: %w", lvl.Name, err)
		}
	}
	for _, c := range lvl.Coins {
		if _, err := NewCoin(w, specs.Pickups, c.Position, c.Value); err != nil {
			return 0, fmt.Errorf("load level %s: %w", lvl.Name, err)
		}
	}
	if err := NewCoinField(w, specs.Pickups, lvl.CoinField); err != nil {
		return 0, fmt.Errorf("load level %s: %w", lvl.Name, err)
	}
	for _, p := range lvl.PowerUps {
		if _, err := NewPowerUp(w, specs.Pickups, p); err != nil {
			return 0, fmt.Errorf("load level %s: %w", lvl.Name, err)
		}
	}

	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{
		Offset:     mgl64.Vec3{0, 2, 0},
		Smoothness: 0.1,
		Zoom:       1,
	}); err != nil {
		return 0, fmt.Errorf("load level: camera: %w", err)
	}

	return player, nil
}
