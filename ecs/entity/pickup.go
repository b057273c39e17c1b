package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
	"github.com/milk9111/platformer3d/levels"
	"github.com/milk9111/platformer3d/prefabs"
)

// coinSpin is the coin's turn rate in radians per second.
const coinSpin = 2.5

func NewCoin(w *ecs.World, spec *prefabs.PickupSpec, at mgl64.Vec3, value int) (ecs.Entity, error) {
	if value <= 0 {
		value = spec.CoinValue
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(at)); err != nil {
		return 0, fmt.Errorf("coin: %w", err)
	}
	if err := ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{
		Value:         value,
		ScorePerValue: spec.ScorePerCoin,
		Radius:        spec.CoinRadius,
	}); err != nil {
		return 0, fmt.Errorf("coin: %w", err)
	}
	if err := ecs.Add(w, e, component.HoverComponent.Kind(), &component.Hover{Spin: coinSpin}); err != nil {
		return 0, fmt.Errorf("coin: %w", err)
	}
	return e, nil
}

// NewCoinField scatters the field's coins with its own seed.
func NewCoinField(w *ecs.World, spec *prefabs.PickupSpec, field *levels.CoinField) error {
	if field == nil {
		return nil
	}
	rng := rand.New(rand.NewPCG(field.Seed, field.Seed))
	for i := 0; i < field.Count; i++ {
		var at mgl64.Vec3
		for axis := 0; axis < 3; axis++ {
			at[axis] = field.Min[axis] + rng.Float64()*(field.Max[axis]-field.Min[axis])
		}
		if _, err := NewCoin(w, spec, at, 0); err != nil {
			return err
		}
	}
	return nil
}

func NewPowerUp(w *ecs.World, spec *prefabs.PickupSpec, spawn levels.PowerUpSpawn) (ecs.Entity, error) {
	tuning, ok := spec.PowerUps[spawn.Kind]
	if !ok {
		return 0, fmt.Errorf("powerup %q: %w", spawn.Kind, prefabs.ErrInvalidSpec)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(spawn.Position)); err != nil {
		return 0, fmt.Errorf("powerup: %w", err)
	}
	if err := ecs.Add(w, e, component.PowerUpComponent.Kind(), &component.PowerUp{
		Kind:   component.PowerUpKind(spawn.Kind),
		Score:  tuning.Score,
		Radius: tuning.Radius,
	}); err != nil {
		return 0, fmt.Errorf("powerup: %w", err)
	}
	if err := ecs.Add(w, e, component.HoverComponent.Kind(), &component.Hover{Speed: 2, Amplitude: 0.25}); err != nil {
		return 0, fmt.Errorf("powerup: %w", err)
	}
	return e, nil
}
