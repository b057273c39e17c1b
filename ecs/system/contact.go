package system

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

const (
	// contactRadius is the planar (x, z) distance under which the player and
	// an enemy touch.
	contactRadius = 1.0
	// stompHeight is how far above an enemy the player must be to stomp it.
	stompHeight = 0.3
)

// ContactSystem classifies each player-enemy touch as a stomp or a hit and
// applies the result to the ledger.
type ContactSystem struct{}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{}
}

func (s *ContactSystem) Update(w *ecs.World) {
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
	pv, ok := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	ledger, ok := firstLedger(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, et *component.Transform) {
		if enemy.IsDying() {
			return
		}

		planar := math.Hypot(pt.Position.X()-et.Position.X(), pt.Position.Z()-et.Position.Z())
		if planar >= contactRadius {
			return
		}

		heightDiff := pt.Position.Y() - et.Position.Y()
		switch {
		case heightDiff > stompHeight && pv.Linear.Y() < 0:
			ledger.RegisterStomp()
			startDying(w, e, enemy, et)
			w.Events().Push(ecs.Event{Kind: ecs.EffectEnemyDefeat, Source: e, Position: et.Position})
		case heightDiff <= stompHeight:
			hadLives := !ledger.GameOver()
			ledger.RegisterDamage(enemy.Damage)
			if hadLives && ledger.GameOver() {
				log.Printf("contact: player out of lives, final score %d", ledger.Score())
			}
		}
	})
}

// startDying moves an enemy out of patrol and anchors its death animation
// where it was defeated.
func startDying(w *ecs.World, e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
	enemy.Phase = component.EnemyDying
	enemy.PatrolDirection = mgl64.Vec3{}
	_ = ecs.Add(w, e, component.DeathAnimationComponent.Kind(), &component.DeathAnimation{
		StartTick:       w.Ticks(),
		Duration:        enemy.DeathDuration,
		InitialPosition: t.Position,
		InitialScale:    t.Scale,
	})
}

func firstLedger(w *ecs.World) (*component.Ledger, bool) {
	e, ok := ecs.First(w, component.LedgerComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.LedgerComponent.Kind())
}
