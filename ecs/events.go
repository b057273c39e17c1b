package ecs

import "github.com/go-gl/mathgl/mgl64"

// EffectKind names a presentation-only effect. Nothing in the simulation
// reads effects back.
type EffectKind string

const (
	EffectJump           EffectKind = "jump"
	EffectDoubleJump     EffectKind = "double_jump"
	EffectWallJump       EffectKind = "wall_jump"
	EffectCoinCollect    EffectKind = "coin_collect"
	EffectPowerUpCollect EffectKind = "powerup_collect"
	EffectEnemyDefeat    EffectKind = "enemy_defeat"
)

// Event is an effect raised during a tick, anchored at a world position.
type Event struct {
	Kind     EffectKind
	Source   Entity
	Position mgl64.Vec3
}

// EventQueue is a simple FIFO queue holding the current tick's effects.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the queued events without consuming them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) reset() {
	q.items = nil
}
