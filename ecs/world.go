package ecs

import "github.com/milk9111/platformer3d/ecs/component"

// World owns entities, component stores, the system order and the per-tick
// clock. It is single-threaded: every system runs to completion inside
// Update before the next one starts.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue
	pending   []Entity

	dt     float64
	ticks  uint64
	prober Prober
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// SetDeltaTime sets the seconds the next Update advances the simulation by.
func (w *World) SetDeltaTime(dt float64) {
	if w == nil || dt < 0 {
		return
	}
	w.dt = dt
}

// DeltaTime is the length of the current tick in seconds.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Ticks counts completed updates.
func (w *World) Ticks() uint64 {
	if w == nil {
		return 0
	}
	return w.ticks
}

// Update runs one tick. Effects from the previous tick are dropped first so
// presentation can read this tick's effects after Update returns; entities
// queued for destruction are removed only after every system has run.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.events.reset()
	w.scheduler.Update(w)
	w.flushDestroyed()
	w.ticks++
}

// Events returns the world effect queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetProber attaches the world probe used by grounded, wall and step checks.
func (w *World) SetProber(p Prober) {
	if w == nil {
		return
	}
	w.prober = p
}

// Prober returns the attached world probe. A world without one behaves as
// if every ray misses.
func (w *World) Prober() Prober {
	if w == nil || w.prober == nil {
		return noProbe{}
	}
	return w.prober
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		if !create {
			return nil
		}
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) flushDestroyed() {
	if len(w.pending) == 0 {
		return
	}
	pending := w.pending
	w.pending = nil
	for _, e := range pending {
		DestroyEntity(w, e)
	}
}
