package ecs

import "github.com/milk9111/platformer3d/ecs/component"

// ForEach calls fn for every live entity with component a. The id list is
// copied first, so fn may add or remove components freely.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	for _, id := range sa.snapshot() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, ok := sa.Get(id).(*A)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range smaller(sa, sb).snapshot() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	sc := w.store(kc.ID(), false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range smaller(smaller(sa, sb), sc).snapshot() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		c, okC := sc.Get(id).(*C)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

// Count reports how many live entities carry component a.
func Count[A any](w *World, ka component.ComponentKind[A]) int {
	n := 0
	ForEach(w, ka, func(Entity, *A) { n++ })
	return n
}

func smaller(a, b *SparseSet) *SparseSet {
	if a.Len() <= b.Len() {
		return a
	}
	return b
}
