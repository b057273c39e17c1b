package system

import "github.com/milk9111/platformer3d/ecs"

// ComboDecaySystem runs the combo window down once per tick.
type ComboDecaySystem struct{}

func NewComboDecaySystem() *ComboDecaySystem {
	return &ComboDecaySystem{}
}

func (s *ComboDecaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if ledger, ok := firstLedger(w); ok {
		ledger.Decay(w.DeltaTime())
	}
}
