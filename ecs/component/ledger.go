package component

const (
	// ComboWindow is how long a combo survives without another stomp.
	ComboWindow = 3.0
	// ComboCeiling caps the score multiplier, not the displayed count.
	ComboCeiling = 10
	// StompScore is the base score for one stomp before the multiplier.
	StompScore = 200
)

// Ledger is the session-wide score, coin, lives and combo record. Only the
// contact, pickup, combo decay and death-zone systems write it; everything
// else reads it through the accessors.
//
// comboTimer > 0 exactly when comboCount > 0.
type Ledger struct {
	score      int
	coins      int
	lives      int
	comboCount int
	comboTimer float64
}

// NewLedger starts a session with the given lives.
func NewLedger(lives int) *Ledger {
	if lives < 0 {
		lives = 0
	}
	return &Ledger{lives: lives}
}

func (l *Ledger) Score() int          { return l.score }
func (l *Ledger) Coins() int          { return l.coins }
func (l *Ledger) Lives() int          { return l.lives }
func (l *Ledger) ComboCount() int     { return l.comboCount }
func (l *Ledger) ComboTimer() float64 { return l.comboTimer }

// GameOver is the terminal state: no lives left. The simulation keeps
// running, but no further life can be lost.
func (l *Ledger) GameOver() bool { return l.lives == 0 }

// Multiplier is the combo count clamped to ComboCeiling.
func (l *Ledger) Multiplier() int {
	return min(l.comboCount, ComboCeiling)
}

// RegisterStomp extends the combo, restarts its window and credits the
// stomp. It returns the score gained.
func (l *Ledger) RegisterStomp() int {
	l.comboCount++
	l.comboTimer = ComboWindow
	gain := StompScore * l.Multiplier()
	l.score += gain
	return gain
}

// RegisterDamage takes damage lives, never going below zero, and always
// breaks the combo, even with no lives left.
func (l *Ledger) RegisterDamage(damage int) {
	if l.lives > 0 && damage > 0 {
		l.lives -= min(damage, l.lives)
	}
	l.resetCombo()
}

// LoseLife takes one life if any is left and reports whether it did.
func (l *Ledger) LoseLife() bool {
	if l.lives == 0 {
		return false
	}
	l.lives--
	return true
}

// CollectCoins adds n coins worth scorePer points each.
func (l *Ledger) CollectCoins(n, scorePer int) {
	if n <= 0 {
		return
	}
	l.coins += n
	l.score += n * max(scorePer, 0)
}

// AddScore credits a flat bonus.
func (l *Ledger) AddScore(points int) {
	if points > 0 {
		l.score += points
	}
}

// Decay runs the combo window down by dt. The combo count drops to zero in
// the same call that exhausts the timer.
func (l *Ledger) Decay(dt float64) {
	if l.comboTimer <= 0 {
		return
	}
	l.comboTimer -= dt
	if l.comboTimer <= 0 {
		l.resetCombo()
	}
}

func (l *Ledger) resetCombo() {
	l.comboCount = 0
	l.comboTimer = 0
}

var LedgerComponent = NewComponent[Ledger]()
