package component

// Input stores the per-tick input snapshot for an entity. Movement keys and
// Sprint are held state; JumpPressed is true only on the tick the jump key
// went down.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Sprint  bool

	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
