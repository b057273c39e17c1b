package component

import "github.com/go-gl/mathgl/mgl64"

// Children lists visual sub-entities destroyed together with their parent.
// Entries are ecs.Entity values stored as uint64.
type Children struct {
	Entities []uint64
}

var ChildrenComponent = NewComponent[Children]()

// Parent links a child back to its owner and keeps it at a fixed local
// offset, rotated with the parent.
type Parent struct {
	Entity uint64
	Offset mgl64.Vec3
}

var ParentComponent = NewComponent[Parent]()
