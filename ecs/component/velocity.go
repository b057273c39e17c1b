package component

import "github.com/go-gl/mathgl/mgl64"

// Velocity is the linear velocity in meters per second. The player
// controller writes it, the physics step consumes it.
type Velocity struct {
	Linear mgl64.Vec3
}

var VelocityComponent = NewComponent[Velocity]()
