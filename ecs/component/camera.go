package component

import "github.com/go-gl/mathgl/mgl64"

// Camera follows the first entity carrying the target tag. Smoothness is the
// fraction of the remaining distance covered each tick.
type Camera struct {
	Position   mgl64.Vec3
	Offset     mgl64.Vec3
	Smoothness float64
	Zoom       float64
	Snapped    bool
}

var CameraComponent = NewComponent[Camera]()
