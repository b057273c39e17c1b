package component

import "github.com/go-gl/mathgl/mgl64"

// Platform is a static axis-aligned box of level geometry.
type Platform struct {
	Name   string
	Center mgl64.Vec3
	Size   mgl64.Vec3
}

var PlatformComponent = NewComponent[Platform]()
