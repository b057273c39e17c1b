package component

import "github.com/go-gl/mathgl/mgl64"

// RespawnTimer is attached to the player only while it is falling away
// after leaving the death zone.
type RespawnTimer struct {
	Remaining float64
}

var RespawnTimerComponent = NewComponent[RespawnTimer]()

// SpawnPoint is where the player reappears after a respawn.
type SpawnPoint struct {
	Position mgl64.Vec3
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
