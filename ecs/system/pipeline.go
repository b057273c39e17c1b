package system

import "github.com/milk9111/platformer3d/ecs"

// Pipeline returns the gameplay systems in tick order. The physics step
// runs first so the controller and everything after it see this tick's
// positions; the death zone runs last so its position override sticks.
func Pipeline(input InputSource, particleSeed uint64) []ecs.System {
	return []ecs.System{
		NewPhysicsSystem(),
		NewInputSystem(input),
		NewPlayerControllerSystem(),
		NewEnemyPatrolSystem(),
		NewContactSystem(),
		NewPickupCollectSystem(),
		NewPickupHoverSystem(),
		NewComboDecaySystem(),
		NewRespawnSystem(),
		NewDeathAnimationSystem(),
		NewParticleSystem(particleSeed),
		NewCameraSystem(),
	}
}

// Install adds the pipeline to w.
func Install(w *ecs.World, input InputSource, particleSeed uint64) {
	for _, s := range Pipeline(input, particleSeed) {
		w.AddSystem(s)
	}
}
