package system

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
)

const (
	particlesPerBurst = 8
	particleLifetime  = 0.5
	particleGravity   = 9.8
)

// ParticleSystem spawns cosmetic bursts for coin and defeat effects and
// ages them out. Nothing in gameplay reads particles.
type ParticleSystem struct {
	rng *rand.Rand
}

func NewParticleSystem(seed uint64) *ParticleSystem {
	return &ParticleSystem{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		p.Elapsed += dt
		if p.Elapsed >= p.Lifetime {
			ecs.QueueDestroy(w, e)
			return
		}
		t.Position = t.Position.Add(p.Velocity.Mul(dt))
		p.Velocity[1] -= particleGravity * dt
		r := p.Remaining()
		t.Scale = mgl64.Vec3{r, r, r}
	})

	for _, evt := range w.Events().Items() {
		if evt.Kind != ecs.EffectCoinCollect && evt.Kind != ecs.EffectEnemyDefeat {
			continue
		}
		s.burst(w, evt.Position)
	}
}

func (s *ParticleSystem) burst(w *ecs.World, at mgl64.Vec3) {
	for i := 0; i < particlesPerBurst; i++ {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(at))
		_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{
			Velocity: mgl64.Vec3{
				s.between(-2, 2),
				s.between(2, 4),
				s.between(-2, 2),
			},
			Lifetime: particleLifetime,
		})
	}
}

func (s *ParticleSystem) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
