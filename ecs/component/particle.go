package component

import "github.com/go-gl/mathgl/mgl64"

// Particle is a cosmetic spark with a fixed lifetime. It has no gameplay
// effect.
type Particle struct {
	Velocity mgl64.Vec3
	Elapsed  float64
	Lifetime float64
}

// Remaining is the share of the lifetime still left, in [0, 1].
func (p *Particle) Remaining() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return mgl64.Clamp(1-p.Elapsed/p.Lifetime, 0, 1)
}

var ParticleComponent = NewComponent[Particle]()
