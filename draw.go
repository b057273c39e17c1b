package main

import (
	"cmp"
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer3d/common"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
	"golang.org/x/image/colornames"
)

// pixelsPerMeter at zoom 1.
const pixelsPerMeter = 24.0

// depthSquash flattens z on screen so the view reads as looking down at an
// angle.
const depthSquash = 0.5

var (
	skyColor    = colornames.Lightskyblue
	shadowColor = color.RGBA{A: 70}
	eyeColor    = colornames.White
)

func platformColor(name string) color.RGBA {
	switch {
	case name == "ground":
		return colornames.Yellowgreen
	case strings.HasPrefix(name, "question_block"):
		return colornames.Gold
	case strings.HasPrefix(name, "pipe"):
		return colornames.Forestgreen
	case strings.Contains(name, "wall"):
		return colornames.Slategray
	default:
		return colornames.Peru
	}
}

func powerUpColor(kind component.PowerUpKind) color.RGBA {
	switch kind {
	case component.PowerUpMushroom:
		return colornames.Crimson
	case component.PowerUpFireFlower:
		return colornames.Darkorange
	case component.PowerUpStar:
		return colornames.Yellow
	default:
		return colornames.Magenta
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}

type renderer struct {
	camera mgl64.Vec3
	scale  float64
}

func newRenderer() *renderer {
	return &renderer{scale: pixelsPerMeter}
}

func (r *renderer) project(p mgl64.Vec3) (float32, float32) {
	x := (p.X()-r.camera.X())*r.scale + common.BaseWidth/2
	y := ((p.Z()-r.camera.Z())*depthSquash-(p.Y()-r.camera.Y()))*r.scale + common.BaseHeight/2
	return float32(x), float32(y)
}

// sprite is anything drawn as a disc, sorted back to front.
type sprite struct {
	pos    mgl64.Vec3
	radius float64
	col    color.Color
	shadow bool
}

func (r *renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	screen.Fill(skyColor)
	if w == nil {
		return
	}

	if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
			r.camera = cam.Position
			r.scale = pixelsPerMeter * max(cam.Zoom, 0.1)
		}
	}

	var platforms []*component.Platform
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		platforms = append(platforms, p)
	})
	slices.SortFunc(platforms, func(a, b *component.Platform) int {
		if c := cmp.Compare(a.Center.Y()+a.Size.Y()/2, b.Center.Y()+b.Size.Y()/2); c != 0 {
			return c
		}
		return cmp.Compare(a.Center.Z(), b.Center.Z())
	})
	for _, p := range platforms {
		r.drawBox(screen, p)
	}

	sprites := r.collectSprites(w)
	slices.SortFunc(sprites, func(a, b sprite) int {
		return cmp.Compare(a.pos.Z(), b.pos.Z())
	})
	probe := w.Prober()
	for _, s := range sprites {
		if s.shadow {
			if hit, ok := probe.CastRay(s.pos, mgl64.Vec3{0, -1, 0}, 50, 0); ok {
				x, y := r.project(s.pos.Sub(mgl64.Vec3{0, hit.Distance, 0}))
				vector.FillCircle(screen, x, y, float32(s.radius*r.scale), shadowColor, true)
			}
		}
		x, y := r.project(s.pos)
		vector.FillCircle(screen, x, y, float32(s.radius*r.scale), s.col, true)
	}
}

func (r *renderer) drawBox(screen *ebiten.Image, p *component.Platform) {
	half := p.Size.Mul(0.5)
	top := p.Center.Y() + half.Y()
	col := platformColor(p.Name)

	x0, y0 := r.project(mgl64.Vec3{p.Center.X() - half.X(), top, p.Center.Z() - half.Z()})
	w := float32(p.Size.X() * r.scale)
	depth := float32(p.Size.Z() * depthSquash * r.scale)
	height := float32(p.Size.Y() * r.scale)

	vector.FillRect(screen, x0, y0, w, depth, col, false)
	vector.FillRect(screen, x0, y0+depth, w, height, shade(col, 0.7), false)
	vector.StrokeRect(screen, x0, y0, w, depth+height, 1, shade(col, 0.45), false)
}

func (r *renderer) collectSprites(w *ecs.World) []sprite {
	var out []sprite

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		radius := 0.4
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			radius = body.Radius
		}
		out = append(out, sprite{pos: t.Position, radius: radius, col: colornames.Red, shadow: true})
	})
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		col := colornames.Saddlebrown
		if enemy.IsDying() {
			col = colornames.Rosybrown
		}
		out = append(out, sprite{pos: t.Position, radius: 0.5 * t.Scale.X(), col: col, shadow: !enemy.IsDying()})
	})
	ecs.ForEach2(w, component.EyeTagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.EyeTag, t *component.Transform) {
		out = append(out, sprite{pos: t.Position, radius: 0.08, col: eyeColor})
	})
	ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Coin, t *component.Transform) {
		// the disc narrows as the coin turns edge-on
		turn := t.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
		out = append(out, sprite{pos: t.Position, radius: 0.15 + 0.15*math.Abs(turn.Z()), col: colornames.Gold})
	})
	ecs.ForEach2(w, component.PowerUpComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.PowerUp, t *component.Transform) {
		out = append(out, sprite{pos: t.Position, radius: 0.4, col: powerUpColor(p.Kind), shadow: true})
	})
	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Particle, t *component.Transform) {
		out = append(out, sprite{pos: t.Position, radius: 0.1 * t.Scale.X(), col: colornames.Khaki})
	})
	return out
}

func drawDebug(screen *ebiten.Image, w *ecs.World, player ecs.Entity) {
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	t, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	v, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	text := fmt.Sprintf("TPS %.1f  ticks %d\npos %.2f %.2f %.2f\nvel %.2f %.2f %.2f\ngrounded %v  double %v  wall %v  cooldown %.2f",
		ebiten.ActualTPS(), w.Ticks(),
		t.Position.X(), t.Position.Y(), t.Position.Z(),
		v.Linear.X(), v.Linear.Y(), v.Linear.Z(),
		p.IsGrounded, p.HasDoubleJump, p.HasWallNormal, p.WallJumpCooldown)
	ebitenutil.DebugPrintAt(screen, text, 10, common.BaseHeight-80)
}
