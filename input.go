package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer3d/ecs/component"
)

// keyboardInput samples WASD or the arrow keys, Shift to sprint and Space to
// jump.
type keyboardInput struct{}

func (keyboardInput) Sample() component.Input {
	return component.Input{
		Forward:     pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Back:        pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:        pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:       pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Sprint:      pressed(ebiten.KeyShift),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
