package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer3d/common"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

type hud struct {
	face  *text.GoTextFace
	large *text.GoTextFace
}

func newHUD() *hud {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("hud: load font: %v", err)
	}
	return &hud{
		face:  &text.GoTextFace{Source: src, Size: 20},
		large: &text.GoTextFace{Source: src, Size: 48},
	}
}

func (h *hud) Draw(screen *ebiten.Image, w *ecs.World) {
	e, ok := ecs.First(w, component.LedgerComponent.Kind())
	if !ok {
		return
	}
	ledger, ok := ecs.Get(w, e, component.LedgerComponent.Kind())
	if !ok {
		return
	}

	h.print(screen, h.face, fmt.Sprintf("SCORE %06d", ledger.Score()), 16, 12, colornames.White, text.AlignStart)
	h.print(screen, h.face, fmt.Sprintf("COINS %d", ledger.Coins()), 16, 38, colornames.Gold, text.AlignStart)
	h.print(screen, h.face, fmt.Sprintf("LIVES %d", ledger.Lives()), common.BaseWidth-16, 12, colornames.White, text.AlignEnd)
	if ledger.ComboCount() > 1 {
		h.print(screen, h.face, fmt.Sprintf("COMBO x%d", ledger.Multiplier()), common.BaseWidth/2, 12, colornames.Orange, text.AlignCenter)
	}

	if ledger.GameOver() {
		h.print(screen, h.large, "GAME OVER", common.BaseWidth/2, common.BaseHeight/2-40, colornames.Crimson, text.AlignCenter)
		h.print(screen, h.face, "press R to restart", common.BaseWidth/2, common.BaseHeight/2+20, colornames.White, text.AlignCenter)
	}
}

func (h *hud) print(screen *ebiten.Image, face text.Face, s string, x, y float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}
