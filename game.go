package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer3d/common"
	"github.com/milk9111/platformer3d/ecs"
	"github.com/milk9111/platformer3d/ecs/component"
	"github.com/milk9111/platformer3d/ecs/entity"
	"github.com/milk9111/platformer3d/ecs/system"
	"github.com/milk9111/platformer3d/levels"
	"github.com/milk9111/platformer3d/prefabs"
)

type Options struct {
	Level string
	Debug bool
	Watch bool
	TPS   int
}

type Game struct {
	opts   Options
	level  *levels.Level
	specs  *prefabs.Specs
	world  *ecs.World
	player ecs.Entity
	seed   uint64

	input    *keyboardInput
	renderer *renderer
	hud      *hud
	watcher  *prefabs.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	specs, err := prefabs.LoadAll()
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:     opts,
		level:    lvl,
		specs:    specs,
		input:    &keyboardInput{},
		renderer: newRenderer(),
		hud:      newHUD(),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir())
		if err != nil {
			log.Printf("prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reset throws the current world away and builds the level from scratch.
func (g *Game) reset() error {
	w := ecs.NewWorld()
	w.SetDeltaTime(1 / float64(g.opts.TPS))
	g.seed++
	system.Install(w, g.input, g.seed)

	player, err := entity.LoadLevelToWorld(w, g.level, g.specs)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	g.world = w
	g.player = player
	g.paused = false
	log.Printf("level %s loaded: %d entities", g.level.Name, len(ecs.Entities(w)))
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollWatcher()

	if g.gameOver() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			return err
		}
	}

	g.world.Update()
	return nil
}

func (g *Game) gameOver() bool {
	e, ok := ecs.First(g.world, component.LedgerComponent.Kind())
	if !ok {
		return false
	}
	ledger, ok := ecs.Get(g.world, e, component.LedgerComponent.Kind())
	return ok && ledger.GameOver()
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadPrefab(name)
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("prefab watch: %v", err)
			}
		default:
			return
		}
	}
}

// reloadPrefab applies player tuning live. Enemy and pickup prefabs only
// affect spawning, so they take effect on the next restart.
func (g *Game) reloadPrefab(name string) {
	switch name {
	case "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.specs.Player = spec
		log.Printf("reload %s: %d player(s) retuned", name, entity.ReloadPlayer(g.world, spec))
	case "enemy.yaml":
		if spec, err := prefabs.LoadEnemySpec(); err != nil {
			log.Printf("reload %s: %v", name, err)
		} else {
			g.specs.Enemy = spec
		}
	case "pickups.yaml":
		if spec, err := prefabs.LoadPickupSpec(); err != nil {
			log.Printf("reload %s: %v", name, err)
		} else {
			g.specs.Pickups = spec
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)
	g.hud.Draw(screen, g.world)
	if g.opts.Debug {
		drawDebug(screen, g.world, g.player)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
