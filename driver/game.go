// Package driver runs a platformer scene in an ebiten window.
package driver

import (
	"fmt"

	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/input"
	"github.com/automoto/roomrunner/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Game adapts a PlatformerScene to ebiten.Game.
type Game struct {
	scene    *scenes.PlatformerScene
	snap     input.Snapshot
	bindings Bindings
	log      *zap.Logger
}

func NewGame(scene *scenes.PlatformerScene, bindings Bindings, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{scene: scene, bindings: bindings, log: log}
}

func (g *Game) Update() error {
	Poll(&g.snap, g.bindings, g.scene.Camera())

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Reset()
		g.log.Info("level reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.C.Debug = !cfg.C.Debug
	}

	g.scene.Step(1/float64(ebiten.TPS()), &g.snap)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent flashes from the OS window background
	screen.Fill(cfg.Sky)

	cam := g.scene.Camera().Position
	g.scene.Draw(NewSurface(screen, cam.X, cam.Y))

	hud := fmt.Sprintf("room %d  deaths %d", g.scene.Level().CurrentRoom(), g.scene.Deaths())
	if cfg.C.Debug {
		hud += fmt.Sprintf("\nTPS %.0f  FPS %.0f  entities %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.scene.World().Entities().Len())
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
