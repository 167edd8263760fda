package scenes

import (
	"errors"
	"fmt"

	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/input"
	"github.com/automoto/roomrunner/level"
	"github.com/automoto/roomrunner/systems"
	"github.com/automoto/roomrunner/systems/factory"
	"github.com/automoto/roomrunner/world"
	"go.uber.org/zap"
)

// PlatformerScene is one running map: its world, level and player. It has no
// window of its own; a driver feeds it input and frame time and hands it a
// surface to draw on.
type PlatformerScene struct {
	w      *world.World
	env    *systems.Env
	lvl    *level.Level
	camera components.CameraData
	player *world.Entity

	texture any
	log     *zap.Logger
}

// NewPlatformerScene loads a binary map and places the player at its spawn.
// texture is the player's sprite, or nil for a plain box.
func NewPlatformerScene(mapData []byte, texture any, log *zap.Logger) (*PlatformerScene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ps := &PlatformerScene{
		w:       world.New(log),
		texture: texture,
		log:     log,
	}

	lvl, err := level.Load(ps.w, mapData, factory.SpawnTile, &ps.camera, log)
	if err != nil {
		return nil, fmt.Errorf("new platformer scene: %w", err)
	}
	if len(lvl.Rooms()) == 0 {
		return nil, errors.New("new platformer scene: map has no rooms")
	}
	ps.lvl = lvl
	ps.env = systems.Install(ps.w, lvl)

	ps.Reset()
	return ps, nil
}

// Step advances the scene by dt seconds with in as this frame's input. dt is
// clamped to the configured maximum frame time.
func (ps *PlatformerScene) Step(dt float64, in input.State) {
	if dt <= 0 {
		return
	}
	dt = min(dt, cfg.C.MaxFrameTime)

	if in == nil {
		in = input.None
	}
	if !ps.player.Destroyed() {
		components.Control.Get(ps.player.Entry()).State = in
	}

	ps.w.UpdateAll(dt)
	ps.w.Tick(dt)
}

// Draw paints the level, then every entity in spawn order, then the debug
// overlay.
func (ps *PlatformerScene) Draw(s world.Surface) {
	ps.lvl.Draw(s)
	ps.w.DrawAll(s)
	systems.DrawDebug(ps.w, ps.lvl, s)
}

// Reset tears everything down and starts the map over from the spawn room.
func (ps *PlatformerScene) Reset() {
	ps.w.DestroyAll()
	ps.w.Scheduler().Clear()
	ps.lvl.Reset()

	x, y := ps.lvl.Spawn()
	ps.player = factory.CreatePlayer(ps.w, x, y, input.None, ps.texture)

	cx, cy := components.Object.Get(ps.player.Entry()).Rect().Center()
	room, ok := ps.lvl.RoomContaining(cx, cy)
	if !ok {
		ps.log.Warn("spawn outside every room", zap.Float64("x", x), zap.Float64("y", y))
		room = 0
	}
	ps.lvl.LoadRoom(room)
}

func (ps *PlatformerScene) World() *world.World            { return ps.w }
func (ps *PlatformerScene) Level() *level.Level            { return ps.lvl }
func (ps *PlatformerScene) Env() *systems.Env              { return ps.env }
func (ps *PlatformerScene) Player() *world.Entity          { return ps.player }
func (ps *PlatformerScene) Camera() *components.CameraData { return &ps.camera }

// Deaths is how many times the player has died since the last reset.
func (ps *PlatformerScene) Deaths() int {
	return components.Player.Get(ps.player.Entry()).Deaths
}
