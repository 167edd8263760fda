// Package level turns a room map into a playable level: static walls and
// semi-solids in a resolv space, and rooms whose entities stream in and out
// as the player moves between them.
package level

import (
	"bytes"
	"fmt"

	"github.com/automoto/roomrunner/collision"
	"github.com/automoto/roomrunner/components"
	"github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/automoto/roomrunner/shared/leveldata"
	"github.com/automoto/roomrunner/tags"
	"github.com/automoto/roomrunner/world"
	"github.com/solarlune/resolv"
	"go.uber.org/zap"
)

// SemiSolidHeight is how tall a one-way platform's hitbox is.
const SemiSolidHeight = leveldata.TileUnit

// Spawner builds the entity a spawner tile stands for. It returns nil for
// tiles it does not handle.
type Spawner func(w *world.World, sp leveldata.Spawner) *world.Entity

type Level struct {
	w      *world.World
	log    *zap.Logger
	data   *leveldata.Map
	spawn  Spawner
	camera *components.CameraData

	space      *resolv.Space
	rooms      []gamemath.Rect
	walls      []*resolv.Object
	semiSolids []*resolv.Object

	current int
	room    *world.Group
}

// Load decodes a binary room map and builds its static geometry. No room is
// current until LoadRoom is called.
func Load(w *world.World, data []byte, spawn Spawner, camera *components.CameraData, log *zap.Logger) (*Level, error) {
	if log == nil {
		log = zap.NewNop()
	}
	records, err := leveldata.ReadRooms(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	for i, r := range records {
		if r.X < 0 || r.Y < 0 {
			return nil, fmt.Errorf("load map: room %d has negative origin (%d, %d)", i, r.X, r.Y)
		}
	}

	m := leveldata.Build(records)
	for _, u := range m.Unknown {
		log.Warn("unknown tile skipped",
			zap.Int("room", u.Room),
			zap.Stringer("tile", u.Code),
			zap.Float64("x", u.Pos.X),
			zap.Float64("y", u.Pos.Y),
		)
	}

	l := &Level{
		w:       w,
		log:     log,
		data:    m,
		spawn:   spawn,
		camera:  camera,
		current: -1,
		room:    w.NewGroup("room"),
	}
	l.build()

	log.Debug("map loaded",
		zap.Int("rooms", len(m.Rooms)),
		zap.Int("walls", len(l.walls)),
		zap.Int("semiSolids", len(l.semiSolids)),
	)
	return l, nil
}

func (l *Level) build() {
	width, height := leveldata.TileUnit, leveldata.TileUnit
	for _, room := range l.data.Rooms {
		r := gamemath.Rect{
			X: float64(room.X * leveldata.TileUnit),
			Y: float64(room.Y * leveldata.TileUnit),
			W: float64(room.W * leveldata.TileUnit),
			H: float64(room.H * leveldata.TileUnit),
		}
		l.rooms = append(l.rooms, r)
		width = max(width, int(r.Right()))
		height = max(height, int(r.Bottom()))
	}

	l.space = resolv.NewSpace(width, height, leveldata.TileUnit, leveldata.TileUnit)

	for _, p := range l.data.Walls {
		obj := resolv.NewObject(p.X, p.Y, leveldata.TileUnit, leveldata.TileUnit, tags.ResolvSolid)
		l.walls = append(l.walls, obj)
		l.space.Add(obj)
	}
	for _, p := range l.data.SemiSolids {
		obj := resolv.NewObject(p.X, p.Y, leveldata.TileUnit, SemiSolidHeight, tags.ResolvSemiSolid)
		l.semiSolids = append(l.semiSolids, obj)
		l.space.Add(obj)
	}
}

// LoadRoom makes room i current: the previous room's entities are destroyed,
// the dynamic solids are forgotten, and the new room's spawners come alive.
func (l *Level) LoadRoom(i int) {
	if i == l.current {
		return
	}
	if i < 0 || i >= len(l.data.Rooms) {
		l.log.Warn("load of unknown room", zap.Int("room", i), zap.Int("rooms", len(l.data.Rooms)))
		return
	}

	world.DestroyGroup(l.w, l.room)
	l.w.DynamicSolids().Clear()
	l.current = i

	room := l.data.Rooms[i]
	for _, sp := range room.Spawners {
		if l.spawn == nil {
			break
		}
		e := l.spawn(l.w, sp)
		if e == nil {
			continue
		}
		l.w.Join(l.room, e)
		if e.Entry().HasComponent(components.Solid) {
			l.w.Join(l.w.DynamicSolids(), e)
		}
	}

	if l.camera != nil {
		l.camera.Position.X = l.rooms[i].X
		l.camera.Position.Y = l.rooms[i].Y
	}

	l.log.Debug("room loaded",
		zap.Int("room", i),
		zap.Int("entities", l.room.Len()),
		zap.Int("dynamicSolids", l.w.DynamicSolids().Len()),
	)
}

// Reset forgets the current room so the next LoadRoom streams it in again.
// Entities already spawned are left to the caller.
func (l *Level) Reset() {
	l.current = -1
	l.room.Clear()
	l.w.DynamicSolids().Clear()
}

// RoomContaining returns the room whose rectangle holds the point.
func (l *Level) RoomContaining(x, y float64) (int, bool) {
	for i, r := range l.rooms {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// CurrentRoom is the index of the current room, or -1.
func (l *Level) CurrentRoom() int { return l.current }

// CurrentRoomRectangle is the current room in world pixels.
func (l *Level) CurrentRoomRectangle() gamemath.Rect {
	if l.current < 0 {
		return gamemath.Rect{}
	}
	return l.rooms[l.current]
}

func (l *Level) Rooms() []gamemath.Rect         { return l.rooms }
func (l *Level) Space() *resolv.Space           { return l.space }
func (l *Level) Walls() []*resolv.Object        { return l.walls }
func (l *Level) SemiSolids() []*resolv.Object   { return l.semiSolids }
func (l *Level) RoomEntities() *world.Group     { return l.room }
func (l *Level) Map() *leveldata.Map            { return l.data }
func (l *Level) Camera() *components.CameraData { return l.camera }

// Spawn returns the player spawn point, or the first room's origin when the
// map has no spawn tile.
func (l *Level) Spawn() (float64, float64) {
	if l.data.HasSpawn {
		return l.data.Spawn.X, l.data.Spawn.Y
	}
	if len(l.rooms) > 0 {
		return l.rooms[0].X + leveldata.TileUnit, l.rooms[0].Y + leveldata.TileUnit
	}
	return 0, 0
}

// Solids returns the walls near r followed by every dynamic solid. An empty
// result is normal in open air; resolution against it moves freely.
func (l *Level) Solids(r gamemath.Rect) []*resolv.Object {
	out := collision.Candidates(l.space, r, tags.ResolvSolid)
	l.w.DynamicSolids().Each(func(e *world.Entity) {
		if obj := components.Solid.Get(e.Entry()).Object; obj != nil {
			out = append(out, obj)
		}
	})
	if len(out) == 0 {
		l.log.Debug("no candidate solids",
			zap.Float64("x", r.X),
			zap.Float64("y", r.Y),
			zap.Float64("w", r.W),
			zap.Float64("h", r.H),
		)
	}
	return out
}

// SemiSolidsNear returns the one-way platforms near r.
func (l *Level) SemiSolidsNear(r gamemath.Rect) []*resolv.Object {
	return collision.Candidates(l.space, r, tags.ResolvSemiSolid)
}

// Draw paints the static geometry.
func (l *Level) Draw(s world.Surface) {
	for _, obj := range l.walls {
		s.FillRect(gamemath.RectOf(obj), config.Gray)
	}
	for _, obj := range l.semiSolids {
		r := gamemath.RectOf(obj)
		r.H = leveldata.TileUnit / 4
		s.FillRect(r, config.LightBlue)
	}
}
