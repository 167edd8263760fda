// Package leveldata reads and writes room maps. It is pure data and does not
// import ebitengine, donburi or resolv.
package leveldata

import (
	"errors"
	"fmt"
)

// TileUnit is the pixel size of one grid cell.
const TileUnit = 32

// MaxRoomTiles caps W*H of a single room.
const MaxRoomTiles = 1 << 20

// ErrRoomTooLarge is returned for a room whose size exceeds MaxRoomTiles.
var ErrRoomTooLarge = errors.New("room too large")

func checkSize(w, h int32) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("negative size %dx%d", w, h)
	}
	if int64(w)*int64(h) > MaxRoomTiles {
		return fmt.Errorf("size %dx%d: %w", w, h, ErrRoomTooLarge)
	}
	return nil
}

// Tile is one cell code of the room map format.
type Tile byte

const (
	TileNone Tile = iota
	TileWall
	TileSpawn
	TileSpring
	TileBonus
	TileSpike
	TileMovingBlock
	TileSemiSolid
	tileCount
)

var tileNames = [...]string{
	TileNone:        "None",
	TileWall:        "Wall",
	TileSpawn:       "Spawn",
	TileSpring:      "Spring",
	TileBonus:       "Bonus",
	TileSpike:       "Spike",
	TileMovingBlock: "MovingBlock",
	TileSemiSolid:   "SemiSolid",
}

func (t Tile) String() string {
	if t < tileCount {
		return tileNames[t]
	}
	return fmt.Sprintf("Tile(%d)", byte(t))
}

// IsSpawner reports whether the tile binds to an entity type.
func (t Tile) IsSpawner() bool {
	return t >= TileSpring && t <= TileMovingBlock
}

// RoomRecord is one room exactly as stored: origin and size in tiles, then
// W*H tile codes in row-major order.
type RoomRecord struct {
	X, Y, W, H int32
	Tiles      []Tile
}

// At returns the tile at room-local column x, row y.
func (r RoomRecord) At(x, y int) Tile {
	return r.Tiles[y*int(r.W)+x]
}

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// Spawner binds an entity tile to the pixel position of its cell's top-left.
type Spawner struct {
	Tile Tile
	Pos  Point
}

// Room is a decoded room: its rectangle in tiles and the entities it streams in.
type Room struct {
	X, Y, W, H int
	Spawners   []Spawner
}

// UnknownTile records a non-zero tile code the loader does not understand.
type UnknownTile struct {
	Room int
	Code Tile
	Pos  Point
}

// Map is the runtime view of a room map.
type Map struct {
	Rooms      []Room
	Walls      []Point
	SemiSolids []Point
	Spawn      Point
	HasSpawn   bool
	Unknown    []UnknownTile
}
