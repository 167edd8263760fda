package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/input"
	"github.com/automoto/roomrunner/level"
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/automoto/roomrunner/shared/leveldata"
	"github.com/automoto/roomrunner/systems/factory"
	"github.com/automoto/roomrunner/world"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const frame = 1.0 / 60

// room is a 10x6 box: border walls, spawn at tile (1,1), floor top at y=160.
var room = []string{
	"1111111111",
	"1200000001",
	"1000000001",
	"1000000001",
	"1000000001",
	"1111111111",
}

type fixture struct {
	w      *world.World
	env    *Env
	lvl    *level.Level
	camera *components.CameraData
	player *world.Entity
	in     *input.Snapshot
}

func compile(t *testing.T, rooms ...[]string) []byte {
	t.Helper()
	var src strings.Builder
	x := 0
	for _, rows := range rooms {
		fmt.Fprintf(&src, "%d 0 %d %d\n", x, len(rows[0]), len(rows))
		for _, row := range rows {
			src.WriteString(row + "\r\n")
		}
		x += len(rows[0])
	}
	var buf bytes.Buffer
	require.NoError(t, leveldata.Compile(strings.NewReader(src.String()), &buf))
	return buf.Bytes()
}

func setup(t *testing.T, log *zap.Logger, rooms ...[]string) *fixture {
	t.Helper()
	w := world.New(log)
	camera := &components.CameraData{}
	lvl, err := level.Load(w, compile(t, rooms...), factory.SpawnTile, camera, log)
	require.NoError(t, err)

	f := &fixture{w: w, lvl: lvl, camera: camera, in: &input.Snapshot{}}
	f.env = Install(w, lvl)
	x, y := lvl.Spawn()
	f.player = factory.CreatePlayer(w, x, y, f.in, nil)
	lvl.LoadRoom(0)
	return f
}

// step runs n frames holding the given actions.
func (f *fixture) step(n int, hold ...input.Action) {
	for i := 0; i < n; i++ {
		f.in.Advance()
		for _, a := range hold {
			f.in.Hold(a)
		}
		f.w.UpdateAll(frame)
		f.w.Tick(frame)
	}
}

func (f *fixture) obj() *resolv.Object {
	return components.Object.Get(f.player.Entry()).Object
}

func (f *fixture) physics() *components.PhysicsData {
	return components.Physics.Get(f.player.Entry())
}

func (f *fixture) data() *components.PlayerData {
	return components.Player.Get(f.player.Entry())
}

// place puts the player down at (x, y), airborne and at rest.
func (f *fixture) place(x, y float64) {
	obj := f.obj()
	obj.X, obj.Y = x, y
	*f.physics() = components.PhysicsData{}
}

func (f *fixture) kinds() map[world.Kind]int {
	out := make(map[world.Kind]int)
	f.w.Entities().Each(func(e *world.Entity) { out[e.Kind()]++ })
	return out
}

// withRow replaces one row of the 10x6 room.
func withRow(y int, row string) []string {
	rows := append([]string(nil), room...)
	rows[y] = row
	return rows
}

type fill struct {
	r gamemath.Rect
	c color.Color
}

type recordingSurface struct {
	fills   []fill
	strokes int
	circles int
}

func (s *recordingSurface) FillRect(r gamemath.Rect, c color.Color) {
	s.fills = append(s.fills, fill{r, c})
}
func (s *recordingSurface) StrokeRect(gamemath.Rect, color.Color)       { s.strokes++ }
func (s *recordingSurface) StrokeCircle(_, _, _ float64, _ color.Color) { s.circles++ }
func (s *recordingSurface) DrawTexture(any, gamemath.Rect)              {}

func (s *recordingSurface) colors() []color.Color {
	var out []color.Color
	for _, f := range s.fills {
		out = append(out, f.c)
	}
	return out
}

func withDeathPolicy(t *testing.T, p cfg.DeathPolicy) {
	t.Helper()
	old := cfg.Death
	cfg.Death = p
	t.Cleanup(func() { cfg.Death = old })
}
