package systems

import (
	"testing"

	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestDrawEntities(t *testing.T) {
	f := setup(t, nil, withRow(4, "1345600001"))
	s := &recordingSurface{}

	f.w.DrawAll(s)

	assert.Equal(t, []any{cfg.White, cfg.Green, cfg.Blue, cfg.Red, cfg.Black}, toAny(s.colors()))
	assert.Zero(t, s.strokes)
}

func TestDrawDebugOutlines(t *testing.T) {
	old := cfg.C.Debug
	cfg.C.Debug = true
	t.Cleanup(func() { cfg.C.Debug = old })

	f := setup(t, nil, withRow(4, "1300000001"))
	s := &recordingSurface{}
	f.w.DrawAll(s)

	assert.Equal(t, 4, s.strokes, "player box and the spring's three boxes")
}

func TestDrawDebugGeometry(t *testing.T) {
	f := setup(t, nil, withRow(3, "1006000001"))
	s := &recordingSurface{}

	DrawDebug(f.w, f.lvl, s)
	assert.Zero(t, s.strokes, "off by default")

	old := cfg.C.Debug
	cfg.C.Debug = true
	t.Cleanup(func() { cfg.C.Debug = old })

	DrawDebug(f.w, f.lvl, s)
	assert.Equal(t, 1+len(f.lvl.Walls())+1, s.strokes, "room, walls and the moving block")
}

func TestDrawImpact(t *testing.T) {
	f := setup(t, nil, room)
	factory.CreateImpact(f.w, 100, 100)
	s := &recordingSurface{}

	f.w.DrawAll(s)

	assert.Equal(t, 1, s.circles)
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
