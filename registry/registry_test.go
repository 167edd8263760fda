package registry

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type item struct {
	Membership
	name string
}

func newItems(names ...string) []*item {
	out := make([]*item, len(names))
	for i, n := range names {
		out[i] = &item{name: n}
	}
	return out
}

func names(r *Registry[*item]) []string {
	var out []string
	r.Each(func(it *item) { out = append(out, it.name) })
	return out
}

func requireDense(t *testing.T, r *Registry[*item]) {
	t.Helper()
	for i := 0; i < r.Len(); i++ {
		slot, ok := r.At(i).Slot(r.ID())
		require.True(t, ok, "item %d has no slot", i)
		require.Equal(t, i, slot, "item %q", r.At(i).name)
	}
}

func TestAddStampsSlots(t *testing.T) {
	r := New[*item](1, "test", nil)
	for _, it := range newItems("a", "b", "c") {
		r.Add(it)
	}
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"a", "b", "c"}, names(r))
	requireDense(t, r)
}

func TestRemoveShiftsLaterSlots(t *testing.T) {
	r := New[*item](1, "test", nil)
	its := newItems("a", "b", "c", "d")
	for _, it := range its {
		r.Add(it)
	}

	require.True(t, r.Remove(its[1]))
	assert.Equal(t, []string{"a", "c", "d"}, names(r))
	requireDense(t, r)

	_, ok := its[1].Slot(r.ID())
	assert.False(t, ok)
	assert.False(t, r.Contains(its[1]))
}

func TestRemoveAbsentIsLoggedNoop(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := New[*item](1, "test", zap.New(core))
	its := newItems("a", "b")
	r.Add(its[0])

	assert.False(t, r.Remove(its[1]))
	assert.Equal(t, []string{"a"}, names(r))
	assert.Equal(t, 1, logs.FilterMessage("remove of item not in registry").Len())

	require.True(t, r.Remove(its[0]))
	assert.False(t, r.Remove(its[0]))
	assert.Equal(t, 2, logs.FilterMessage("remove of item not in registry").Len())
}

func TestRemoveStaleSlot(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := New[*item](1, "test", zap.New(core))
	its := newItems("a", "b")
	r.Add(its[0])
	its[1].SetSlot(r.ID(), 0)

	assert.False(t, r.Remove(its[1]))
	assert.Equal(t, []string{"a"}, names(r))
	assert.Equal(t, 1, logs.FilterMessage("remove with stale slot").Len())
	requireDense(t, r)
}

func TestAddTwiceIsIgnored(t *testing.T) {
	r := New[*item](1, "test", nil)
	it := &item{name: "a"}
	r.Add(it)
	r.Add(it)
	assert.Equal(t, 1, r.Len())
}

func TestMembershipAcrossRegistries(t *testing.T) {
	r1 := New[*item](1, "one", nil)
	r2 := New[*item](2, "two", nil)
	it := &item{name: "a"}
	r2.Add(&item{name: "pad"})
	r2.Add(it)
	r1.Add(it)

	assert.Equal(t, []ID{2, 1}, it.Registries())
	slot, _ := it.Slot(2)
	assert.Equal(t, 1, slot)

	r2.Remove(it)
	assert.Equal(t, []ID{1}, it.Registries())
}

func TestIterateRemovalCases(t *testing.T) {
	tests := []struct {
		name    string
		visitor string
		victim  string
		visited []string
		remains []string
	}{
		{"earlier", "b", "a", []string{"a", "b", "c"}, []string{"b", "c"}},
		{"self first", "a", "a", []string{"a", "b", "c"}, []string{"b", "c"}},
		{"self middle", "b", "b", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"self last", "c", "c", []string{"a", "b", "c"}, []string{"a", "b"}},
		{"next", "a", "b", []string{"a", "c"}, []string{"a", "c"}},
		{"last from first", "a", "c", []string{"a", "b"}, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New[*item](1, "test", nil)
			byName := map[string]*item{}
			for _, it := range newItems("a", "b", "c") {
				byName[it.name] = it
				r.Add(it)
			}

			var visited []string
			r.Iterate(func(it *item) {
				visited = append(visited, it.name)
				if it.name == tt.visitor {
					r.Remove(byName[tt.victim])
				}
			})

			assert.Equal(t, tt.visited, visited)
			assert.Equal(t, tt.remains, names(r))
			requireDense(t, r)
		})
	}
}

func TestIterateCursorPulledBackOnEarlierRemoval(t *testing.T) {
	r := New[*item](1, "test", nil)
	its := newItems("a", "b", "c")
	for _, it := range its {
		r.Add(it)
	}

	r.Iterate(func(it *item) {
		if it.name != "b" {
			return
		}
		require.Equal(t, 1, r.cursors[0])
		r.Remove(its[0])
		assert.Equal(t, 0, r.cursors[0])
		assert.Equal(t, "b", r.At(r.cursors[0]).name)
	})
	assert.Equal(t, []string{"b", "c"}, names(r))
}

func TestIterateVisitsAddedItems(t *testing.T) {
	r := New[*item](1, "test", nil)
	r.Add(&item{name: "a"})

	var visited []string
	r.Iterate(func(it *item) {
		visited = append(visited, it.name)
		if it.name == "a" {
			r.Add(&item{name: "spawned"})
		}
	})
	assert.Equal(t, []string{"a", "spawned"}, visited)
}

func TestIterateClearDuringPass(t *testing.T) {
	r := New[*item](1, "test", nil)
	for _, it := range newItems("a", "b", "c") {
		r.Add(it)
	}

	var visited []string
	r.Iterate(func(it *item) {
		visited = append(visited, it.name)
		r.Clear()
	})
	assert.Equal(t, []string{"a"}, visited)
	assert.Zero(t, r.Len())
}

func TestNestedIterate(t *testing.T) {
	r := New[*item](1, "test", nil)
	its := newItems("a", "b", "c", "d")
	for _, it := range its {
		r.Add(it)
	}

	outer := map[string]int{}
	r.Iterate(func(it *item) {
		outer[it.name]++
		if it.name == "b" {
			r.Iterate(func(inner *item) {
				if inner.name == "a" {
					r.Remove(inner)
				}
			})
		}
	})

	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, outer)
	assert.Equal(t, []string{"b", "c", "d"}, names(r))
}

func TestIterateRandomMutationVisitsEachLiveItemOnce(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7+1))
		r := New[*item](3, "fuzz", nil)
		var all []*item
		for i := 0; i < 20; i++ {
			it := &item{name: fmt.Sprint(i)}
			all = append(all, it)
			r.Add(it)
		}

		counts := map[*item]int{}
		r.Iterate(func(it *item) {
			require.True(t, r.Contains(it), "seed %d: visited dead item %s", seed, it.name)
			counts[it]++

			switch rng.IntN(4) {
			case 0:
				r.Remove(it)
			case 1:
				if r.Len() > 0 {
					r.Remove(r.At(rng.IntN(r.Len())))
				}
			case 2:
				if len(all) < 40 {
					n := &item{name: fmt.Sprintf("n%d", len(all))}
					all = append(all, n)
					r.Add(n)
				}
			}
		})

		for _, it := range all {
			require.LessOrEqual(t, counts[it], 1, "seed %d: %s visited twice", seed, it.name)
			if r.Contains(it) {
				require.Equal(t, 1, counts[it], "seed %d: live %s skipped", seed, it.name)
			}
		}
		requireDense(t, r)
	}
}
