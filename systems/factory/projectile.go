package factory

import (
	"github.com/automoto/roomrunner/archetypes"
	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// CreateBullet spawns the visible trace of a shot from from to to. Its
// hitbox sits at the end of the trace.
func CreateBullet(w *world.World, from, to math.Vec2, hit bool) *world.Entity {
	bullet := archetypes.Bullet.Spawn(w)
	entry := bullet.Entry()

	size := cfg.Bullet.Size
	obj := resolv.NewObject(to.X-size/2, to.Y-size/2, size, size)
	obj.Data = bullet
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Bullet.SetValue(entry, components.BulletData{From: from, To: to, Hit: hit})

	return bullet
}

// CreateImpact spawns a short-lived blast centred on (x, y).
func CreateImpact(w *world.World, x, y float64) *world.Entity {
	impact := archetypes.Impact.Spawn(w)
	entry := impact.Entry()

	r := cfg.Impact.Radius
	obj := resolv.NewObject(x-r, y-r, 2*r, 2*r)
	obj.Data = impact
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Impact.SetValue(entry, components.ImpactData{
		Origin: math.Vec2{X: x, Y: y},
		Radius: r,
	})

	w.After(cfg.Impact.Lifetime, func() { w.Destroy(impact) })
	return impact
}
