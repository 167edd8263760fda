package systems

import (
	"github.com/automoto/roomrunner/collision"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/automoto/roomrunner/systems/factory"
	"github.com/automoto/roomrunner/world"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// FireBullet traces a shot from (x, y) along the unit vector (dirX, dirY).
// The bullet advances Speed*dt pixels per step until it overlaps a solid or
// has covered MaxDistance; a hit leaves an impact at the bullet's centre.
func (env *Env) FireBullet(w *world.World, x, y, dirX, dirY, dt float64) *world.Entity {
	size := cfg.Bullet.Size
	r := gamemath.Rect{X: x, Y: y, W: size, H: size}
	step := cfg.Bullet.Speed * dt
	if step <= 0 {
		step = size
	}

	maxDist := cfg.Bullet.MaxDistance
	solids := env.Level.Solids(r.Sweep(dirX*maxDist, dirY*maxDist))

	hit := false
	for travelled := 0.0; ; travelled += step {
		if collision.FirstHit(r, solids) != nil {
			hit = true
			break
		}
		if travelled+step > maxDist {
			break
		}
		r = r.Offset(dirX*step, dirY*step)
	}

	cx, cy := r.Center()
	if hit {
		factory.CreateImpact(w, cx, cy)
	}
	env.Log.Debug("shot fired",
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Float64("toX", cx),
		zap.Float64("toY", cy),
		zap.Bool("hit", hit),
	)
	return factory.CreateBullet(w, math.Vec2{X: x, Y: y}, math.Vec2{X: cx, Y: cy}, hit)
}

// UpdateBullet removes the trace on its first update.
func UpdateBullet(w *world.World, e *world.Entity, _ float64) {
	w.Destroy(e)
}
