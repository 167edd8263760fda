package systems

import (
	"math"

	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/automoto/roomrunner/world"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// launchDirections are the only directions an impact throws the player in:
// the four axes, the diagonals, and the halfway steps between them.
var launchDirections = normalized([]dmath.Vec2{
	{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1},
	{X: -0.5, Y: -1}, {X: 0.5, Y: -1}, {X: -0.5, Y: 1}, {X: 0.5, Y: 1},
	{X: -1, Y: -0.5}, {X: -1, Y: 0.5}, {X: 1, Y: -0.5}, {X: 1, Y: 0.5},
})

func normalized(dirs []dmath.Vec2) []dmath.Vec2 {
	for i, d := range dirs {
		l := math.Hypot(d.X, d.Y)
		dirs[i] = dmath.Vec2{X: d.X / l, Y: d.Y / l}
	}
	return dirs
}

// LaunchDirection snaps (dx, dy) to the launch direction closest in angle.
// Ties go to the earlier direction in the table.
func LaunchDirection(dx, dy float64) dmath.Vec2 {
	best := launchDirections[0]
	bestDot := math.Inf(-1)
	for _, d := range launchDirections {
		if dot := d.X*dx + d.Y*dy; dot > bestDot {
			best, bestDot = d, dot
		}
	}
	return best
}

// LaunchSpeed falls off linearly from MaxImpactSpeed at MinPlayerDistance to
// MinImpactSpeed at the edge of the blast.
func LaunchSpeed(distance, radius float64) float64 {
	t := gamemath.InverseLerp(cfg.Impact.MinPlayerDistance, radius, distance)
	return gamemath.Lerp(cfg.Impact.MaxImpactSpeed, cfg.Impact.MinImpactSpeed, t)
}

func impactTouches(impact, player *world.Entity) bool {
	data := components.Impact.Get(impact.Entry())
	cx, cy := hitbox(player).Center()
	return math.Hypot(cx-data.Origin.X, cy-data.Origin.Y) < data.Radius
}

// touchImpact throws the player away from the blast. An impact launches at
// most once.
func (env *Env) touchImpact(w *world.World, impact, player *world.Entity) {
	data := components.Impact.Get(impact.Entry())
	physics := components.Physics.Get(player.Entry())

	cx, cy := hitbox(player).Center()
	dx, dy := cx-data.Origin.X, cy-data.Origin.Y
	dir := LaunchDirection(dx, dy)
	speed := LaunchSpeed(math.Hypot(dx, dy), data.Radius)

	physics.Velocity.Y = 0
	physics.Velocity.X += dir.X * speed
	physics.Velocity.Y += dir.Y * speed

	env.Log.Debug("impact launch",
		zap.Float64("dirX", dir.X),
		zap.Float64("dirY", dir.Y),
		zap.Float64("speed", speed),
	)
	w.Destroy(impact)
}
