package systems

import (
	"math"

	"github.com/automoto/roomrunner/collision"
	"github.com/automoto/roomrunner/components"
	cfg "github.com/automoto/roomrunner/config"
	"github.com/automoto/roomrunner/input"
	"github.com/automoto/roomrunner/shared/gamemath"
	"github.com/automoto/roomrunner/world"
	"github.com/solarlune/resolv"
	"go.uber.org/zap"
)

// UpdatePlayer runs one frame of the player controller.
func (env *Env) UpdatePlayer(w *world.World, e *world.Entity, dt float64) {
	entry := e.Entry()
	obj := components.Object.Get(entry).Object
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	in := components.Control.Get(entry).State
	if in == nil {
		in = input.None
	}

	env.followRooms(obj)
	carryX, carryY := carriedBy(physics)

	dir := input.Direction(in)
	player.Shooting = in.Down(input.ActionShoot)
	updateJumpBuffer(player, in, dt)
	handleJump(player, physics)

	env.moveY(obj, player, physics, dir, dt, carryY)
	env.moveX(obj, physics, dir, dt, carryX)

	if in.Pressed(input.ActionShoot) && player.Ammo {
		env.shoot(w, obj, player, in, dt)
	}

	env.Dispatch(w, e)

	if cfg.Death.KillsAtY(obj.Y) {
		env.Kill(e)
	}
}

// followRooms streams in the room the player's centre has moved into.
func (env *Env) followRooms(obj *resolv.Object) {
	cx, cy := gamemath.RectOf(obj).Center()
	if i, ok := env.Level.RoomContaining(cx, cy); ok && i != env.Level.CurrentRoom() {
		env.Level.LoadRoom(i)
	}
}

// carriedBy returns how far the dynamic solid under the player moved last
// frame. Static ground carries nothing.
func carriedBy(physics *components.PhysicsData) (float64, float64) {
	if physics.Ground == nil {
		return 0, 0
	}
	ground, ok := physics.Ground.Data.(*world.Entity)
	if !ok || ground.Destroyed() || !ground.Entry().HasComponent(components.Solid) {
		return 0, 0
	}
	d := components.Solid.Get(ground.Entry()).Delta
	return d.X, d.Y
}

func updateJumpBuffer(player *components.PlayerData, in input.State, dt float64) {
	switch {
	case in.Pressed(input.ActionJump):
		player.JumpBuffer = cfg.Player.PreJumpLimit
	case !in.Down(input.ActionJump):
		player.JumpBuffer = 0
	default:
		player.JumpBuffer = math.Max(0, player.JumpBuffer-dt)
	}
}

func handleJump(player *components.PlayerData, physics *components.PhysicsData) {
	if player.JumpBuffer <= 0 {
		return
	}
	switch {
	case physics.Grounded:
		physics.Velocity.Y = -cfg.Player.JumpVelocity
	case physics.TouchingWall:
		physics.Velocity.X = cfg.Player.WallJumpX * float64(physics.WallNormal)
		physics.Velocity.Y = -cfg.Player.WallJumpY
		physics.TouchingWall = false
	default:
		return
	}
	player.Jumping = true
	player.JumpBuffer = 0
}

func playerParams() collision.Params {
	return collision.Params{
		Gravity:   cfg.Player.Gravity,
		MaxFall:   cfg.Player.MaxVelocityY,
		WallSlide: cfg.Player.WallSlideSpeed,
	}
}

func (env *Env) moveY(obj *resolv.Object, player *components.PlayerData, physics *components.PhysicsData, dir int, dt, carryY float64) {
	wallSliding := physics.TouchingWall && !physics.Grounded && dir != 0 && dir == -physics.WallNormal
	collision.ApplyGravity(&physics.Velocity, playerParams(), dt, wallSliding)

	dy := physics.Velocity.Y*dt + carryY
	prevBottom := obj.Y + obj.H
	sweep := gamemath.RectOf(obj).Sweep(0, dy)
	body := collision.Body{Obj: obj, Vel: &physics.Velocity}
	c := collision.ResolveY(body, dy, env.Level.Solids(sweep), env.Level.SemiSolidsNear(sweep), prevBottom)

	physics.Grounded = c.Landed
	physics.Ground = c.Ground
	if c.Landed {
		player.Jumping = false
		if !player.Shooting {
			player.Ammo = true
		}
	}
}

func (env *Env) moveX(obj *resolv.Object, physics *components.PhysicsData, dir int, dt, carryX float64) {
	p := cfg.Player
	v := &physics.Velocity
	d := float64(dir)

	switch {
	case dir != 0 && d*v.X < p.MaxWalkSpeed:
		v.X += d * p.Acceleration * dt
		if d*v.X > p.MaxWalkSpeed {
			v.X = d * p.MaxWalkSpeed
		}
	case dir == 0:
		factor := p.AirDrag
		if physics.Grounded {
			factor = p.Friction
		}
		v.X = gamemath.Damp(v.X, factor, p.MinVelocity)
	}

	// No running faster than walking on the ground.
	if physics.Grounded && math.Abs(v.X) > p.MaxWalkSpeed {
		v.X = float64(gamemath.Sign(v.X)) * p.MaxWalkSpeed
	}
	v.X = gamemath.ClampSpeed(v.X, p.MaxVelocityX)

	dx := v.X*dt + carryX
	sweep := gamemath.RectOf(obj).Sweep(dx, 0)
	collision.ResolveX(collision.Body{Obj: obj, Vel: v}, dx, env.Level.Solids(sweep))

	r := gamemath.RectOf(obj)
	physics.TouchingWall, physics.WallNormal = collision.ProbeWalls(r, env.Level.Solids(r), dir, physics.WallNormal)
}

func (env *Env) shoot(w *world.World, obj *resolv.Object, player *components.PlayerData, in input.State, dt float64) {
	cx, cy := gamemath.RectOf(obj).Center()
	tx, ty := in.Cursor()
	dirX, dirY := gamemath.Direction(cx, cy, tx, ty)
	if dirX == 0 && dirY == 0 {
		return
	}
	env.FireBullet(w, cx, cy, dirX, dirY, dt)
	player.Ammo = false
}

// Kill sends the player back to its spawn point with everything but the
// death count reset.
func (env *Env) Kill(e *world.Entity) {
	entry := e.Entry()
	obj := components.Object.Get(entry).Object
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)

	obj.X, obj.Y = player.Spawn.X, player.Spawn.Y
	obj.Update()
	*physics = components.PhysicsData{}

	player.Jumping = false
	player.JumpBuffer = 0
	player.Ammo = true
	player.Deaths++

	env.Log.Info("player died",
		zap.Int("deaths", player.Deaths),
		zap.Float64("x", obj.X),
		zap.Float64("y", obj.Y),
	)
}
