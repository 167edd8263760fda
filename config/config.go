package config

import "image/color"

// PlayerConfig contains all player-related configuration values. Speeds are
// pixels per second, accelerations pixels per second squared, damping factors
// are applied once per frame.
type PlayerConfig struct {
	// Dimensions
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Movement
	Acceleration float64 `toml:"acceleration"`
	MaxWalkSpeed float64 `toml:"max_walk_speed"`
	MaxVelocityX float64 `toml:"max_velocity_x"`
	MaxVelocityY float64 `toml:"max_velocity_y"`
	Friction     float64 `toml:"friction"`     // grounded, not accelerating
	AirDrag      float64 `toml:"air_drag"`     // airborne, not accelerating
	MinVelocity  float64 `toml:"min_velocity"` // slower than this snaps to zero

	// Physics
	Gravity        float64 `toml:"gravity"`
	WallSlideSpeed float64 `toml:"wall_slide_speed"`

	// Jumping
	JumpVelocity float64 `toml:"jump_velocity"`
	WallJumpX    float64 `toml:"wall_jump_x"`
	WallJumpY    float64 `toml:"wall_jump_y"`
	PreJumpLimit float64 `toml:"pre_jump_limit"` // seconds a jump press is remembered before landing
}

// BulletConfig contains the hitscan shot configuration
type BulletConfig struct {
	Size        float64 `toml:"size"`
	Speed       float64 `toml:"speed"`
	MaxDistance float64 `toml:"max_distance"`
}

// ImpactConfig contains the blast spawned where a bullet hits
type ImpactConfig struct {
	Lifetime          float64 `toml:"lifetime"`
	Radius            float64 `toml:"radius"`
	MinPlayerDistance float64 `toml:"min_player_distance"`
	MaxImpactSpeed    float64 `toml:"max_impact_speed"` // launch speed at MinPlayerDistance or closer
	MinImpactSpeed    float64 `toml:"min_impact_speed"` // launch speed at Radius
}

type SpringConfig struct {
	Height           float64 `toml:"height"`
	CompressedHeight float64 `toml:"compressed_height"`
	LaunchForce      float64 `toml:"launch_force"`
}

type BonusConfig struct {
	Size float64 `toml:"size"`
}

type SpikeConfig struct {
	Height float64 `toml:"height"`
}

type MovingBlockConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Travel   float64 `toml:"travel"`   // pixels to the right of the spawn tile
	Duration float64 `toml:"duration"` // seconds per leg
}

// Config holds general game configuration
type Config struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	TPS          int     `toml:"tps"`
	MaxFrameTime float64 `toml:"max_frame_time"` // dt clamp, keeps one frame's travel under a tile
	Debug        bool    `toml:"debug"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bullet BulletConfig
var Impact ImpactConfig
var Spring SpringConfig
var Bonus BonusConfig
var Spike SpikeConfig
var MovingBlock MovingBlockConfig
var Death DeathPolicy

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gray      = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	Fuchsia   = color.RGBA{R: 255, G: 0, B: 255, A: 80}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Sky       = color.RGBA{R: 100, G: 149, B: 237, A: 255}
)

func init() {
	C = &Config{
		Width:        1400,
		Height:       1000,
		TPS:          60,
		MaxFrameTime: 1.0 / 30,
	}

	Player = PlayerConfig{
		Width:  32,
		Height: 32,

		Acceleration: 1600,
		MaxWalkSpeed: 300,
		MaxVelocityX: 2000,
		MaxVelocityY: 1200,
		Friction:     0.8,
		AirDrag:      0.98,
		MinVelocity:  0.5,

		Gravity:        1200,
		WallSlideSpeed: 120,

		JumpVelocity: 500,
		WallJumpX:    320,
		WallJumpY:    480,
		PreJumpLimit: 0.12,
	}

	Bullet = BulletConfig{
		Size:        4,
		Speed:       600,
		MaxDistance: 400,
	}

	Impact = ImpactConfig{
		Lifetime:          0.1,
		Radius:            110,
		MinPlayerDistance: 20,
		MaxImpactSpeed:    1000,
		MinImpactSpeed:    800 - 110,
	}

	Spring = SpringConfig{
		Height:           48,
		CompressedHeight: 32,
		LaunchForce:      1100,
	}

	Bonus = BonusConfig{Size: 24}
	Spike = SpikeConfig{Height: 4}

	MovingBlock = MovingBlockConfig{
		Width:    64,
		Height:   16,
		Travel:   96,
		Duration: 1.5,
	}

	Death = DeathPolicy{
		Hazard:    HazardNotRising,
		FallLimit: 0,
	}
}
