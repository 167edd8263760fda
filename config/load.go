package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// File is the on-disk shape of a configuration overlay. Keys that are
// absent keep their current values.
type File struct {
	Game        Config            `toml:"game"`
	Player      PlayerConfig      `toml:"player"`
	Bullet      BulletConfig      `toml:"bullet"`
	Impact      ImpactConfig      `toml:"impact"`
	Spring      SpringConfig      `toml:"spring"`
	Bonus       BonusConfig       `toml:"bonus"`
	Spike       SpikeConfig       `toml:"spike"`
	MovingBlock MovingBlockConfig `toml:"moving_block"`
	Death       DeathPolicy       `toml:"death"`
}

// Current snapshots the active configuration.
func Current() *File {
	return &File{
		Game:        *C,
		Player:      Player,
		Bullet:      Bullet,
		Impact:      Impact,
		Spring:      Spring,
		Bonus:       Bonus,
		Spike:       Spike,
		MovingBlock: MovingBlock,
		Death:       Death,
	}
}

// Load reads a TOML overlay on top of the active configuration.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML overlay on top of the active configuration.
func Parse(data []byte) (*File, error) {
	f := Current()
	if err := toml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return f, nil
}

// Apply makes f the active configuration.
func Apply(f *File) {
	game := f.Game
	C = &game
	Player = f.Player
	Bullet = f.Bullet
	Impact = f.Impact
	Spring = f.Spring
	Bonus = f.Bonus
	Spike = f.Spike
	MovingBlock = f.MovingBlock
	Death = f.Death
}
