package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the global configuration sections as they appear in a
// YAML override file.
type fileConfig struct {
	Window      Config            `yaml:"window"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Trap        TrapConfig        `yaml:"trap"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Door        DoorConfig        `yaml:"door"`
	Hitbox      HitboxConfig      `yaml:"hitbox"`
	Collision   CollisionConfig   `yaml:"collision"`
	Animation   AnimationConfig   `yaml:"animation"`
	Transition  TransitionConfig  `yaml:"transition"`
	Message     MessageConfig     `yaml:"message"`
	Debug       DebugConfig       `yaml:"debug"`
}

// typeOverrides holds the per-type entries undecoded, so each one can be
// decoded over the entry it overrides.
type typeOverrides struct {
	Enemy struct {
		Types map[string]yaml.Node `yaml:"types"`
	} `yaml:"enemy"`
	Trap struct {
		Types map[string]yaml.Node `yaml:"types"`
	} `yaml:"trap"`
}

// LoadFile overlays the YAML document at path onto the global configuration.
// Keys absent from the file keep their current values, including inside the
// per-type maps (enemy.types, trap.types).
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Load overlays a YAML document onto the global configuration. Nothing
// changes unless the whole document decodes and validates.
func Load(data []byte) error {
	doc := fileConfig{
		Window:      *C,
		Player:      Player,
		Enemy:       Enemy,
		Trap:        Trap,
		Collectible: Collectible,
		Door:        Door,
		Hitbox:      Hitbox,
		Collision:   Collision,
		Animation:   Animation,
		Transition:  Transition,
		Message:     Message,
		Debug:       Debug,
	}
	// The type maps are merged separately; decoding into them would share
	// the globals' maps and rebuild each entry from zero.
	doc.Enemy.Types = nil
	doc.Trap.Types = nil
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	var over typeOverrides
	if err := yaml.Unmarshal(data, &over); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	enemies, err := mergeTypes(Enemy.Types, over.Enemy.Types)
	if err != nil {
		return fmt.Errorf("enemy.types.%w", err)
	}
	traps, err := mergeTypes(Trap.Types, over.Trap.Types)
	if err != nil {
		return fmt.Errorf("trap.types.%w", err)
	}
	doc.Enemy.Types = enemies
	doc.Trap.Types = traps

	if err := doc.validate(); err != nil {
		return err
	}

	*C = doc.Window
	Player = doc.Player
	Enemy = doc.Enemy
	Trap = doc.Trap
	Collectible = doc.Collectible
	Door = doc.Door
	Hitbox = doc.Hitbox
	Collision = doc.Collision
	Animation = doc.Animation
	Transition = doc.Transition
	Message = doc.Message
	Debug = doc.Debug
	return nil
}

// mergeTypes returns a copy of base with every override decoded over the
// entry of the same name. New names start from the zero value.
func mergeTypes[T any](base map[string]T, overrides map[string]yaml.Node) (map[string]T, error) {
	out := make(map[string]T, len(base)+len(overrides))
	for name, v := range base {
		out[name] = v
	}
	for name, node := range overrides {
		v := out[name]
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// validate rejects animation timing the frame clocks cannot run.
func (c *fileConfig) validate() error {
	if err := checkTiming("player.walk", c.Player.WalkFrames, c.Player.WalkFrameDuration); err != nil {
		return err
	}
	if err := checkTiming("collectible", c.Collectible.Frames, c.Collectible.FrameDuration); err != nil {
		return err
	}
	for _, name := range sortedKeys(c.Enemy.Types) {
		t := c.Enemy.Types[name]
		if err := checkTiming("enemy.types."+name, t.Frames, t.FrameDuration); err != nil {
			return err
		}
		if err := checkTiming("enemy.types."+name+".death", t.DeathFrames, t.DeathFrameDuration); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(c.Trap.Types) {
		t := c.Trap.Types[name]
		if err := checkTiming("trap.types."+name, t.Frames, t.FrameDuration); err != nil {
			return err
		}
	}
	return nil
}

func checkTiming(section string, frames int, duration float64) error {
	if frames < 1 {
		return fmt.Errorf("%s: frames %d, want >= 1", section, frames)
	}
	if duration <= 0 {
		return fmt.Errorf("%s: frame duration %g, want > 0", section, duration)
	}
	return nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
