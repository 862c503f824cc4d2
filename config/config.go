package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Combat
	MaxHP          int     `yaml:"max_hp"`
	AttackDamage   int     `yaml:"attack_damage"`
	AttackDuration float64 `yaml:"attack_duration"` // seconds the swing stays active
	AttackReach    float64 `yaml:"attack_reach"`    // pixels past the hitbox in the facing direction
	IFrameDuration float64 `yaml:"i_frame_duration"`

	// Movement
	Speed float64 `yaml:"speed"` // pixels per second

	// Dimensions. The hitbox is a feet box anchored to the bottom centre of the frame.
	FrameWidth   float64 `yaml:"frame_width"`
	FrameHeight  float64 `yaml:"frame_height"`
	HitboxWidth  float64 `yaml:"hitbox_width"`
	HitboxHeight float64 `yaml:"hitbox_height"`

	// Animation
	WalkFrames        int     `yaml:"walk_frames"`
	WalkFrameDuration float64 `yaml:"walk_frame_duration"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name          string  `yaml:"name"`
	Health        int     `yaml:"health"`
	PatrolSpeed   float64 `yaml:"patrol_speed"` // pixels per second
	ChaseSpeed    float64 `yaml:"chase_speed"`
	ContactDamage int     `yaml:"contact_damage"`
	Size          float64 `yaml:"size"`

	Frames             int     `yaml:"frames"`
	FrameDuration      float64 `yaml:"frame_duration"`
	DeathFrames        int     `yaml:"death_frames"`
	DeathFrameDuration float64 `yaml:"death_frame_duration"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"types"`

	// AI behavior constants
	AggroRange            float64 `yaml:"aggro_range"`
	HysteresisMultiplier  float64 `yaml:"hysteresis_multiplier"` // For chase range hysteresis
	DefaultPatrolDistance float64 `yaml:"default_patrol_distance"`
	IdleTime              float64 `yaml:"idle_time"` // seconds before an idle enemy starts patrolling
}

// TrapTypeConfig describes one trap variant. ActiveFrames lists the animation
// frames that deal damage; FrameScale optionally stretches individual frames.
type TrapTypeConfig struct {
	Damage        int       `yaml:"damage"`
	Frames        int       `yaml:"frames"`
	FrameDuration float64   `yaml:"frame_duration"`
	ActiveFrames  []int     `yaml:"active_frames"`
	FrameScale    []float64 `yaml:"frame_scale"`
}

// TrapConfig contains trap configuration keyed by trap type
type TrapConfig struct {
	Types map[string]TrapTypeConfig `yaml:"types"`
}

// CollectibleConfig contains defaults for coins, keys and potions
type CollectibleConfig struct {
	CoinValue     int     `yaml:"coin_value"`
	PotionHeal    int     `yaml:"potion_heal"`
	Frames        int     `yaml:"frames"`
	FrameDuration float64 `yaml:"frame_duration"`
}

// DoorConfig contains door gating configuration
type DoorConfig struct {
	// ConsumeKeys spends RequiredCount keys when a door opens. Off by default:
	// the required count is a standing check, so one key set opens many doors.
	ConsumeKeys    bool    `yaml:"consume_keys"`
	InteractMargin float64 `yaml:"interact_margin"` // pixels added around the door for the interact check
	PairDistance   float64 `yaml:"pair_distance"`   // doors closer than this with the same key open together
	DefaultKey     string  `yaml:"default_key"`
}

// HitboxConfig holds the inset (pixels per side) applied to each entity
// category's authored bounds to produce its gameplay hitbox.
type HitboxConfig struct {
	Door        float64 `yaml:"door"`
	Collectible float64 `yaml:"collectible"`
	Enemy       float64 `yaml:"enemy"`
	Trap        float64 `yaml:"trap"`
	Ladder      float64 `yaml:"ladder"`
}

// CollisionConfig controls how the collision grid is derived from level data
type CollisionConfig struct {
	SolidLayer string `yaml:"solid_layer"`
	// SolidIndices lists tile indices that are solid. Empty means any
	// non-zero index is solid.
	SolidIndices   []int  `yaml:"solid_indices"`
	OneWayProperty string `yaml:"one_way_property"`
}

// AnimationConfig contains shared animation timing
type AnimationConfig struct {
	DefaultFrameDuration float64 `yaml:"default_frame_duration"`
}

// TransitionConfig contains level transition configuration
type TransitionConfig struct {
	StartLevel          string   `yaml:"start_level"`
	DefaultDestination  string   `yaml:"default_destination"`
	VictoryDestinations []string `yaml:"victory_destinations"`
	FadeDuration        float64  `yaml:"fade_duration"` // seconds
}

// MessageConfig contains notification popup configuration
type MessageConfig struct {
	DisplayDuration float64    `yaml:"display_duration"` // seconds
	BoxColor        color.RGBA `yaml:"-"`
	TextColor       color.RGBA `yaml:"-"`
	TopMargin       float64    `yaml:"top_margin"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // Draw hitboxes and the collision grid
	Cheats  bool `yaml:"cheats"`  // Enable key/heal cheats
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
	Scale  int `yaml:"scale"` // window pixels per logical pixel
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Trap TrapConfig
var Collectible CollectibleConfig
var Door DoorConfig
var Hitbox HitboxConfig
var Collision CollisionConfig
var Animation AnimationConfig
var Transition TransitionConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Silver       = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Brown        = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  320,
		Height: 240,
		TPS:    60,
		Scale:  2,
	}

	Player = PlayerConfig{
		MaxHP:          100,
		AttackDamage:   30,
		AttackDuration: 0.3,
		AttackReach:    12,
		IFrameDuration: 1.0,

		Speed: 80,

		FrameWidth:   16,
		FrameHeight:  24,
		HitboxWidth:  10,
		HitboxHeight: 8,

		WalkFrames:        4,
		WalkFrameDuration: 0.15,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"skeleton1": skeleton1Type,
			"skeleton2": skeleton2Type,
			"vampire":   vampireType,
		},
		AggroRange:            80,
		HysteresisMultiplier:  1.5,
		DefaultPatrolDistance: 32,
		IdleTime:              0.5,
	}

	Trap = TrapConfig{
		Types: map[string]TrapTypeConfig{
			// Spikes rest retracted on frame 2 for ten beats and snap through
			// the others at double speed.
			"peaks": {
				Damage:        25,
				Frames:        4,
				FrameDuration: 0.15,
				ActiveFrames:  []int{0, 1, 3},
				FrameScale:    []float64{0.5, 0.5, 10, 0.5},
			},
			"arrow": {
				Damage:        25,
				Frames:        4,
				FrameDuration: 0.15,
				ActiveFrames:  []int{0, 1, 2, 3},
			},
			"flamethrower": {
				Damage:        25,
				Frames:        4,
				FrameDuration: 0.15,
				ActiveFrames:  []int{0, 1, 2, 3},
			},
		},
	}

	Collectible = CollectibleConfig{
		CoinValue:     10,
		PotionHeal:    25,
		Frames:        4,
		FrameDuration: 0.15,
	}

	Door = DoorConfig{
		ConsumeKeys:    false,
		InteractMargin: 8,
		PairDistance:   20,
		DefaultKey:     "silver",
	}

	Hitbox = HitboxConfig{
		Door:        0,
		Collectible: 2,
		Enemy:       4,
		Trap:        2,
		Ladder:      0,
	}

	Collision = CollisionConfig{
		SolidLayer:     "Collision",
		OneWayProperty: "one_way",
	}

	Animation = AnimationConfig{
		DefaultFrameDuration: 0.15,
	}

	Transition = TransitionConfig{
		StartLevel:          "level1",
		DefaultDestination:  "level2",
		VictoryDestinations: []string{"finish", "victory"},
		FadeDuration:        0.5,
	}

	Message = MessageConfig{
		DisplayDuration: 2.0,
		BoxColor:        BlackOverlay,
		TextColor:       White,
		TopMargin:       24,
	}

	Debug = DebugConfig{}
}

var skeleton1Type = EnemyTypeConfig{
	Name:               "skeleton1",
	Health:             50,
	PatrolSpeed:        20,
	ChaseSpeed:         40,
	ContactDamage:      15,
	Size:               24,
	Frames:             4,
	FrameDuration:      0.15,
	DeathFrames:        4,
	DeathFrameDuration: 0.15,
}

var skeleton2Type = EnemyTypeConfig{
	Name:               "skeleton2",
	Health:             75,
	PatrolSpeed:        15,
	ChaseSpeed:         30,
	ContactDamage:      20,
	Size:               24,
	Frames:             4,
	FrameDuration:      0.15,
	DeathFrames:        4,
	DeathFrameDuration: 0.15,
}

var vampireType = EnemyTypeConfig{
	Name:               "vampire",
	Health:             100,
	PatrolSpeed:        25,
	ChaseSpeed:         50,
	ContactDamage:      30,
	Size:               24,
	Frames:             4,
	FrameDuration:      0.15,
	DeathFrames:        6,
	DeathFrameDuration: 0.1,
}

// IsVictoryDestination reports whether a ladder destination ends the game
// instead of loading another level.
func IsVictoryDestination(dest string) bool {
	for _, v := range Transition.VictoryDestinations {
		if v == dest {
			return true
		}
	}
	return false
}
