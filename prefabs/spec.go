package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type FrictionMode string

const (
	FrictionPerTick    FrictionMode = "per_tick"
	FrictionTimeScaled FrictionMode = "time_scaled"
)

type PlayerSpec struct {
	Name                string       `yaml:"name"`
	BaseSpeed           float64      `yaml:"base_speed"`
	SprintSpeed         float64      `yaml:"sprint_speed"`
	JumpForce           float64      `yaml:"jump_force"`
	WallJumpForce       float64      `yaml:"wall_jump_force"`
	Friction            float64      `yaml:"friction"`
	FrictionMode        FrictionMode `yaml:"friction_mode"`
	DoubleJumpFactor    float64      `yaml:"double_jump_factor"`
	WallPush            float64      `yaml:"wall_push"`
	WallJumpCooldown    float64      `yaml:"wall_jump_cooldown"`
	GroundProbeDistance float64      `yaml:"ground_probe"`
	WallProbeDistance   float64      `yaml:"wall_probe"`
	Gravity             float64      `yaml:"gravity"`
	Radius              float64      `yaml:"radius"`
	HalfHeight          float64      `yaml:"half_height"`
}

func (s *PlayerSpec) Validate() error {
	switch {
	case s.BaseSpeed <= 0 || s.SprintSpeed <= 0:
		return fmt.Errorf("%w: player speeds must be positive", ErrInvalidSpec)
	case s.JumpForce <= 0 || s.WallJumpForce <= 0:
		return fmt.Errorf("%w: player jump forces must be positive", ErrInvalidSpec)
	case s.Friction < 0 || s.Friction > 1:
		return fmt.Errorf("%w: player friction %v outside [0, 1]", ErrInvalidSpec, s.Friction)
	case s.FrictionMode != "" && s.FrictionMode != FrictionPerTick && s.FrictionMode != FrictionTimeScaled:
		return fmt.Errorf("%w: unknown friction_mode %q", ErrInvalidSpec, s.FrictionMode)
	case s.GroundProbeDistance <= 0 || s.WallProbeDistance <= 0:
		return fmt.Errorf("%w: player probe distances must be positive", ErrInvalidSpec)
	case s.HalfHeight <= 0 || s.Radius <= 0:
		return fmt.Errorf("%w: player capsule must have a size", ErrInvalidSpec)
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

type EnemySpec struct {
	Name          string       `yaml:"name"`
	Speed         float64      `yaml:"speed"`
	Damage        int          `yaml:"damage"`
	DeathDuration float64      `yaml:"death_duration"`
	EyeOffsets    [][3]float64 `yaml:"eye_offsets"`
}

func (s *EnemySpec) Validate() error {
	switch {
	case s.Speed < 0:
		return fmt.Errorf("%w: enemy speed must not be negative", ErrInvalidSpec)
	case s.Damage < 0:
		return fmt.Errorf("%w: enemy damage must not be negative", ErrInvalidSpec)
	case s.DeathDuration <= 0:
		return fmt.Errorf("%w: enemy death_duration must be positive", ErrInvalidSpec)
	}
	return nil
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: enemy.yaml: %w", err)
	}
	return &spec, nil
}

type PowerUpSpec struct {
	Score  int     `yaml:"score"`
	Radius float64 `yaml:"radius"`
}

type PickupSpec struct {
	CoinValue    int                    `yaml:"coin_value"`
	ScorePerCoin int                    `yaml:"score_per_coin"`
	CoinRadius   float64                `yaml:"coin_radius"`
	PowerUps     map[string]PowerUpSpec `yaml:"powerups"`
}

func (s *PickupSpec) Validate() error {
	if s.CoinValue <= 0 || s.CoinRadius <= 0 {
		return fmt.Errorf("%w: coins need a value and a radius", ErrInvalidSpec)
	}
	for kind, p := range s.PowerUps {
		if p.Radius <= 0 {
			return fmt.Errorf("%w: powerup %q needs a radius", ErrInvalidSpec, kind)
		}
	}
	return nil
}

func LoadPickupSpec() (*PickupSpec, error) {
	spec, err := LoadSpec[PickupSpec]("pickups.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: pickups.yaml: %w", err)
	}
	return &spec, nil
}

// Specs bundles every prefab the level builder needs.
type Specs struct {
	Player  *PlayerSpec
	Enemy   *EnemySpec
	Pickups *PickupSpec
}

func LoadAll() (*Specs, error) {
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemy, err := LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	pickups, err := LoadPickupSpec()
	if err != nil {
		return nil, err
	}
	return &Specs{Player: player, Enemy: enemy, Pickups: pickups}, nil
}
