package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/spookymaze/common"
	"github.com/milk9111/spookymaze/obj"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile  = "player.yaml"
	ZombieFile  = "zombie.yaml"
	SessionFile = "session.yaml"
)

var ErrBadSpec = errors.New("prefabs: bad spec")

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

type PlayerSpec struct {
	Name  string `yaml:"name"`
	Speed int    `yaml:"speed"`
	Lives int    `yaml:"lives"`
}

func (s PlayerSpec) validate() error {
	if s.Speed <= 0 || s.Lives <= 0 {
		return fmt.Errorf("%w: %s: speed and lives must be positive", ErrBadSpec, PlayerFile)
	}
	return nil
}

type ZombieSpec struct {
	Name           string `yaml:"name"`
	Speed          int    `yaml:"speed"`
	Count          int    `yaml:"count"`
	ChaseRadius    int    `yaml:"chase_radius"`
	WanderRange    int    `yaml:"wander_range"`
	WanderAttempts int    `yaml:"wander_attempts"`
}

func (s ZombieSpec) validate() error {
	switch {
	case s.Speed <= 0:
		return fmt.Errorf("%w: %s: speed must be positive", ErrBadSpec, ZombieFile)
	case s.Count < 0:
		return fmt.Errorf("%w: %s: negative count", ErrBadSpec, ZombieFile)
	case s.ChaseRadius < 0 || s.WanderRange < 0 || s.WanderAttempts < 0:
		return fmt.Errorf("%w: %s: negative range", ErrBadSpec, ZombieFile)
	}
	return nil
}

// Tuning converts the spec into the per-tick knobs.
func (s ZombieSpec) Tuning() obj.Tuning {
	return obj.Tuning{
		ZombieSpeed:    s.Speed,
		ChaseRadius:    s.ChaseRadius,
		WanderRange:    s.WanderRange,
		WanderAttempts: s.WanderAttempts,
	}
}

type SessionSpec struct {
	Name          string `yaml:"name"`
	Goodies       int    `yaml:"goodies"`
	LevelTime     int    `yaml:"level_time"`
	LethalTimeout bool   `yaml:"lethal_timeout"`
	Rules         string `yaml:"rules"`
}

func (s SessionSpec) validate() error {
	if s.Goodies <= 0 || s.LevelTime <= 0 {
		return fmt.Errorf("%w: %s: goodies and level_time must be positive", ErrBadSpec, SessionFile)
	}
	return nil
}

// Specs is the full tuning set for a game.
type Specs struct {
	Player  PlayerSpec
	Zombie  ZombieSpec
	Session SessionSpec
}

// DefaultSpecs matches the shipped yaml files.
func DefaultSpecs() Specs {
	return Specs{
		Player: PlayerSpec{Name: "player", Speed: common.PlayerSpeed, Lives: obj.DefaultLives},
		Zombie: ZombieSpec{
			Name:           "zombie",
			Speed:          common.ZombieSpeed,
			Count:          6,
			ChaseRadius:    common.ChaseRadius,
			WanderRange:    common.WanderRange,
			WanderAttempts: common.WanderAttempts,
		},
		Session: SessionSpec{Name: "session", Goodies: 12, LevelTime: 75, Rules: "rules.tengo"},
	}
}

func LoadPlayerSpec() (PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return spec, err
	}
	return spec, spec.validate()
}

func LoadZombieSpec() (ZombieSpec, error) {
	spec, err := LoadSpec[ZombieSpec](ZombieFile)
	if err != nil {
		return spec, err
	}
	return spec, spec.validate()
}

func LoadSessionSpec() (SessionSpec, error) {
	spec, err := LoadSpec[SessionSpec](SessionFile)
	if err != nil {
		return spec, err
	}
	return spec, spec.validate()
}

// LoadAll reads every spec file.
func LoadAll() (Specs, error) {
	var specs Specs
	var err error
	if specs.Player, err = LoadPlayerSpec(); err != nil {
		return specs, err
	}
	if specs.Zombie, err = LoadZombieSpec(); err != nil {
		return specs, err
	}
	if specs.Session, err = LoadSessionSpec(); err != nil {
		return specs, err
	}
	return specs, nil
}
