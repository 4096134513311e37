package obj

import (
	"math/rand"

	"github.com/milk9111/spookymaze/common"
	"github.com/milk9111/spookymaze/component"
	"go.uber.org/zap"
)

// Tuning holds the per-game movement knobs.
type Tuning struct {
	ZombieSpeed    int
	ChaseRadius    int
	WanderRange    int
	WanderAttempts int
}

func DefaultTuning() Tuning {
	return Tuning{
		ZombieSpeed:    common.ZombieSpeed,
		ChaseRadius:    common.ChaseRadius,
		WanderRange:    common.WanderRange,
		WanderAttempts: common.WanderAttempts,
	}
}

// ScoreRules supplies the score values used during a tick.
type ScoreRules interface {
	GoodiePoints() int
	LifeStep() int
}

// DefaultRules is the built-in rule set.
type DefaultRules struct{}

func (DefaultRules) GoodiePoints() int { return 100 }
func (DefaultRules) LifeStep() int     { return 10000 }

// State is everything one simulation tick reads and writes. Callers set
// DeltaMS before each tick.
type State struct {
	Level   *Level
	Player  *Player
	Zombies []*Zombie
	Goodies Goodies
	Camera  *Camera

	Rules  ScoreRules
	Tuning Tuning
	Rand   *rand.Rand
	Log    *zap.Logger
	Events EventQueue

	DeltaMS      uint32
	Score        int
	ScoreScale   int
	LevelCleared bool

	planner component.Planner
}

// NewState returns a state with defaults for everything but the level.
func NewState(level *Level, rng *rand.Rand, log *zap.Logger) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if log == nil {
		log = zap.NewNop()
	}
	rules := DefaultRules{}
	return &State{
		Level:      level,
		Player:     NewPlayer(0, 0),
		Camera:     NewCamera(common.ScreenW, common.ScreenH),
		Rules:      rules,
		Tuning:     DefaultTuning(),
		Rand:       rng,
		Log:        log,
		ScoreScale: rules.LifeStep(),
	}
}

// AddScore adds points and grants a life each time the score crosses the
// current scale. The scale then grows by one life step.
func (s *State) AddScore(points int) {
	if s == nil {
		return
	}
	s.Score += points
	if s.ScoreScale > 0 && s.Score/s.ScoreScale == 1 {
		s.Player.Lives++
		s.ScoreScale += s.Rules.LifeStep()
		s.Events.Push(Event{Kind: EventBonusLife})
		s.Log.Info("bonus life", zap.Int("score", s.Score), zap.Int("lives", s.Player.Lives))
	}
}

// FindPath plans z's path toward its destination with the shared planner.
func (s *State) FindPath(z *Zombie) int {
	return s.planner.FindPath(s.Level, z.Rect, z.Dest, &z.Path)
}
