package system

import (
	"fmt"
	"path/filepath"

	"github.com/milk9111/spookymaze/obj"
	"github.com/milk9111/spookymaze/prefabs"
	"go.uber.org/zap"
)

// Outcome is how a tick left the current level.
type Outcome int

const (
	Playing Outcome = iota
	Cleared
	Caught
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Cleared:
		return "cleared"
	case Caught:
		return "caught"
	case TimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Session runs one game: a run of levels until the player is out of lives.
type Session struct {
	World *World
	Rules *Rules
	Specs prefabs.Specs

	Level    int
	TimeLeft int
	GameOver bool
	// Events holds what happened during the last tick.
	Events []obj.Event

	levelMS int64
	log     *zap.Logger
}

func NewSession(w *World, rules *Rules, specs prefabs.Specs, log *zap.Logger) *Session {
	if rules == nil {
		rules = DefaultRules()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{World: w, Rules: rules, Specs: specs, log: log}
}

// State is the simulation state of the running level.
func (s *Session) State() *obj.State {
	return s.World.State
}

// Start resets score and lives and begins the first level.
func (s *Session) Start() error {
	if s == nil || s.World == nil {
		return errNilWorld
	}
	st := s.State()
	st.Rules = s.Rules
	st.Tuning = s.Specs.Zombie.Tuning()
	st.Score = 0
	st.ScoreScale = s.Rules.LifeStep()
	st.Player.Lives = s.Specs.Player.Lives
	st.Player.Dead = false
	s.Level = 1
	s.GameOver = false
	s.log.Info("game started", zap.Int("lives", st.Player.Lives))
	return s.Begin(true)
}

// Begin sets up a level: a new one after a clear, otherwise the current
// one cleaned of the previous attempt's entities.
func (s *Session) Begin(newLevel bool) error {
	var err error
	if newLevel {
		err = s.World.Generate()
	} else {
		err = s.World.Reset()
	}
	if err != nil {
		return fmt.Errorf("begin level %d: %w", s.Level, err)
	}
	if err := s.World.Populate(s.Specs.Session.Goodies, s.Specs.Zombie.Count); err != nil {
		return fmt.Errorf("begin level %d: %w", s.Level, err)
	}

	st := s.State()
	st.Events.Drain()
	s.Events = nil
	s.levelMS = 0
	s.TimeLeft = s.Specs.Session.LevelTime
	s.log.Info("level begin",
		zap.Int("level", s.Level),
		zap.String("map", st.Level.Name),
		zap.Int("goodies", len(st.Goodies)),
		zap.Int("zombies", len(st.Zombies)),
	)
	return nil
}

// Tick advances the level by deltaMS. The player moves first and a clear
// ends the tick before the zombies move.
func (s *Session) Tick(deltaMS uint32) Outcome {
	if s == nil || s.GameOver {
		return Playing
	}
	st := s.State()
	st.DeltaMS = deltaMS

	if st.Player.Moving() {
		obj.MovePlayer(st)
	}
	if st.LevelCleared {
		s.Events = st.Events.Drain()
		return Cleared
	}

	obj.MoveZombies(st)
	s.Events = st.Events.Drain()

	s.levelMS += int64(deltaMS)
	s.TimeLeft = max(s.Specs.Session.LevelTime-int(s.levelMS/1000), 0)

	if st.Player.Dead {
		return Caught
	}
	if s.TimeLeft == 0 && s.Specs.Session.LethalTimeout {
		st.Player.Dead = true
		return TimedOut
	}
	return Playing
}

// End applies the score and lives for o and begins the next level unless
// the game is over.
func (s *Session) End(o Outcome) error {
	if s == nil || s.World == nil {
		return errNilWorld
	}
	st := s.State()
	switch o {
	case Caught, TimedOut:
		st.Player.Lives--
		st.Player.Dead = false
		st.Score = max(st.Score-s.Rules.DeathPenalty(s.Level), 0)
		s.log.Info("player died",
			zap.Stringer("cause", o),
			zap.Int("lives", st.Player.Lives),
			zap.Int("score", st.Score),
		)
		if st.Player.Lives <= 0 {
			s.GameOver = true
			s.log.Info("game over", zap.Int("level", s.Level), zap.Int("score", st.Score))
			return nil
		}
		return s.Begin(false)
	case Cleared:
		bonus := s.Rules.TimeBonus(s.TimeLeft)
		st.AddScore(bonus)
		s.Level++
		s.log.Info("level cleared",
			zap.Int("bonus", bonus),
			zap.Int("score", st.Score),
			zap.Int("next", s.Level),
		)
		return s.Begin(true)
	}
	return nil
}

// Reload applies an edited prefab file. Speeds and ranges take effect on
// the next tick; counts take effect on the next level.
func (s *Session) Reload(c prefabs.Change) error {
	st := s.State()
	switch c.Kind {
	case prefabs.ChangeSpec:
		switch c.Name {
		case prefabs.PlayerFile:
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				return err
			}
			s.Specs.Player = spec
		case prefabs.ZombieFile:
			spec, err := prefabs.LoadZombieSpec()
			if err != nil {
				return err
			}
			s.Specs.Zombie = spec
			st.Tuning = spec.Tuning()
		case prefabs.SessionFile:
			spec, err := prefabs.LoadSessionSpec()
			if err != nil {
				return err
			}
			s.Specs.Session = spec
		default:
			return nil
		}
	case prefabs.ChangeScript:
		if c.Name != filepath.Base(s.Specs.Session.Rules) {
			return nil
		}
		rules, err := LoadRules(s.Specs.Session.Rules, s.log)
		if err != nil {
			return err
		}
		s.Rules = rules
		st.Rules = rules
	default:
		return nil
	}
	s.log.Info("prefab reloaded", zap.String("file", c.Name))
	return nil
}
