package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/milk9111/spookymaze/levels"
	"github.com/milk9111/spookymaze/obj"
	"go.uber.org/zap"
)

var errNilWorld = errors.New("world is nil")

// World owns level loading and entity placement for one simulation state.
type World struct {
	State *obj.State

	// Dir is the data directory searched before the embedded levels.
	Dir string
	// Fixed, when set, names the only level ever loaded.
	Fixed string

	rng *rand.Rand
	log *zap.Logger
}

// NewWorld creates a world with an empty state. Call Generate before the
// first tick.
func NewWorld(dir string, rng *rand.Rand, log *zap.Logger) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		State: obj.NewState(nil, rng, log),
		Dir:   dir,
		rng:   rng,
		log:   log,
	}
}

// Generate loads a fresh level, random unless Fixed is set.
func (w *World) Generate() error {
	if w == nil {
		return errNilWorld
	}
	var (
		l   *obj.Level
		err error
	)
	if w.Fixed != "" {
		l, err = levels.Load(w.Dir, w.Fixed)
	} else {
		l, err = levels.Generate(w.rng, w.Dir)
	}
	if err != nil {
		return err
	}
	w.State.Level = l
	w.State.LevelCleared = false
	w.log.Info("level loaded", zap.String("name", l.Name))
	return nil
}

// Reset clears placed entities off the current level so it can be
// repopulated after a death.
func (w *World) Reset() error {
	if w == nil {
		return errNilWorld
	}
	if w.State.Level == nil {
		return fmt.Errorf("reset: no level loaded")
	}
	w.State.Level.Reset()
	w.State.LevelCleared = false
	return nil
}

// Populate places goodies, the player and zombies, then centres the camera
// on the player.
func (w *World) Populate(goodies, zombies int) error {
	if w == nil {
		return errNilWorld
	}
	if w.State.Level == nil {
		return fmt.Errorf("populate: no level loaded")
	}
	if err := w.PlaceGoodies(goodies); err != nil {
		return err
	}
	if err := w.PlacePlayer(); err != nil {
		return err
	}
	if err := w.PlaceZombies(zombies); err != nil {
		return err
	}
	w.State.Level.BuildWalls()
	w.State.Camera.Follow(w.State.Player.Rect)
	return nil
}
