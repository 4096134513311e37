package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/spookymaze/common"
	"github.com/milk9111/spookymaze/obj"
)

// maxPlaceAttempts bounds the random floor search for one entity.
const maxPlaceAttempts = common.LevelW * common.LevelH * 4

var (
	ErrNoFloor    = errors.New("no free floor cell")
	ErrNoEntrance = errors.New("no entrance door")
)

// randomFloor picks a random floor cell by rejection sampling.
func (w *World) randomFloor() (common.Cell, error) {
	l := w.State.Level
	for range maxPlaceAttempts {
		x, y := w.rng.Intn(common.LevelW), w.rng.Intn(common.LevelH)
		if l.IsFloor(x, y) {
			return common.Cell{X: x, Y: y}, nil
		}
	}
	return common.Cell{}, ErrNoFloor
}

// PlaceGoodies turns n random floor cells into goodies.
func (w *World) PlaceGoodies(n int) error {
	s := w.State
	s.Goodies = make(obj.Goodies, 0, n)
	for i := 0; i < n; i++ {
		c, err := w.randomFloor()
		if err != nil {
			return fmt.Errorf("place goodie %d: %w", i, err)
		}
		s.Level.SetTile(c.X, c.Y, common.TileGoodie)
		s.Goodies = append(s.Goodies, obj.NewGoodie(c))
	}
	return nil
}

// PlacePlayer puts the player in the entrance door and marks the door
// unwalkable.
func (w *World) PlacePlayer() error {
	s := w.State
	c, ok := s.Level.Entrance()
	if !ok {
		return ErrNoEntrance
	}
	s.Level.SetTile(c.X, c.Y, common.TileUnwalkable)
	s.Player.Place(c)
	return nil
}

// PlaceZombies replaces the zombie set with n zombies on random floor.
func (w *World) PlaceZombies(n int) error {
	s := w.State
	s.Zombies = make([]*obj.Zombie, 0, n)
	for i := 0; i < n; i++ {
		c, err := w.randomFloor()
		if err != nil {
			return fmt.Errorf("place zombie %d: %w", i, err)
		}
		s.Zombies = append(s.Zombies, obj.NewZombie(c))
	}
	return nil
}
