package obj

import (
	"github.com/milk9111/spookymaze/common"
	"github.com/milk9111/spookymaze/component"
)

// Zombie is a pursuer. Path holds NumNodes waypoints with the terminal cell
// at index 0 and the current head at NumNodes-1. Dest is the zero cell
// when no destination is set.
type Zombie struct {
	Rect     common.Rect
	Dest     common.Cell
	Path     [common.MaxPathNodes]common.Cell
	NumNodes int
}

// NewZombie places a zombie at the top-left of cell with no destination.
func NewZombie(cell common.Cell) *Zombie {
	x, y := cell.Origin()
	return &Zombie{
		Rect: common.Rect{X: x, Y: y, W: common.EntitySize, H: common.EntitySize},
	}
}

func (z *Zombie) Cell() common.Cell {
	return z.Rect.Cell()
}

// Head returns the waypoint the zombie is walking toward.
func (z *Zombie) Head() (common.Cell, bool) {
	if z.NumNodes <= 0 {
		return common.Cell{}, false
	}
	return z.Path[z.NumNodes-1], true
}

// Waypoints returns the remaining path in travel order.
func (z *Zombie) Waypoints() []common.Cell {
	return component.Waypoints(&z.Path, z.NumNodes)
}

// Stop clears the destination and any remaining path.
func (z *Zombie) Stop() {
	z.Dest = common.Cell{}
	z.NumNodes = 0
}

// Chasing reports whether the zombie heads straight for its destination
// without a planned path.
func (z *Zombie) Chasing() bool {
	return z.NumNodes == 0 && !z.Dest.IsZero()
}

// headOrCell is what other zombies see as this one's next step. A zombie
// without a path reports its own cell.
func (z *Zombie) headOrCell() common.Cell {
	if h, ok := z.Head(); ok {
		return h
	}
	return z.Cell()
}
