package obj

import "github.com/milk9111/spookymaze/common"

const DefaultLives = 3

// Player is the controlled agent. DirX and DirY are signed speeds in px/s
// written by the input layer and read once per tick.
type Player struct {
	Rect  common.Rect
	DirX  int
	DirY  int
	Lives int
	Dead  bool
}

func NewPlayer(x, y int) *Player {
	return &Player{
		Rect:  common.Rect{X: x, Y: y, W: common.EntitySize, H: common.EntitySize},
		Lives: DefaultLives,
	}
}

func (p *Player) Cell() common.Cell {
	return p.Rect.Cell()
}

// Moving reports whether any direction is held.
func (p *Player) Moving() bool {
	return p != nil && (p.DirX != 0 || p.DirY != 0)
}

// Place moves the player to the top-left of cell and clears its direction.
func (p *Player) Place(cell common.Cell) {
	p.Rect.X, p.Rect.Y = cell.Origin()
	p.DirX, p.DirY = 0, 0
	p.Dead = false
}
