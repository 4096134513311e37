package obj

import "github.com/milk9111/spookymaze/common"

// Goodie is a collectible placed on a goodie tile.
type Goodie struct {
	Rect common.Rect
}

// NewGoodie centres a goodie rect inside cell.
func NewGoodie(cell common.Cell) Goodie {
	x, y := cell.Origin()
	return Goodie{Rect: common.Rect{
		X: x + common.GoodieInset,
		Y: y + common.GoodieInset,
		W: common.GoodieSize,
		H: common.GoodieSize,
	}}
}

func (g Goodie) Cell() common.Cell {
	return g.Rect.Cell()
}

// Goodies is the set of goodies still on the level. Order is not stable.
type Goodies []Goodie

// Find returns the index of the goodie in cell, or -1.
func (gs Goodies) Find(cell common.Cell) int {
	for i := range gs {
		if gs[i].Cell() == cell {
			return i
		}
	}
	return -1
}

// Remove drops the goodie at i by moving the last one into its slot.
func (gs *Goodies) Remove(i int) {
	s := *gs
	if i < 0 || i >= len(s) {
		return
	}
	last := len(s) - 1
	s[i] = s[last]
	*gs = s[:last]
}
