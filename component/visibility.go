package component

import "github.com/milk9111/spookymaze/common"

// Visible reports whether a and b can see each other. The cursor walks from
// a to b stepping both axes at once until aligned, then walks back from b
// to a the same way. Any visited wall or unwalkable tile blocks the view.
func Visible(g Grid, a, b common.Cell) bool {
	return walkClear(g, a, b) && walkClear(g, b, a)
}

func walkClear(g Grid, from, to common.Cell) bool {
	x, y := from.X, from.Y
	for x != to.X || y != to.Y {
		x += common.Sign(to.X - x)
		y += common.Sign(to.Y - y)
		if g.TileAt(x, y).BlocksSight() {
			return false
		}
	}
	return true
}
