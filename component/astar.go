package component

import "github.com/milk9111/spookymaze/common"

const (
	orthogonalCost = 10
	diagonalCost   = 14
	heuristicScale = 10
)

// Grid is the read-only tile view used by the planner and sight checks.
// Cells outside the grid must report common.TileWall.
type Grid interface {
	TileAt(x, y int) common.Tile
}

// searchNode is one planner entry. parent indexes the closed array; -1 marks
// the root.
type searchNode struct {
	cell    common.Cell
	g, h, f int
	parent  int
	dropped bool
}

// Planner finds bounded 8-way paths over a Grid. Its buffers are fixed-size
// and reused across calls, so a Planner must not be shared between
// goroutines. The zero value is ready to use.
type Planner struct {
	open   [common.SearchDepth]searchNode
	closed [common.SearchDepth]searchNode
	chain  [common.SearchDepth + 1]common.Cell
}

// stepCost keeps the shipped cost rule: the condition is the sum of the
// parent's g and the position parity, so only an orthogonal step out of the
// root costs 10. Every other step costs 14 and g never accumulates.
func stepCost(parentG, position int) int {
	if parentG+position%2 != 0 {
		return diagonalCost
	}
	return orthogonalCost
}

// FindPath searches from the cell under rect's origin toward dest and writes
// the result into path, terminal cell first and the next waypoint last.
// It returns the number of waypoints; 0 means dest is unreachable within
// the search budget. When the open set fills up, the last node added stands
// in for dest.
func (p *Planner) FindPath(g Grid, rect common.Rect, dest common.Cell, path *[common.MaxPathNodes]common.Cell) int {
	start := rect.Cell()
	p.closed[0] = searchNode{cell: start, parent: -1}
	cur, t, c := 0, 0, 1

	var terminal searchNode
search:
	for {
		node := p.closed[cur]
		position := 0
		for y := node.cell.Y - 1; y <= node.cell.Y+1; y++ {
			for x := node.cell.X - 1; x <= node.cell.X+1; x++ {
				position++
				if g.TileAt(x, y).Blocks() {
					continue
				}
				if cutsCorner(g, node.cell, position) {
					continue
				}

				cell := common.Cell{X: x, Y: y}
				if cell == dest {
					terminal = searchNode{cell: cell, parent: cur}
					break search
				}
				if p.closedIndex(c, cell) >= 0 {
					continue
				}

				cost := stepCost(node.g, position)
				if i := p.openIndex(t, cell); i >= 0 {
					if cost < p.open[i].g {
						p.open[i].g = cost
						p.open[i].f = cost + p.open[i].h
						p.open[i].parent = cur
					}
					continue
				}

				h := (common.Abs(x-dest.X) + common.Abs(y-dest.Y)) * heuristicScale
				p.open[t] = searchNode{cell: cell, g: cost, h: h, f: cost + h, parent: cur}
				if t < common.SearchDepth-1 {
					t++
					continue
				}
				terminal = searchNode{cell: cell, parent: cur}
				break search
			}
		}

		best := -1
		for i := t - 1; i >= 0; i-- {
			if p.open[i].dropped {
				continue
			}
			if best < 0 || p.open[i].f < p.open[best].f {
				best = i
			}
		}
		if best < 0 {
			return 0
		}

		p.open[best].dropped = true
		p.closed[c] = p.open[best]
		cur = c
		c++
	}

	return p.reconstruct(g, rect, terminal, path)
}

func (p *Planner) reconstruct(g Grid, rect common.Rect, terminal searchNode, path *[common.MaxPathNodes]common.Cell) int {
	n := 0
	p.chain[n] = terminal.cell
	n++
	for i := terminal.parent; i >= 0 && n < len(p.chain); i = p.closed[i].parent {
		p.chain[n] = p.closed[i].cell
		n++
	}

	// Keep the cells nearest the start when the chain is longer than the
	// waypoint buffer.
	offset := 0
	if n > common.MaxPathNodes {
		offset = n - common.MaxPathNodes
		n = common.MaxPathNodes
	}
	for k := 0; k < n; k++ {
		path[k] = p.chain[offset+k]
	}

	if keepStart(g, rect, path[n-2], path[n-1]) {
		return n
	}
	return n - 1
}

// keepStart reports whether the agent must first centre on its own cell
// because it sits offset inside the tile and the first turn would clip a
// wall corner.
func keepStart(g Grid, rect common.Rect, first, start common.Cell) bool {
	sx, sy := start.Origin()
	switch {
	case first.X < start.X && rect.Y > sy && g.TileAt(start.X-1, start.Y+1) == common.TileWall:
		return true
	case first.Y < start.Y && rect.X > sx && g.TileAt(start.X+1, start.Y-1) == common.TileWall:
		return true
	case first.X > start.X && rect.Y > sy && g.TileAt(start.X+1, start.Y+1) == common.TileWall:
		return true
	case first.Y > start.Y && rect.X > sx && g.TileAt(start.X+1, start.Y+1) == common.TileWall:
		return true
	}
	return false
}

// cutsCorner rejects a diagonal neighbour when either orthogonal cell
// shared with the current node is a wall. Positions count 1..9 in raster
// order over the 3x3 neighbourhood.
func cutsCorner(g Grid, c common.Cell, position int) bool {
	var dx, dy int
	switch position {
	case 1:
		dx, dy = -1, -1
	case 3:
		dx, dy = 1, -1
	case 7:
		dx, dy = -1, 1
	case 9:
		dx, dy = 1, 1
	default:
		return false
	}
	return g.TileAt(c.X+dx, c.Y) == common.TileWall || g.TileAt(c.X, c.Y+dy) == common.TileWall
}

func (p *Planner) closedIndex(c int, cell common.Cell) int {
	for i := c - 1; i >= 0; i-- {
		if p.closed[i].cell == cell {
			return i
		}
	}
	return -1
}

func (p *Planner) openIndex(t int, cell common.Cell) int {
	for i := t - 1; i >= 0; i-- {
		if p.open[i].cell == cell && !p.open[i].dropped {
			return i
		}
	}
	return -1
}

// Waypoints returns the first n cells of path in travel order: next
// waypoint first, terminal cell last.
func Waypoints(path *[common.MaxPathNodes]common.Cell, n int) []common.Cell {
	if n <= 0 {
		return nil
	}
	out := make([]common.Cell, 0, n)
	for k := n - 1; k >= 0; k-- {
		out = append(out, path[k])
	}
	return out
}
