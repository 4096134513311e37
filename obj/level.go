package obj

import (
	"strings"

	"github.com/milk9111/spookymaze/common"
)

// Level is the tile grid plus the wall rects derived from it.
type Level struct {
	Name  string
	Tiles [common.LevelH][common.LevelW]common.Tile
	Walls [common.LevelH][common.LevelW]common.Rect
}

// NewLevelFromRows builds a level from tile rows. Spaces are ignored and any
// cell not covered by rows is a wall. Wall rects are built before returning.
func NewLevelFromRows(rows ...string) *Level {
	l := &Level{}
	for y := range l.Tiles {
		for x := range l.Tiles[y] {
			l.Tiles[y][x] = common.TileWall
		}
	}
	for y, row := range rows {
		if y >= common.LevelH {
			break
		}
		x := 0
		for _, ch := range strings.ReplaceAll(row, " ", "") {
			if x >= common.LevelW {
				break
			}
			l.Tiles[y][x] = common.Tile(ch)
			x++
		}
	}
	l.BuildWalls()
	return l
}

// InBounds reports whether (x, y) addresses a grid cell.
func InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < common.LevelW && y < common.LevelH
}

// TileAt returns the tile at (x, y). Cells off the grid read as walls.
func (l *Level) TileAt(x, y int) common.Tile {
	if l == nil || !InBounds(x, y) {
		return common.TileWall
	}
	return l.Tiles[y][x]
}

// WallAt returns the wall rect cached for (x, y), or an empty rect off the
// grid.
func (l *Level) WallAt(x, y int) common.Rect {
	if l == nil || !InBounds(x, y) {
		return common.Rect{}
	}
	return l.Walls[y][x]
}

func (l *Level) SetTile(x, y int, t common.Tile) {
	if l == nil || !InBounds(x, y) {
		return
	}
	l.Tiles[y][x] = t
}

func (l *Level) IsFloor(x, y int) bool {
	return l.TileAt(x, y) == common.TileFloor
}

// BuildWalls derives the per-tile rects from the current layout. Doors and
// exits only occupy the right half of their tile.
func (l *Level) BuildWalls() {
	if l == nil {
		return
	}
	for y := range l.Tiles {
		for x, t := range l.Tiles[y] {
			px, py := x*common.TileSize, y*common.TileSize
			switch t {
			case common.TileDoor, common.TileExit:
				l.Walls[y][x] = common.Rect{X: px + common.TileSize/2, Y: py, W: common.TileSize / 2, H: common.TileSize}
			case common.TileWall, common.TileFloor, common.TileUnwalkable, common.TileGoodie:
				l.Walls[y][x] = common.Rect{X: px, Y: py, W: common.TileSize, H: common.TileSize}
			default:
				l.Walls[y][x] = common.Rect{}
			}
		}
	}
}

// Unlock opens the first closed door in the rightmost column. It reports
// whether a door was opened; once the exit is open there is no door left
// and further calls do nothing.
func (l *Level) Unlock() bool {
	if l == nil {
		return false
	}
	x := common.LevelW - 1
	for y := 0; y < common.LevelH; y++ {
		if l.Tiles[y][x] == common.TileDoor {
			l.Tiles[y][x] = common.TileExit
			return true
		}
	}
	return false
}

// Reset puts the level back the way it was before entities were placed:
// goodies become floor, the entrance door is restored and the exit closed.
func (l *Level) Reset() {
	if l == nil {
		return
	}
	for y := range l.Tiles {
		for x := range l.Tiles[y] {
			if l.Tiles[y][x] == common.TileGoodie {
				l.Tiles[y][x] = common.TileFloor
			}
		}
	}
	for y := 0; y < common.LevelH; y++ {
		if t := l.Tiles[y][0]; t == common.TileUnwalkable || t == common.TileFloor {
			l.Tiles[y][0] = common.TileDoor
			break
		}
	}
	last := common.LevelW - 1
	for y := 0; y < common.LevelH; y++ {
		if l.Tiles[y][last] == common.TileExit {
			l.Tiles[y][last] = common.TileDoor
			break
		}
	}
	l.BuildWalls()
}

// Entrance returns the first door in the leftmost column.
func (l *Level) Entrance() (common.Cell, bool) {
	return l.findInColumn(0, common.TileDoor)
}

// Exit returns the exit cell in the rightmost column, open or closed.
func (l *Level) Exit() (common.Cell, bool) {
	if c, ok := l.findInColumn(common.LevelW-1, common.TileExit); ok {
		return c, true
	}
	return l.findInColumn(common.LevelW-1, common.TileDoor)
}

func (l *Level) findInColumn(x int, t common.Tile) (common.Cell, bool) {
	if l == nil {
		return common.Cell{}, false
	}
	for y := 0; y < common.LevelH; y++ {
		if l.Tiles[y][x] == t {
			return common.Cell{X: x, Y: y}, true
		}
	}
	return common.Cell{}, false
}

// Count returns how many cells hold t.
func (l *Level) Count(t common.Tile) int {
	if l == nil {
		return 0
	}
	n := 0
	for y := range l.Tiles {
		for x := range l.Tiles[y] {
			if l.Tiles[y][x] == t {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
