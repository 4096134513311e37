package common

// Tile is one grid symbol as it appears in level files.
type Tile byte

const (
	TileFloor      Tile = '.'
	TileWall       Tile = 'w'
	TileDoor       Tile = 'd'
	TileExit       Tile = 'e'
	TileGoodie     Tile = 'g'
	TileUnwalkable Tile = 'x'
)

// Valid reports whether t is a known tile symbol.
func (t Tile) Valid() bool {
	switch t {
	case TileFloor, TileWall, TileDoor, TileExit, TileGoodie, TileUnwalkable:
		return true
	}
	return false
}

// Blocks reports whether the planner may never step onto t.
func (t Tile) Blocks() bool {
	return t == TileWall || t == TileUnwalkable || t == TileDoor
}

// BlocksSight reports whether t stops a line of sight. Doors do not.
func (t Tile) BlocksSight() bool {
	return t == TileWall || t == TileUnwalkable
}

func (t Tile) String() string {
	return string(rune(t))
}
