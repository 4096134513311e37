package component

import (
	"strings"
	"testing"

	"github.com/milk9111/spookymaze/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testGrid []string

func (g testGrid) TileAt(x, y int) common.Tile {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return common.TileWall
	}
	return common.Tile(g[y][x])
}

func (g testGrid) floors() []common.Cell {
	var out []common.Cell
	for y, row := range g {
		for x := range row {
			if common.Tile(row[x]) == common.TileFloor {
				out = append(out, common.Cell{X: x, Y: y})
			}
		}
	}
	return out
}

func rectAt(c common.Cell) common.Rect {
	x, y := c.Origin()
	return common.Rect{X: x, Y: y, W: common.EntitySize, H: common.EntitySize}
}

func chebyshev(a, b common.Cell) int {
	return max(common.Abs(a.X-b.X), common.Abs(a.Y-b.Y))
}

var roomGrid = testGrid{
	"wwwwwwwww",
	"w.......w",
	"w.ww..w.w",
	"w..w..w.w",
	"w.....w.w",
	"w.w.....w",
	"wwwwwwwww",
}

func plan(t *testing.T, g testGrid, start, goal common.Cell) []common.Cell {
	t.Helper()
	var p Planner
	var path [common.MaxPathNodes]common.Cell
	n := p.FindPath(g, rectAt(start), goal, &path)
	return Waypoints(&path, n)
}

func TestFindPathReachesEveryFloorCell(t *testing.T) {
	cells := roomGrid.floors()
	for _, start := range cells {
		for _, goal := range cells {
			if start == goal {
				continue
			}
			wps := plan(t, roomGrid, start, goal)
			require.NotEmpty(t, wps, "start %v goal %v", start, goal)
			assert.Equal(t, 1, chebyshev(start, wps[0]), "first waypoint must neighbour the start")
			assert.Equal(t, goal, wps[len(wps)-1])
			for i := 1; i < len(wps); i++ {
				assert.Equal(t, 1, chebyshev(wps[i-1], wps[i]), "path %v", wps)
			}
		}
	}
}

func TestFindPathNeverCutsWallCorners(t *testing.T) {
	cells := roomGrid.floors()
	for _, start := range cells {
		for _, goal := range cells {
			if start == goal {
				continue
			}
			steps := append([]common.Cell{start}, plan(t, roomGrid, start, goal)...)
			for i := 1; i < len(steps); i++ {
				from, to := steps[i-1], steps[i]
				dx, dy := to.X-from.X, to.Y-from.Y
				if dx == 0 || dy == 0 {
					continue
				}
				assert.NotEqual(t, common.TileWall, roomGrid.TileAt(from.X+dx, from.Y), "%v -> %v", from, to)
				assert.NotEqual(t, common.TileWall, roomGrid.TileAt(from.X, from.Y+dy), "%v -> %v", from, to)
			}
		}
	}
}

func TestFindPathEnclosedStart(t *testing.T) {
	g := testGrid{
		"wwwwwwwww",
		"w..w....w",
		"w..w....w",
		"wwww....w",
		"w.......w",
		"wwwwwwwww",
	}
	var p Planner
	var path [common.MaxPathNodes]common.Cell
	assert.Zero(t, p.FindPath(g, rectAt(common.Cell{X: 1, Y: 1}), common.Cell{X: 6, Y: 4}, &path))
	assert.Zero(t, p.FindPath(g, rectAt(common.Cell{X: 2, Y: 2}), common.Cell{X: 4, Y: 1}, &path))
}

func TestFindPathDoorsAndUnwalkableBlock(t *testing.T) {
	g := testGrid{
		"wwwwwww",
		"w..d..w",
		"w..x..w",
		"w..w..w",
		"wwwwwww",
	}
	assert.Empty(t, plan(t, g, common.Cell{X: 1, Y: 1}, common.Cell{X: 5, Y: 3}))
}

func TestFindPathTruncatesAtSearchDepth(t *testing.T) {
	rows := make(testGrid, common.LevelH)
	for y := range rows {
		if y == 0 || y == common.LevelH-1 {
			rows[y] = strings.Repeat("w", common.LevelW)
			continue
		}
		rows[y] = "w" + strings.Repeat(".", common.LevelW-2) + "w"
	}

	start := common.Cell{X: 1, Y: 1}
	goal := common.Cell{X: common.LevelW - 2, Y: common.LevelH - 2}
	wps := plan(t, rows, start, goal)
	require.NotEmpty(t, wps)
	assert.NotEqual(t, goal, wps[len(wps)-1], "search should stop short of a far goal")
	assert.Equal(t, 1, chebyshev(start, wps[0]))
	for i := 1; i < len(wps); i++ {
		assert.Equal(t, 1, chebyshev(wps[i-1], wps[i]))
	}
}

func TestFindPathKeepsStartWhenOffsetNearCorner(t *testing.T) {
	g := testGrid{
		"wwwww",
		"w...w",
		"w...w",
		"wwwww",
	}
	start := common.Cell{X: 2, Y: 2}
	goal := common.Cell{X: 1, Y: 2}

	var p Planner
	var path [common.MaxPathNodes]common.Cell

	aligned := rectAt(start)
	n := p.FindPath(g, aligned, goal, &path)
	assert.Equal(t, []common.Cell{goal}, Waypoints(&path, n))

	offset := aligned.Offset(0, 10)
	n = p.FindPath(g, offset, goal, &path)
	assert.Equal(t, []common.Cell{start, goal}, Waypoints(&path, n))
}

func TestFindPathReusesBuffers(t *testing.T) {
	var p Planner
	var path [common.MaxPathNodes]common.Cell
	a := common.Cell{X: 1, Y: 1}
	b := common.Cell{X: 7, Y: 5}

	first := Waypoints(&path, p.FindPath(roomGrid, rectAt(a), b, &path))
	second := Waypoints(&path, p.FindPath(roomGrid, rectAt(a), b, &path))
	assert.Equal(t, first, second)
}

func TestStepCost(t *testing.T) {
	tests := []struct {
		name     string
		parentG  int
		position int
		want     int
	}{
		{"orthogonal from root", 0, 2, orthogonalCost},
		{"diagonal from root", 0, 1, diagonalCost},
		{"orthogonal from child", orthogonalCost, 4, diagonalCost},
		{"diagonal from child", diagonalCost, 9, diagonalCost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stepCost(tt.parentG, tt.position))
		})
	}
}
