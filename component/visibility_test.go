package component

import (
	"testing"

	"github.com/milk9111/spookymaze/common"
	"github.com/stretchr/testify/assert"
)

var sightGrid = testGrid{
	"wwwwwwwwww",
	"w....w...w",
	"w.x......w",
	"w....d...w",
	"w..w...x.w",
	"w........w",
	"wwwwwwwwww",
}

func TestVisibleIsSymmetric(t *testing.T) {
	var cells []common.Cell
	for y := range sightGrid {
		for x := range sightGrid[y] {
			cells = append(cells, common.Cell{X: x, Y: y})
		}
	}
	for _, a := range cells {
		for _, b := range cells {
			assert.Equal(t, Visible(sightGrid, a, b), Visible(sightGrid, b, a), "%v <-> %v", a, b)
		}
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name string
		a, b common.Cell
		want bool
	}{
		{"same cell", common.Cell{X: 1, Y: 1}, common.Cell{X: 1, Y: 1}, true},
		{"open row", common.Cell{X: 1, Y: 5}, common.Cell{X: 8, Y: 5}, true},
		{"wall in row", common.Cell{X: 1, Y: 1}, common.Cell{X: 8, Y: 1}, false},
		{"door does not block", common.Cell{X: 3, Y: 3}, common.Cell{X: 7, Y: 3}, true},
		{"unwalkable blocks", common.Cell{X: 1, Y: 2}, common.Cell{X: 4, Y: 2}, false},
		{"diagonal then straight", common.Cell{X: 3, Y: 1}, common.Cell{X: 6, Y: 3}, true},
		{"clear one way only", common.Cell{X: 1, Y: 5}, common.Cell{X: 4, Y: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Visible(sightGrid, tt.a, tt.b))
		})
	}
}

func TestVisibleChecksBothWalks(t *testing.T) {
	// Forward walk (1,1)->(4,2) visits (2,2),(3,2),(4,2) and is clear. The
	// walk back visits (3,1), which is a wall.
	g := testGrid{
		"wwwwww",
		"w..w.w",
		"w....w",
		"wwwwww",
	}
	a := common.Cell{X: 1, Y: 1}
	b := common.Cell{X: 4, Y: 2}
	assert.True(t, walkClear(g, a, b))
	assert.False(t, walkClear(g, b, a))
	assert.False(t, Visible(g, a, b))
	assert.False(t, Visible(g, b, a))
}
