package obj

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/milk9111/spookymaze/common"
	"go.uber.org/zap"
)

// openRows is a full-size level: a wall border around open floor.
func openRows() []string {
	rows := make([]string, common.LevelH)
	for y := range rows {
		if y == 0 || y == common.LevelH-1 {
			rows[y] = strings.Repeat("w", common.LevelW)
			continue
		}
		rows[y] = "w" + strings.Repeat(".", common.LevelW-2) + "w"
	}
	return rows
}

func newTestState(t *testing.T, level *Level) *State {
	t.Helper()
	s := NewState(level, rand.New(rand.NewSource(7)), zap.NewNop())
	s.DeltaMS = 16
	return s
}

func setTile(l *Level, x, y int, tile common.Tile) {
	l.SetTile(x, y, tile)
	l.BuildWalls()
}

func cellRect(x, y int) common.Rect {
	return common.Rect{X: x * common.TileSize, Y: y * common.TileSize, W: common.EntitySize, H: common.EntitySize}
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
