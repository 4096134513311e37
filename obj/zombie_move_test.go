package obj

import (
	"testing"

	"github.com/milk9111/spookymaze/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// roomRows is a small room split by a wall stub hanging from the bottom.
func roomRows() []string {
	return []string{
		"wwwwwwwww",
		"w.......w",
		"w...w...w",
		"w...w...w",
		"w...w...w",
		"wwwwwwwww",
	}
}

// screenedLevel is the open level with a wall column at x=22 from y=10 to 20.
func screenedLevel() *Level {
	l := NewLevelFromRows(openRows()...)
	for y := 10; y <= 20; y++ {
		l.SetTile(22, y, common.TileWall)
	}
	l.BuildWalls()
	return l
}

func TestZombieChasesVisiblePlayer(t *testing.T) {
	s := newTestState(t, NewLevelFromRows(openRows()...))
	s.Player.Rect = cellRect(10, 10)
	z := NewZombie(common.Cell{X: 13, Y: 10})
	s.Zombies = []*Zombie{z}

	MoveZombies(s)

	assert.Equal(t, common.Cell{X: 10, Y: 10}, z.Dest)
	assert.Zero(t, z.NumNodes)
	assert.True(t, z.Chasing())
	assert.Equal(t, 1297, z.Rect.X)
	assert.Equal(t, 1000, z.Rect.Y)
}

func TestZombieChaseStopsOnTarget(t *testing.T) {
	s := newTestState(t, NewLevelFromRows(openRows()...))
	s.Player.Rect = cellRect(10, 10).Offset(10, 0)
	z := NewZombie(common.Cell{X: 10, Y: 12})
	z.Rect.X = 1001
	s.Zombies = []*Zombie{z}

	MoveZombies(s)

	assert.Equal(t, 1000, z.Rect.X, "overshoot is clamped to the target")
	assert.Equal(t, 1197, z.Rect.Y)
}

func TestMoveZombiesSkipsLongFrames(t *testing.T) {
	s := newTestState(t, NewLevelFromRows(openRows()...))
	s.Player.Rect = cellRect(10, 10)
	z := NewZombie(common.Cell{X: 13, Y: 10})
	s.Zombies = []*Zombie{z}
	s.DeltaMS = 150

	MoveZombies(s)

	assert.Equal(t, cellRect(13, 10), z.Rect)
	assert.True(t, z.Dest.IsZero())
}

func TestZombieCatchesPlayer(t *testing.T) {
	s := newTestState(t, NewLevelFromRows(openRows()...))
	s.Player.Rect = cellRect(10, 10)
	catcher := NewZombie(common.Cell{X: 10, Y: 10})
	catcher.Rect = catcher.Rect.Offset(20, 10)
	idle := NewZombie(common.Cell{X: 30, Y: 25})
	s.Zombies = []*Zombie{catcher, idle}

	MoveZombies(s)

	assert.True(t, s.Player.Dead)
	assert.Equal(t, 1, countEvents(s.Events.Drain(), EventPlayerCaught))
	assert.Zero(t, idle.NumNodes, "the tick ends at the catch")
	assert.True(t, idle.Dest.IsZero())
}

func TestZombieFollowsPathToTheEnd(t *testing.T) {
	s := newTestState(t, NewLevelFromRows(openRows()...))
	s.Player.Rect = cellRect(30, 25)
	z := NewZombie(common.Cell{X: 5, Y: 5})
	z.Dest = common.Cell{X: 8, Y: 5}
	z.NumNodes = s.FindPath(z)
	require.Positive(t, z.NumNodes)
	s.Zombies = []*Zombie{z}

	for i := 0; i < 500 && z.NumNodes > 0; i++ {
		MoveZombies(s)
	}

	assert.Zero(t, z.NumNodes)
	assert.True(t, z.Dest.IsZero())
	assert.Equal(t, 800, z.Rect.X)
	assert.Equal(t, 500, z.Rect.Y)
}

func TestZombieWandersWhenPlayerIsFar(t *testing.T) {
	s := newTestState(t, NewLevelFromRows(openRows()...))
	s.Player.Rect = cellRect(2, 2)
	z := NewZombie(common.Cell{X: 20, Y: 15})
	s.Zombies = []*Zombie{z}

	MoveZombies(s)

	require.Positive(t, z.NumNodes)
	require.False(t, z.Dest.IsZero())
	assert.LessOrEqual(t, common.Abs(z.Dest.X-20), s.Tuning.WanderRange)
	assert.LessOrEqual(t, common.Abs(z.Dest.Y-15), s.Tuning.WanderRange)
	assert.True(t, s.Level.IsFloor(z.Dest.X, z.Dest.Y))
	assert.Equal(t, cellRect(20, 15), z.Rect, "wandering plans without moving")
}

func TestWanderGivesUp(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLevelFromRows()
	l.SetTile(5, 5, common.TileUnwalkable)
	s := newTestState(t, l)
	s.Log = zap.New(core)
	s.Player.Rect = cellRect(30, 25)
	z := NewZombie(common.Cell{X: 5, Y: 5})
	s.Zombies = []*Zombie{z}

	MoveZombies(s)

	assert.Zero(t, z.NumNodes)
	assert.True(t, z.Dest.IsZero())
	assert.Equal(t, 1, logs.FilterMessage("wander gave up").Len())
}

func TestZombiesGiveWay(t *testing.T) {
	s := newTestState(t, NewLevelFromRows(openRows()...))
	s.Player.Rect = cellRect(10, 10)
	a := NewZombie(common.Cell{X: 13, Y: 10})
	b := NewZombie(common.Cell{X: 12, Y: 10})
	b.Rect.X = 1248
	s.Zombies = []*Zombie{a, b}

	MoveZombies(s)

	assert.Equal(t, 1300, a.Rect.X, "a is blocked by b ahead of it")
	assert.Equal(t, 1245, b.Rect.X)
}

func TestGiveWay(t *testing.T) {
	r := common.Rect{X: 500, Y: 500, W: 50, H: 50}
	tests := []struct {
		name         string
		other        common.Rect
		dx, dy       int
		wantX, wantY int
	}{
		{"other left, moving left", common.Rect{X: 448, Y: 500, W: 50, H: 50}, -3, 0, 0, 3},
		{"other left, moving right", common.Rect{X: 448, Y: 500, W: 50, H: 50}, 3, 0, 3, 3},
		{"other right, moving right", common.Rect{X: 552, Y: 500, W: 50, H: 50}, 3, 0, 0, 3},
		{"other below, moving down", common.Rect{X: 500, Y: 552, W: 50, H: 50}, 0, 3, 3, 0},
		{"other above, moving up", common.Rect{X: 500, Y: 448, W: 50, H: 50}, 0, -3, 3, 0},
		{"already overlapping", common.Rect{X: 520, Y: 520, W: 50, H: 50}, 3, 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := r.Offset(tt.dx, tt.dy)
			mx, my := giveWay(r, tmp, tt.other, 3, 3)
			assert.Equal(t, tt.wantX, mx)
			assert.Equal(t, tt.wantY, my)
		})
	}
}

func TestDeadlockedZombiesReplan(t *testing.T) {
	s := newTestState(t, NewLevelFromRows(openRows()...))
	s.Player.Rect = cellRect(30, 25)

	a := NewZombie(common.Cell{X: 5, Y: 10})
	a.Dest = common.Cell{X: 6, Y: 10}
	a.Path[0] = a.Dest
	a.NumNodes = 1

	b := NewZombie(common.Cell{X: 5, Y: 10})
	b.Rect.X = 552
	b.Dest = common.Cell{X: 5, Y: 10}
	b.Path[0] = b.Dest
	b.NumNodes = 1

	s.Zombies = []*Zombie{a, b}

	MoveZombies(s)

	assert.Equal(t, 500, a.Rect.X)
	assert.Equal(t, 552, b.Rect.X)
}

func TestZombiePlansAroundWallToLastSighting(t *testing.T) {
	s := newTestState(t, NewLevelFromRows(roomRows()...))
	s.Player.Rect = cellRect(2, 4)
	z := NewZombie(common.Cell{X: 6, Y: 3})
	z.Dest = common.Cell{X: 2, Y: 3}
	s.Zombies = []*Zombie{z}

	MoveZombies(s)

	require.Positive(t, z.NumNodes)
	assert.Equal(t, common.Cell{X: 2, Y: 3}, z.Dest)
	assert.Equal(t, common.Cell{X: 2, Y: 3}, z.Path[0])
	for _, c := range z.Waypoints() {
		assert.Equal(t, common.TileFloor, s.Level.TileAt(c.X, c.Y), "waypoint %v", c)
	}
}

func TestZombieWandersAfterReachingLastSighting(t *testing.T) {
	s := newTestState(t, screenedLevel())
	s.Player.Rect = cellRect(24, 15)
	z := NewZombie(common.Cell{X: 20, Y: 15})
	z.Dest = common.Cell{X: 20, Y: 15}
	s.Zombies = []*Zombie{z}

	MoveZombies(s)

	assert.Positive(t, z.NumNodes)
	assert.False(t, z.Dest.IsZero())
}

func TestZombieWithoutSightingWanders(t *testing.T) {
	s := newTestState(t, screenedLevel())
	s.Player.Rect = cellRect(24, 15)
	z := NewZombie(common.Cell{X: 20, Y: 15})
	s.Zombies = []*Zombie{z}

	MoveZombies(s)

	require.Positive(t, z.NumNodes)
	assert.False(t, z.Dest.IsZero())
	assert.LessOrEqual(t, common.Abs(z.Dest.X-20), s.Tuning.WanderRange)
	assert.LessOrEqual(t, common.Abs(z.Dest.Y-15), s.Tuning.WanderRange)
}

func TestZombieHead(t *testing.T) {
	z := NewZombie(common.Cell{X: 3, Y: 4})
	_, ok := z.Head()
	assert.False(t, ok)
	assert.Equal(t, common.Cell{X: 3, Y: 4}, z.headOrCell())

	z.Path[0] = common.Cell{X: 6, Y: 4}
	z.Path[1] = common.Cell{X: 5, Y: 4}
	z.Path[2] = common.Cell{X: 4, Y: 4}
	z.NumNodes = 3
	head, ok := z.Head()
	require.True(t, ok)
	assert.Equal(t, common.Cell{X: 4, Y: 4}, head)
	assert.Equal(t, []common.Cell{{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4}}, z.Waypoints())

	z.Stop()
	assert.Zero(t, z.NumNodes)
	assert.True(t, z.Dest.IsZero())
}
