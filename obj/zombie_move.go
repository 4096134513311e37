package obj

import (
	"github.com/milk9111/spookymaze/common"
	"github.com/milk9111/spookymaze/component"
	"go.uber.org/zap"
)

// zombieView is what one zombie sees of another during a tick.
type zombieView struct {
	rect common.Rect
	head common.Cell
}

// MoveZombies runs one tick for every zombie. All zombies read each other's
// positions as they were at the start of the tick. The tick stops early
// when a zombie catches the player.
func MoveZombies(s *State) {
	if s == nil || s.Level == nil || s.Player == nil {
		return
	}
	if s.DeltaMS > common.MaxFrameDelta {
		return
	}

	step := common.Step(s.Tuning.ZombieSpeed, s.DeltaMS)
	views := make([]zombieView, len(s.Zombies))
	for i, z := range s.Zombies {
		views[i] = zombieView{rect: z.Rect, head: z.headOrCell()}
	}

	for i, z := range s.Zombies {
		if s.moveZombie(i, z, step, views) {
			return
		}
	}
}

// moveZombie reports whether z caught the player.
func (s *State) moveZombie(i int, z *Zombie, step int, views []zombieView) bool {
	pc := s.Player.Cell()
	zc := z.Cell()
	dx, dy := common.Abs(pc.X-zc.X), common.Abs(pc.Y-zc.Y)

	if dx > s.Tuning.ChaseRadius || dy > s.Tuning.ChaseRadius {
		if z.NumNodes > 0 {
			s.followPath(i, z, step, views)
		} else {
			s.wander(z)
		}
		return false
	}

	if dx <= 1 && dy <= 1 && common.Touches(z.Rect, s.Player.Rect) {
		s.Player.Dead = true
		s.Events.Push(Event{Kind: EventPlayerCaught, Cell: zc})
		s.Log.Info("player caught", zap.Int("zombie", i), zap.Int("x", zc.X), zap.Int("y", zc.Y))
		return true
	}

	playerOnFloor := s.Level.IsFloor(pc.X, pc.Y)
	if z.Dest != pc && playerOnFloor {
		switch {
		case component.Visible(s.Level, pc, zc):
			z.Dest = pc
			z.NumNodes = 0
		case z.NumNodes == 0 && zc == z.Dest:
			// Reached the last known position and found nothing.
			z.Dest = common.Cell{}
			s.wander(z)
			return false
		case z.NumNodes == 0 && z.Dest.IsZero():
			// Never saw the player; nothing to plan toward.
			s.wander(z)
			return false
		case z.NumNodes == 0:
			z.NumNodes = s.FindPath(z)
			if z.NumNodes == 0 {
				s.wander(z)
			} else {
				s.followPath(i, z, step, views)
			}
			return false
		}
	}

	switch {
	case z.NumNodes == 0 && playerOnFloor:
		s.chase(i, z, step, views)
	case z.NumNodes == 0:
		z.Dest = common.Cell{}
		s.wander(z)
	default:
		s.followPath(i, z, step, views)
	}
	return false
}

// chase moves z straight at its destination, stopping at walls on the two
// tiles ahead on each axis and at the destination itself.
func (s *State) chase(i int, z *Zombie, step int, views []zombieView) {
	r := z.Rect
	zc := r.Cell()
	tx, ty := z.Dest.Origin()
	moveX, moveY := step, step
	tmp := r

	if r.X < tx {
		tmp.X += moveX
		for _, c := range [2]common.Cell{{X: zc.X + 1, Y: zc.Y}, {X: zc.X + 1, Y: zc.Y + 1}} {
			if w, ok := s.solidWall(c); ok && common.Touches(tmp, w) {
				moveX = w.X - (r.X + common.EntitySize)
			}
		}
		if tmp.X > tx {
			moveX = min(moveX, tx-r.X)
		}
	} else if r.X > tx {
		tmp.X -= moveX
		for _, c := range [2]common.Cell{{X: zc.X - 1, Y: zc.Y}, {X: zc.X - 1, Y: zc.Y + 1}} {
			if w, ok := s.solidWall(c); ok && common.Touches(tmp, w) {
				moveX = r.X - (w.X + common.TileSize)
			}
		}
		if tmp.X < tx {
			moveX = min(moveX, r.X-tx)
		}
	}

	if r.Y < ty {
		tmp.Y += moveY
		for _, c := range [2]common.Cell{{X: zc.X, Y: zc.Y + 1}, {X: zc.X + 1, Y: zc.Y + 1}} {
			if w, ok := s.solidWall(c); ok && common.Touches(tmp, w) {
				moveY = w.Y - (r.Y + common.EntitySize)
			}
		}
		if tmp.Y > ty {
			moveY = min(moveY, ty-r.Y)
		}
	} else if r.Y > ty {
		tmp.Y -= moveY
		for _, c := range [2]common.Cell{{X: zc.X, Y: zc.Y - 1}, {X: zc.X + 1, Y: zc.Y - 1}} {
			if w, ok := s.solidWall(c); ok && common.Touches(tmp, w) {
				moveY = r.Y - (w.Y + common.TileSize)
			}
		}
		if tmp.Y < ty {
			moveY = min(moveY, r.Y-ty)
		}
	}

	for n, o := range views {
		if n == i || !common.Overlaps(tmp, o.rect) {
			continue
		}
		moveX, moveY = giveWay(r, tmp, o.rect, moveX, moveY)
	}

	if r.X < tx {
		z.Rect.X += moveX
	} else if r.X > tx {
		z.Rect.X -= moveX
	}
	if r.Y < ty {
		z.Rect.Y += moveY
	} else if r.Y > ty {
		z.Rect.Y -= moveY
	}
}

// followPath walks z toward its head waypoint, popping it on exact arrival.
func (s *State) followPath(i int, z *Zombie, step int, views []zombieView) {
	head := z.Path[z.NumNodes-1]
	hx, hy := head.Origin()
	if hx == z.Rect.X && hy == z.Rect.Y {
		z.NumNodes--
		if z.NumNodes == 0 {
			z.Dest = common.Cell{}
			return
		}
		head = z.Path[z.NumNodes-1]
		hx, hy = head.Origin()
	}

	r := z.Rect
	moveX, moveY := step, step
	tmp := r
	if hx < r.X {
		tmp.X -= moveX
	} else if hx > r.X {
		tmp.X += moveX
	}
	if hy < r.Y {
		tmp.Y -= moveY
	} else if hy > r.Y {
		tmp.Y += moveY
	}

	for n, o := range views {
		if n == i || !common.Overlaps(tmp, o.rect) {
			continue
		}
		if deadlocked(r, o.rect, hx, hy, o.head) {
			z.Dest = common.Cell{}
			s.wander(z)
			return
		}
		moveX, moveY = giveWay(r, tmp, o.rect, moveX, moveY)
	}

	switch {
	case hx < r.X && tmp.X < hx:
		z.Rect.X = hx
	case hx < r.X:
		z.Rect.X -= moveX
	case hx > r.X && tmp.X > hx:
		z.Rect.X = hx
	case hx > r.X:
		z.Rect.X += moveX
	}
	switch {
	case hy < r.Y && tmp.Y < hy:
		z.Rect.Y = hy
	case hy < r.Y:
		z.Rect.Y -= moveY
	case hy > r.Y && tmp.Y > hy:
		z.Rect.Y = hy
	case hy > r.Y:
		z.Rect.Y += moveY
	}
}

// deadlocked reports whether r and other block each other while heading
// past one another toward their waypoints.
func deadlocked(r, other common.Rect, hx, hy int, otherHead common.Cell) bool {
	ox, oy := otherHead.Origin()
	switch {
	case r.X+r.W < other.X && r.X < hx && other.X > ox:
		return true
	case r.X+r.W > other.X && r.X > hx && other.X < ox:
		return true
	case r.Y+r.H < other.Y && r.Y < hy && other.Y > oy:
		return true
	case r.Y+r.H > other.Y && r.Y > hy && other.Y < oy:
		return true
	}
	return false
}

// giveWay zeroes the axis on which other stands in the way of the move
// from r to tmp.
func giveWay(r, tmp, other common.Rect, moveX, moveY int) (int, int) {
	if r.X > other.X+other.W && tmp.X < r.X {
		moveX = 0
	} else if r.X+r.W < other.X && tmp.X > r.X {
		moveX = 0
	}
	if r.Y > other.Y+other.H && tmp.Y < r.Y {
		moveY = 0
	} else if r.Y+r.H < other.Y && tmp.Y > r.Y {
		moveY = 0
	}
	return moveX, moveY
}

// solidWall returns the wall rect at c when the tile stops a zombie.
func (s *State) solidWall(c common.Cell) (common.Rect, bool) {
	switch s.Level.TileAt(c.X, c.Y) {
	case common.TileWall, common.TileUnwalkable:
		return s.Level.WallAt(c.X, c.Y), true
	}
	return common.Rect{}, false
}

// wander picks a random floor cell near z and plans a path to it. When a
// destination is already set, the first pick leans toward it. After
// WanderAttempts failed picks z is left idle until the next tick.
func (s *State) wander(z *Zombie) {
	zc := z.Cell()
	z.NumNodes = 0
	for attempt := 0; attempt < s.Tuning.WanderAttempts; attempt++ {
		var ox, oy int
		if z.Dest.X != 0 && z.Dest.Y != 0 {
			ox = s.wanderOffset(z.Dest.X - zc.X)
			oy = s.wanderOffset(z.Dest.Y - zc.Y)
		} else {
			ox = s.wanderOffset(0)
			oy = s.wanderOffset(0)
		}

		z.Dest = common.Cell{}
		tx, ty := zc.X+ox, zc.Y+oy
		if !InBounds(tx, ty) || !s.Level.IsFloor(tx, ty) {
			continue
		}

		z.Dest = common.Cell{X: tx, Y: ty}
		if z.NumNodes = s.FindPath(z); z.NumNodes > 0 {
			return
		}
		z.Dest = common.Cell{}
	}
	s.Log.Debug("wander gave up", zap.Int("x", zc.X), zap.Int("y", zc.Y))
}

// wanderOffset returns a cell offset. A positive dir gives [0, range), a
// negative one (-range, 0], and zero the full [-range, range].
func (s *State) wanderOffset(dir int) int {
	r := s.Tuning.WanderRange
	if r <= 0 {
		return 0
	}
	switch {
	case dir > 0:
		return s.Rand.Intn(r)
	case dir < 0:
		return -s.Rand.Intn(r)
	}
	return s.Rand.Intn(2*r+1) - r
}
