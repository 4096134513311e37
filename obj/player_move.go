package obj

import (
	"github.com/milk9111/spookymaze/common"
	"go.uber.org/zap"
)

// MovePlayer advances the player one tick. It resolves the 3x3
// neighbourhood in raster order: exit tiles clear the level, goodie tiles
// are collected, and wall or door tiles clamp the move. The camera follows
// the result.
func MovePlayer(s *State) {
	if s == nil || s.Level == nil || s.Player == nil {
		return
	}
	if s.DeltaMS > common.MaxFrameDelta {
		return
	}

	p := s.Player
	moveX := common.Step(p.DirX, s.DeltaMS)
	moveY := common.Step(p.DirY, s.DeltaMS)

	pc := p.Cell()
	position := 0
	for y := pc.Y - 1; y <= pc.Y+1; y++ {
		for x := pc.X - 1; x <= pc.X+1; x++ {
			position++
			if !InBounds(x, y) {
				continue
			}
			switch s.Level.Tiles[y][x] {
			case common.TileExit:
				if common.Touches(p.Rect, s.Level.Walls[y][x]) && !s.LevelCleared {
					s.LevelCleared = true
					s.Events.Push(Event{Kind: EventLevelCleared, Cell: common.Cell{X: x, Y: y}})
				}
			case common.TileGoodie:
				s.CollectGoodie(common.Cell{X: x, Y: y})
			case common.TileDoor, common.TileWall:
				moveX, moveY = slide(s.Level, p.Rect, x, y, position, moveX, moveY)
			}
		}
	}

	moveX = clampAxis(p.Rect.X, p.Rect.W, moveX, common.LevelW*common.TileSize)
	moveY = clampAxis(p.Rect.Y, p.Rect.H, moveY, common.LevelH*common.TileSize)

	p.Rect.X += moveX
	p.Rect.Y += moveY
	s.Camera.Follow(p.Rect)
}

// slide clamps the move against the wall at (x, y). position is the wall's
// 1..9 raster slot around the player; each slot has its own rule.
func slide(l *Level, r common.Rect, x, y, position, moveX, moveY int) (int, int) {
	wall := l.Walls[y][x]

	tmp := r
	if moveX < 0 {
		switch position {
		case 1: // top-left, moving diagonally
			tmp.X += moveX
			tmp.Y += moveY
			if common.Touches(tmp, wall) && l.TileAt(x, y+1) != common.TileWall && moveY < 0 {
				moveY = wall.Y + wall.H - r.Y
			}
		case 4: // left
			tmp.X += moveX
			if common.Touches(tmp, wall) {
				moveX = wall.X + wall.W - r.X
			}
		case 7: // bottom-left, approached from the right
			tmp.X += moveX
			if common.Touches(tmp, wall) && wall.Y < tmp.Y+tmp.H {
				moveX = wall.X + wall.W - r.X
			}
		}
	} else if moveX > 0 {
		switch position {
		case 3: // top-right, moving diagonally
			tmp.X += moveX
			tmp.Y += moveY
			if common.Touches(tmp, wall) && l.TileAt(x, y+1) != common.TileWall && moveY < 0 {
				moveY = wall.Y + wall.H - r.Y
			}
		case 6: // right
			tmp.X += moveX
			if common.Touches(tmp, wall) {
				moveX = wall.X - (r.X + r.W)
			}
		case 9: // bottom-right, approached from the left
			tmp.X += moveX
			if common.Touches(tmp, wall) && wall.Y < tmp.Y+tmp.H {
				moveX = wall.X - (r.X + r.W)
			}
		}
	}

	tmp = r
	if moveY < 0 {
		switch position {
		case 2: // top
			tmp.Y += moveY
			if common.Touches(tmp, wall) {
				moveY = wall.Y + wall.H - r.Y
			}
		case 3: // top-right, approached from below
			tmp.Y += moveY
			if common.Touches(tmp, wall) && wall.X < tmp.X+tmp.W {
				moveY = wall.Y + wall.H - r.Y
			}
		}
	} else if moveY > 0 {
		switch position {
		case 7: // bottom-left, moving diagonally
			tmp.X += moveX
			tmp.Y += moveY
			if common.Touches(tmp, wall) && l.TileAt(x+1, y) != common.TileWall && moveX < 0 {
				moveX = wall.X + wall.W - r.X
			}
		case 8: // bottom
			tmp.Y += moveY
			if common.Touches(tmp, wall) {
				moveY = wall.Y - (r.Y + r.H)
			}
		case 9: // bottom-right, from above first, then diagonally
			tmp.Y += moveY
			if common.Touches(tmp, wall) && wall.X < tmp.X+tmp.W {
				moveY = wall.Y - (r.Y + r.H)
				break
			}
			tmp.X += moveX
			if common.Touches(tmp, wall) && l.TileAt(x-1, y) != common.TileWall && moveX > 0 {
				moveX = wall.X - (r.X + r.W)
			}
		}
	}

	return moveX, moveY
}

// clampAxis keeps a span [pos, pos+size] inside [0, limit] after moving.
func clampAxis(pos, size, move, limit int) int {
	next := pos + move
	switch {
	case next <= 0 && move < 0:
		return -pos
	case next+size >= limit && move > 0:
		return limit - (pos + size)
	}
	return move
}

// CollectGoodie picks up the goodie in cell if the player touches it. It
// reports whether a goodie was collected.
func (s *State) CollectGoodie(cell common.Cell) bool {
	i := s.Goodies.Find(cell)
	if i < 0 {
		return false
	}
	if !common.Touches(s.Player.Rect, s.Goodies[i].Rect) {
		return false
	}

	s.Goodies.Remove(i)
	s.Level.SetTile(cell.X, cell.Y, common.TileFloor)

	points := s.Rules.GoodiePoints()
	s.Events.Push(Event{Kind: EventGoodiePicked, Cell: cell, Points: points})
	s.AddScore(points)

	if len(s.Goodies) == 0 {
		s.UnlockExit()
	}
	return true
}

// UnlockExit opens the exit door. Only the first call after the goodies
// run out changes anything.
func (s *State) UnlockExit() bool {
	if !s.Level.Unlock() {
		return false
	}
	cell, _ := s.Level.Exit()
	s.Events.Push(Event{Kind: EventExitUnlocked, Cell: cell})
	s.Log.Info("exit unlocked", zap.Int("x", cell.X), zap.Int("y", cell.Y))
	return true
}
