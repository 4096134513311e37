package obj

import "github.com/milk9111/spookymaze/common"

// Camera is the viewport into the level, in level pixels.
type Camera struct {
	X, Y int
	W, H int
}

// NewCamera creates a camera with the given screen size.
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{W: screenW, H: screenH}
}

// SetScreenSize updates the viewport size.
func (c *Camera) SetScreenSize(w, h int) {
	if c == nil || w <= 0 || h <= 0 {
		return
	}
	c.W = w
	c.H = h
}

// Follow centres the view on target and keeps it inside the level.
func (c *Camera) Follow(target common.Rect) {
	if c == nil {
		return
	}
	c.X = target.X + common.EntitySize/2 - c.W/2
	c.Y = target.Y + common.EntitySize/2 - c.H/2

	maxX := common.LevelW*common.TileSize - c.W
	maxY := common.LevelH*common.TileSize - c.H
	c.X = common.Clamp(c.X, 0, max(maxX, 0))
	c.Y = common.Clamp(c.Y, 0, max(maxY, 0))
}

// ToScreen converts a level-space position into view space.
func (c *Camera) ToScreen(x, y int) (int, int) {
	if c == nil {
		return x, y
	}
	return x - c.X, y - c.Y
}

// Sees reports whether r intersects the viewport.
func (c *Camera) Sees(r common.Rect) bool {
	if c == nil {
		return true
	}
	return common.Overlaps(r, common.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H})
}
