package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/spookymaze/common"
	"github.com/milk9111/spookymaze/obj"
	"github.com/milk9111/spookymaze/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	floorColor  = color.RGBA{R: 0x18, G: 0x14, B: 0x1c, A: 0xff}
	wallColor   = colornames.Whitesmoke
	markColor   = colornames.Dimgray
	doorColor   = colornames.Saddlebrown
	exitColor   = colornames.Limegreen
	goodieColor = colornames.Gold
	playerColor = colornames.Dodgerblue
	zombieColor = colornames.Crimson
	pathColor   = color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0x60}
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// drawWorld renders the part of the level the camera sees.
func drawWorld(screen *ebiten.Image, st *obj.State, debug bool) {
	screen.Fill(floorColor)
	if st == nil || st.Level == nil {
		return
	}
	cam := st.Camera

	x0, y0 := cam.X/common.TileSize, cam.Y/common.TileSize
	x1, y1 := (cam.X+cam.W)/common.TileSize, (cam.Y+cam.H)/common.TileSize
	for y := max(y0, 0); y <= min(y1, common.LevelH-1); y++ {
		for x := max(x0, 0); x <= min(x1, common.LevelW-1); x++ {
			var c color.Color
			switch st.Level.TileAt(x, y) {
			case common.TileWall:
				c = wallColor
			case common.TileUnwalkable:
				c = markColor
			case common.TileDoor:
				c = doorColor
			case common.TileExit:
				c = exitColor
			default:
				continue
			}
			fillRect(screen, cam, st.Level.WallAt(x, y), c)
		}
	}

	for _, g := range st.Goodies {
		if cam.Sees(g.Rect) {
			fillRect(screen, cam, g.Rect, goodieColor)
		}
	}
	for _, z := range st.Zombies {
		if debug {
			drawPath(screen, cam, z)
		}
		if cam.Sees(z.Rect) {
			fillRect(screen, cam, z.Rect, zombieColor)
		}
	}
	fillRect(screen, cam, st.Player.Rect, playerColor)
}

func drawPath(screen *ebiten.Image, cam *obj.Camera, z *obj.Zombie) {
	const size = common.TileSize / 5
	for _, c := range z.Waypoints() {
		x, y := c.Origin()
		r := common.Rect{X: x + (common.TileSize-size)/2, Y: y + (common.TileSize-size)/2, W: size, H: size}
		if cam.Sees(r) {
			fillRect(screen, cam, r, pathColor)
		}
	}
}

func fillRect(screen *ebiten.Image, cam *obj.Camera, r common.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	x, y := cam.ToScreen(r.X, r.Y)
	vector.FillRect(screen, float32(x), float32(y), float32(r.W), float32(r.H), c, false)
}

// hudText is the status line drawn over the level.
func hudText(s *system.Session) string {
	st := s.State()
	return fmt.Sprintf("SCORE %06d   LIVES %d   LEVEL %d   TIME %02d   GOODIES %d",
		st.Score, st.Player.Lives, s.Level, s.TimeLeft, len(st.Goodies))
}

func drawHUD(screen *ebiten.Image, s *system.Session) {
	w := screen.Bounds().Dx()
	vector.FillRect(screen, 0, 0, float32(w), 20, color.RGBA{A: 0xa0}, false)

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(6, 4)
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, hudText(s), hudFace, op)
}
