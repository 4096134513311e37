package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Stick deflection past stickFull moves at full speed, past stickHalf at
// half speed.
const (
	stickFull = 16000.0 / 32768.0
	stickHalf = 6400.0 / 32768.0
)

// Input turns key and gamepad edges into the player's signed speeds.
// DirX and DirY only change on a press, a release or a stick bucket change,
// so a held key keeps its direction until something new happens.
type Input struct {
	Speed int
	DirX  int
	DirY  int

	Pause      bool
	Fullscreen bool
	Quit       bool

	stickX int
	stickY int
}

func NewInput(speed int) *Input {
	return &Input{Speed: speed}
}

type axisBinding struct {
	neg, pos       []ebiten.Key
	padNeg, padPos ebiten.StandardGamepadButton
	stick          ebiten.StandardGamepadAxis
}

var (
	horizontal = axisBinding{
		neg:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		pos:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		padNeg: ebiten.StandardGamepadButtonLeftLeft,
		padPos: ebiten.StandardGamepadButtonLeftRight,
		stick:  ebiten.StandardGamepadAxisLeftStickHorizontal,
	}
	vertical = axisBinding{
		neg:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		pos:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		padNeg: ebiten.StandardGamepadButtonLeftTop,
		padPos: ebiten.StandardGamepadButtonLeftBottom,
		stick:  ebiten.StandardGamepadAxisLeftStickVertical,
	}
)

// Update polls this frame's edges.
func (i *Input) Update() {
	gamepad, hasPad := firstGamepad()

	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.Fullscreen = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(hasPad && inpututil.IsStandardGamepadButtonJustPressed(gamepad, ebiten.StandardGamepadButtonCenterRight))

	i.DirX = i.poll(horizontal, i.DirX, &i.stickX, gamepad, hasPad)
	i.DirY = i.poll(vertical, i.DirY, &i.stickY, gamepad, hasPad)
}

// Reset drops every held direction, e.g. when the game pauses.
func (i *Input) Reset() {
	i.DirX, i.DirY = 0, 0
	i.stickX, i.stickY = 0, 0
}

func (i *Input) poll(b axisBinding, dir int, stick *int, gamepad ebiten.GamepadID, hasPad bool) int {
	var s axisEdges
	for _, k := range b.neg {
		s.negDown = s.negDown || inpututil.IsKeyJustPressed(k)
		s.negUp = s.negUp || inpututil.IsKeyJustReleased(k)
		s.negHeld = s.negHeld || ebiten.IsKeyPressed(k)
	}
	for _, k := range b.pos {
		s.posDown = s.posDown || inpututil.IsKeyJustPressed(k)
		s.posUp = s.posUp || inpututil.IsKeyJustReleased(k)
		s.posHeld = s.posHeld || ebiten.IsKeyPressed(k)
	}
	if hasPad {
		s.negDown = s.negDown || inpututil.IsStandardGamepadButtonJustPressed(gamepad, b.padNeg)
		s.negUp = s.negUp || inpututil.IsStandardGamepadButtonJustReleased(gamepad, b.padNeg)
		s.negHeld = s.negHeld || ebiten.IsStandardGamepadButtonPressed(gamepad, b.padNeg)
		s.posDown = s.posDown || inpututil.IsStandardGamepadButtonJustPressed(gamepad, b.padPos)
		s.posUp = s.posUp || inpututil.IsStandardGamepadButtonJustReleased(gamepad, b.padPos)
		s.posHeld = s.posHeld || ebiten.IsStandardGamepadButtonPressed(gamepad, b.padPos)
	}
	dir = s.apply(dir, i.Speed)

	if hasPad {
		v := stickDir(ebiten.StandardGamepadAxisValue(gamepad, b.stick), i.Speed)
		if v != *stick {
			*stick = v
			dir = v
		}
	}
	return dir
}

func firstGamepad() (ebiten.GamepadID, bool) {
	ids := ebiten.AppendGamepadIDs(nil)
	for _, id := range ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

// axisEdges is one frame of key state along a single axis.
type axisEdges struct {
	negDown, posDown bool
	negUp, posUp     bool
	negHeld, posHeld bool
}

// apply returns the signed speed after this frame's edges. A press takes
// over the axis; releasing a key falls back to the opposite key if it is
// still held. A key released while another key bound to the same side is
// held counts as no release.
func (e axisEdges) apply(dir, speed int) int {
	if e.negDown {
		dir = -speed
	}
	if e.posDown {
		dir = speed
	}
	if e.negUp && !e.negHeld {
		dir = 0
		if e.posHeld {
			dir = speed
		}
	}
	if e.posUp && !e.posHeld {
		dir = 0
		if e.negHeld {
			dir = -speed
		}
	}
	return dir
}

// stickDir buckets a stick value in [-1, 1] into 0, half or full speed.
func stickDir(v float64, speed int) int {
	switch a := math.Abs(v); {
	case a > stickFull:
		return sign(v) * speed
	case a > stickHalf:
		return sign(v) * (speed / 2)
	}
	return 0
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
