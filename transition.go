package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/spookymaze/system"
)

const fadeFrames = 20

type fadePhase int

const (
	fadeIdle fadePhase = iota
	fadeOut
	fadeIn
)

// Transition fades to black when a level ends, applies the outcome while
// the screen is dark and fades back in on the next level.
type Transition struct {
	Duration int
	Outcome  system.Outcome

	phase  fadePhase
	frames int
	// OnDark runs once the screen is fully black.
	OnDark func(system.Outcome)
}

func NewTransition(onDark func(system.Outcome)) *Transition {
	return &Transition{Duration: fadeFrames, OnDark: onDark}
}

func (t *Transition) Active() bool {
	return t.phase != fadeIdle
}

// Start begins a fade for o. A fade already running is left alone.
func (t *Transition) Start(o system.Outcome) {
	if t.Active() {
		return
	}
	t.Outcome = o
	t.phase = fadeOut
	t.frames = 0
}

// Update advances one frame and reports whether the world should stay
// frozen.
func (t *Transition) Update() bool {
	if !t.Active() {
		return false
	}
	t.frames++
	if t.frames < t.Duration {
		return true
	}
	t.frames = 0
	switch t.phase {
	case fadeOut:
		t.phase = fadeIn
		if t.OnDark != nil {
			t.OnDark(t.Outcome)
		}
	case fadeIn:
		t.phase = fadeIdle
		t.Outcome = system.Playing
	}
	return true
}

// Alpha is the overlay opacity in [0, 1].
func (t *Transition) Alpha() float64 {
	if t.Duration <= 0 {
		return 0
	}
	p := min(float64(t.frames)/float64(t.Duration), 1)
	switch t.phase {
	case fadeOut:
		return p
	case fadeIn:
		return 1 - p
	}
	return 0
}

func (t *Transition) Draw(screen *ebiten.Image) {
	a := t.Alpha()
	if a <= 0 {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{A: uint8(a * 0xff)}, false)
}
