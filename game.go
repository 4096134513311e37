package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/spookymaze/prefabs"
	"github.com/milk9111/spookymaze/system"
	"go.uber.org/zap"
)

type Game struct {
	session *system.Session
	input   *Input
	watcher *prefabs.Watcher
	log     *zap.Logger

	width, height int
	debug         bool

	paused   bool
	quit     bool
	pauseUI  *Menu
	overUI   *Menu
	overShow bool
	fade     *Transition
	err      error

	last time.Time
}

func NewGame(s *system.Session, width, height int, debug bool, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		session: s,
		input:   NewInput(s.Specs.Player.Speed),
		log:     log,
		width:   width,
		height:  height,
		debug:   debug,
	}
	g.pauseUI = NewPauseUI(g)
	g.overUI = NewGameOverUI(g)
	g.fade = NewTransition(g.endLevel)
	s.State().Camera.SetScreenSize(width, height)
	return g
}

// WatchPrefabs hot reloads tuning and rules while the game runs.
func (g *Game) WatchPrefabs(w *prefabs.Watcher) {
	g.watcher = w
}

func (g *Game) Update() error {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	delta := frameMS(now.Sub(g.last))
	g.last = now

	g.input.Update()
	if g.input.Quit || g.quit {
		return ebiten.Termination
	}
	if g.input.Fullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.reloadPrefabs()

	if g.fade.Update() {
		return g.err
	}
	if g.session.GameOver {
		if !g.overShow {
			g.overShow = true
			g.overUI.SetDetail(fmt.Sprintf("Score %d on level %d", g.session.State().Score, g.session.Level))
		}
		g.overUI.Update()
		return nil
	}
	if g.input.Pause {
		if g.paused {
			g.resume()
		} else {
			g.paused = true
			g.input.Reset()
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	st := g.session.State()
	st.Player.DirX, st.Player.DirY = g.input.DirX, g.input.DirY

	outcome := g.session.Tick(delta)
	for _, evt := range g.session.Events {
		g.log.Debug("event", zap.Stringer("kind", evt.Kind), zap.Int("x", evt.Cell.X), zap.Int("y", evt.Cell.Y))
	}
	if outcome != system.Playing {
		g.fade.Start(outcome)
	}
	return nil
}

// endLevel runs while the screen is black between levels.
func (g *Game) endLevel(o system.Outcome) {
	if err := g.session.End(o); err != nil {
		g.err = fmt.Errorf("end level: %w", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.session.State(), g.debug)
	drawHUD(screen, g.session)
	g.fade.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()), 6, 22)
	}

	switch {
	case g.session.GameOver:
		g.overUI.Draw(screen)
	case g.paused:
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) resume() {
	g.paused = false
}

func (g *Game) requestQuit() {
	g.quit = true
}

func (g *Game) restart() {
	if err := g.session.Start(); err != nil {
		g.log.Error("restart failed", zap.Error(err))
		g.quit = true
		return
	}
	g.overShow = false
	g.input.Reset()
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Poll() {
		if err := g.session.Reload(c); err != nil {
			g.log.Warn("prefab reload failed", zap.String("file", c.Name), zap.Error(err))
			continue
		}
		if c.Name == prefabs.PlayerFile {
			g.input.Speed = g.session.Specs.Player.Speed
		}
	}
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			g.log.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

// frameMS converts a frame duration into whole milliseconds. Clock jumps
// backwards count as an empty frame.
func frameMS(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	ms := d.Milliseconds()
	if ms > int64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(ms)
}
