// Package desktop runs a session in a window using ebiten. Ebiten's Update is
// the update phase and Draw the render phase; Layout supplies the viewport.
package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/input"
	"github.com/tomz197/asteroidy/internal/loop"
	"github.com/tomz197/asteroidy/internal/object"
	"github.com/tomz197/asteroidy/internal/physics"
)

var (
	background    = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	shipColor     = color.RGBA{R: 0xe0, G: 0xe8, B: 0xff, A: 0xff}
	rocketColor   = color.RGBA{R: 0xff, G: 0xa0, B: 0x30, A: 0xff}
	strokeWidth   = float32(1.5)
	defaultLayout = object.Viewport{Width: config.ViewWidth, Height: config.ViewHeight}
)

// Game adapts a Session to ebiten.Game.
type Game struct {
	session  *loop.Session
	keys     KeySource
	tracker  *keyTracker
	viewport object.Viewport
	logger   *log.Logger
	worldBuf []physics.Vector2
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game reading the keyboard through ebiten.
func NewGame(t config.Tuning, logger *log.Logger) *Game {
	return newGame(t, ebitenKeys{}, logger)
}

func newGame(t config.Tuning, keys KeySource, logger *log.Logger) *Game {
	return &Game{
		session:  loop.NewSession(t),
		keys:     keys,
		tracker:  newKeyTracker(),
		viewport: defaultLayout,
		logger:   logger,
	}
}

// Session returns the session being played.
func (g *Game) Session() *loop.Session {
	return g.session
}

// Update runs one fixed tick. It returns ebiten.Termination when quit is pressed.
func (g *Game) Update() error {
	events := g.tracker.poll(g.keys)
	if input.QuitRequested(events) {
		g.logger.Info("quit requested", "ticks", g.session.Ticks())
		return ebiten.Termination
	}
	g.session.Apply(events)

	t := g.session.Tuning
	dt := loop.ClampDelta(time.Second/time.Duration(t.TargetFPS), t.MaxFrameTime)
	res := g.session.Step(dt, g.session.Input, g.viewport)
	if res.Spawned || res.Pruned > 0 {
		g.logger.Debug("projectiles changed",
			"fired", res.Spawned, "pruned", res.Pruned, "live", len(g.session.Player.Projectiles))
	}
	return nil
}

// Draw renders the last completed tick.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for i, r := range g.session.Renderables() {
		clr := rocketColor
		if i == 0 {
			clr = shipColor
		}
		g.worldBuf = object.WorldShape(g.worldBuf[:0], r)
		strokePolygon(screen, g.worldBuf, clr)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Rockets: %d  TPS: %0.0f",
		len(g.session.Player.Projectiles), ebiten.ActualTPS()))
}

// Layout uses the window size as the playfield, so resizing the window
// resizes the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return int(g.viewport.Width), int(g.viewport.Height)
	}
	g.viewport = object.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

func strokePolygon(dst *ebiten.Image, pts []physics.Vector2, clr color.Color) {
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, clr, true)
	}
}

// Run opens the window and blocks until it is closed or quit is pressed.
func Run(t config.Tuning, logger *log.Logger) error {
	ebiten.SetWindowSize(config.ViewWidth, config.ViewHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(t.TargetFPS)

	if err := ebiten.RunGame(NewGame(t, logger)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
