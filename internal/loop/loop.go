// Package loop drives a play session: it owns the frame loop, feeds the
// simulation step with input and time, and draws the result to a terminal.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/draw"
	"github.com/tomz197/asteroidy/internal/input"
	"github.com/tomz197/asteroidy/internal/object"
	"github.com/tomz197/asteroidy/internal/physics"
)

// Options configures a terminal runner.
type Options struct {
	Tuning       config.Tuning
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Logger       *log.Logger       // Defaults to a discarding logger
	IdleTimeout  time.Duration     // Stop after this long without input; 0 disables
}

// Runner renders a single session to a terminal and reads its keyboard.
type Runner struct {
	session      *Session
	viewport     object.Viewport
	stream       *input.Stream
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	idleTimeout  time.Duration
	worldBuf     []physics.Vector2
	shapeBuf     []draw.Point
}

// NewRunner creates a runner reading keys from r and drawing to w.
func NewRunner(r *bufio.Reader, w io.Writer, opts Options) *Runner {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Tuning.TargetFPS <= 0 {
		opts.Tuning = config.Default()
	}

	viewport := object.Viewport{Width: config.ViewWidth, Height: config.ViewHeight}
	termWidth, termHeight, _ := termSizeFunc()
	width, height, offsetCol, offsetRow := draw.FitCanvas(termWidth, termHeight, viewport.Width, viewport.Height)
	canvas := draw.NewScaledCanvas(width, height, viewport.Width, viewport.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Runner{
		session:      NewSession(opts.Tuning),
		viewport:     viewport,
		stream:       input.StartStream(r),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		termSizeFunc: termSizeFunc,
		logger:       logger,
		idleTimeout:  opts.IdleTimeout,
	}
}

// Run starts the game loop with the Input → Update → Draw cycle. It returns
// when the player quits, the input ends, the session idles out or ctx is done.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return NewRunner(r, w, opts).Run(ctx)
}

// Run blocks until the session ends.
func (rn *Runner) Run(ctx context.Context) error {
	defer rn.stream.Stop()
	draw.HideCursor(rn.writer)
	defer draw.ShowCursor(rn.writer)
	draw.ClearScreen(rn.writer)

	tuning := rn.session.Tuning
	frameTime := tuning.FrameTime()
	lastTime := time.Now()

	for {
		frameStart := time.Now()
		dt := ClampDelta(frameStart.Sub(lastTime), tuning.MaxFrameTime)
		lastTime = frameStart

		if err := ctx.Err(); err != nil {
			rn.logger.Debug("session cancelled", "ticks", rn.session.Ticks())
			break
		}

		// ===== INPUT PHASE =====
		events := rn.stream.Poll(frameStart)
		if input.QuitRequested(events) || rn.stream.Closed() {
			rn.logger.Debug("session ended by player", "ticks", rn.session.Ticks())
			break
		}
		if rn.idleTimeout > 0 && frameStart.Sub(rn.stream.LastActivity()) > rn.idleTimeout {
			rn.logger.Info("session idle, disconnecting", "idle", rn.idleTimeout)
			break
		}
		rn.session.Apply(events)

		// ===== UPDATE PHASE =====
		rn.updateScreen()
		res := rn.session.Step(dt, rn.session.Input, rn.viewport)
		if res.Spawned || res.Pruned > 0 {
			rn.logger.Debug("projectiles changed",
				"fired", res.Spawned, "pruned", res.Pruned, "live", len(rn.session.Player.Projectiles))
		}

		// ===== DRAW PHASE =====
		if err := rn.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	draw.ClearScreen(rn.writer)
	return nil
}

// Session returns the session being played.
func (rn *Runner) Session() *Session {
	return rn.session
}

// updateScreen refits the canvas when the terminal is resized.
func (rn *Runner) updateScreen() {
	termWidth, termHeight, err := rn.termSizeFunc()
	if err != nil {
		return
	}
	width, height, offsetCol, offsetRow := draw.FitCanvas(termWidth, termHeight, rn.viewport.Width, rn.viewport.Height)
	if width == rn.canvas.TerminalWidth() && height == rn.canvas.TerminalHeight() &&
		offsetCol == rn.canvas.OffsetCol() && offsetRow == rn.canvas.OffsetRow() {
		return
	}
	rn.canvas.Resize(width, height)
	rn.canvas.SetOffset(offsetCol, offsetRow)
	rn.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// drawFrame draws every renderable and the HUD, then flushes one frame.
func (rn *Runner) drawFrame() error {
	rn.canvas.Clear()

	for _, r := range rn.session.Renderables() {
		rn.worldBuf = object.WorldShape(rn.worldBuf[:0], r)
		rn.shapeBuf = rn.shapeBuf[:0]
		for _, v := range rn.worldBuf {
			rn.shapeBuf = append(rn.shapeBuf, draw.Point{X: v.X, Y: v.Y})
		}
		rn.canvas.DrawPolygon(rn.shapeBuf, true)
	}

	rn.chunkWriter.Clear()
	rn.canvas.Render(rn.chunkWriter)
	rn.canvas.RenderBorder(rn.chunkWriter)
	drawHUD(rn.chunkWriter, rn.canvas, rn.session)

	return rn.chunkWriter.Flush()
}
