package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlogging "github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/draw"
	"github.com/tomz197/asteroidy/internal/logging"
	"github.com/tomz197/asteroidy/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "keys/host_key"
)

func main() {
	logger := logging.New(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	tuning, err := config.Load()
	if err != nil {
		logger.Warn("ignoring invalid settings", "err", err)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	// Cancelled on shutdown so running sessions end their loops.
	shutdownCtx, shutdown := context.WithCancel(context.Background())
	defer shutdown()

	games := &gameHandler{
		tuning:   tuning,
		logger:   logger,
		shutdown: shutdownCtx,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			wishlogging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	shutdown()
	games.wait(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one independent session per SSH connection.
type gameHandler struct {
	tuning   config.Tuning
	logger   *log.Logger
	shutdown context.Context
	active   sync.WaitGroup
}

// middleware handles SSH sessions and runs the game.
func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.active.Add(1)
		defer h.active.Done()

		logger := h.logger.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("New game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(h.shutdown, cancel)
		defer stop()

		err := loop.Run(ctx, bufio.NewReader(sess), sess, loop.Options{
			Tuning:       h.tuning,
			TermSizeFunc: sizeTracker.getSize,
			Logger:       logger,
			IdleTimeout:  config.InactivityDisconnectUser * time.Second,
		})
		if err != nil {
			logger.Error("Game error", "err", err)
		}
		if h.shutdown.Err() != nil {
			fmt.Fprintln(sess, "Server is shutting down. Thanks for playing!")
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// wait blocks until every session has ended or timeout passes.
func (h *gameHandler) wait(timeout time.Duration) {
	finished := make(chan struct{})
	go func() {
		h.active.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(timeout):
		h.logger.Warn("sessions still running after shutdown timeout", "timeout", timeout)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
