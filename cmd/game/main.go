package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/logging"
	"github.com/tomz197/asteroidy/internal/loop"
	"golang.org/x/term"
)

func main() {
	// The terminal is the game screen, so logs go to a file if requested.
	logger, closeLog, err := logging.NewFile(config.GetEnv("ASTEROIDY_LOG_FILE", ""), "game")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	tuning, err := config.Load()
	if err != nil {
		logger.Warn("ignoring invalid settings", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(ctx, reader, os.Stdout, loop.Options{Tuning: tuning, Logger: logger}); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
