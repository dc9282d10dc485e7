package main

import (
	"os"

	"github.com/tomz197/asteroidy/internal/config"
	"github.com/tomz197/asteroidy/internal/desktop"
	"github.com/tomz197/asteroidy/internal/logging"
)

func main() {
	logger := logging.New(os.Stderr, "desktop")

	tuning, err := config.Load()
	if err != nil {
		logger.Warn("ignoring invalid settings", "err", err)
	}

	logger.Info("opening window", "width", config.ViewWidth, "height", config.ViewHeight, "tps", tuning.TargetFPS)
	if err := desktop.Run(tuning, logger); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
