// Package main is the entry point for the scroll scene.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/scrollscene/internal/config"
	"github.com/Faultbox/scrollscene/internal/game"
	"github.com/Faultbox/scrollscene/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Scroll Scene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create scene", zap.Error(err))
		return 1
	}
	defer func() {
		if err := g.Dispose(); err != nil {
			logger.Warn("dispose", zap.Error(err))
		}
	}()

	if err := g.Start(); err != nil {
		logger.Error("main loop error", zap.Error(err))
		return 1
	}

	logger.Info("scene closed normally")
	return 0
}
