package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/lox/randkit/internal/service"
)

// ServeCmd runs the websocket draw service.
type ServeCmd struct {
	Listen string `help:"Listen address (overrides config file)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	logger := setupLogger(g.Debug)

	cfg, err := service.LoadConfig(g.Config)
	if err != nil {
		return err
	}
	if c.Listen != "" {
		cfg.Listen = c.Listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := service.NewServer(cfg, logger)
	return srv.Run(ctx)
}
