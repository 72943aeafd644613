package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/levenlabs/go-lflag"
	"github.com/solarquote/solarquote/pkg/log"
	"github.com/solarquote/solarquote/pkg/market"
	"github.com/solarquote/solarquote/pkg/server"
	"github.com/solarquote/solarquote/pkg/tariff"
)

func main() {
	// init packages
	c := tariff.Configured()
	p := market.Configured()

	// init server
	srv := server.Configured(c, p)

	// parse flags
	lflag.Configure()

	// lflag automatically sets llog's level, but we need to set the slog level
	level := log.ConfigureFromFlags()
	slog.Debug("logger configured", slog.String("level", level.String()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run will block until context is canceled or error happens
	if err := srv.Run(ctx); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "server failed", slog.Any("error", err))
		os.Exit(1)
	}
	log.Ctx(ctx).InfoContext(ctx, "server exited cleanly")
}
