package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ByeoliKim/star-shop/internal/pkg/logging"
	"github.com/ByeoliKim/star-shop/internal/store/bootstrap"
	"golang.org/x/sync/errgroup"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		defaultLogger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewStoreApp(cfg, defaultLogger)

	group, groupCtx := errgroup.WithContext(mainCtx)

	group.Go(func() error {
		return app.Run(groupCtx)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		app.Shutdown()
		return nil
	})

	if err := group.Wait(); err != nil {
		defaultLogger.Error("store app finished with error", "error", err.Error())
		os.Exit(1)
	}
}
