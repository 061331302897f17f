package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/premiumgate/internal/catalog"
	"github.com/dmitrijs2005/premiumgate/internal/client/cli"
	"github.com/dmitrijs2005/premiumgate/internal/client/config"
	"github.com/dmitrijs2005/premiumgate/internal/client/services"
	"github.com/dmitrijs2005/premiumgate/internal/client/storage"
	"github.com/dmitrijs2005/premiumgate/internal/clock"
	"github.com/dmitrijs2005/premiumgate/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	repos, err := storage.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer repos.Close()

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		if cat, err = catalog.Load(cfg.CatalogFile); err != nil {
			return err
		}
	}

	clk := clock.Real()
	store := services.NewEntitlementStore(repos.Metadata, logger)
	provider := services.NewSimulatedCheckout(clk, cfg.CheckoutDelay, services.RandomFault(cfg.FaultRate))
	workflow := services.NewPurchaseWorkflow(store, provider, clk, logger)

	logger.Debug(ctx, "gate ready", "dsn", cfg.DatabaseDSN, "items", len(cat.Items()), "checkout_delay", cfg.CheckoutDelay)

	app := cli.NewApp(cat, workflow, clk, logger, os.Stdout)

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.Run(ctx, os.Stdin)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		// A blocked stdin read cannot be interrupted; a checkout in flight
		// has already been cancelled through ctx.
		logger.Info(context.Background(), "interrupted, shutting down")
	}
	return nil
}
