package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinmerger-backend/internal/app"
	"github.com/goodnatureofminers/coinmerger-backend/internal/clock"
	"github.com/goodnatureofminers/coinmerger-backend/internal/session"
)

type config struct {
	app.Config
	CoinsTimeout time.Duration `long:"coins-timeout" env:"COIN_MERGER_COINS_TIMEOUT" description:"how long to wait for the first coin list" default:"30s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("merge coins failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	svc, err := app.New(cfg.Config, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.Session.Connect(ctx); err != nil {
		return err
	}
	if !svc.Session.IsConnectedToCorrectNetwork() {
		return fmt.Errorf("wallet is connected to %s, switch it to %s",
			svc.Session.Network().URL, svc.Endpoint.ProviderURL)
	}
	if err := svc.Session.RefetchBalance(ctx); err != nil {
		return fmt.Errorf("load balance: %w", err)
	}
	if err := waitForCoins(ctx, svc.Session, cfg.CoinsTimeout); err != nil {
		return err
	}

	before := svc.Session.Summary()
	logger.Info("account loaded",
		zap.String("address", before.AddressFormatted),
		zap.String("balance", before.BalanceFormatted+" "+before.Symbol),
		zap.Int("coins", before.Coins),
		zap.Uint64("max_inputs", before.MaxInputs),
	)

	id, err := svc.Session.Merge(ctx, svc.Workflow)
	if err != nil {
		return err
	}
	logger.Info("coins merged", zap.String("tx_id", string(id)), zap.String("link", svc.Endpoint.TransactionLink(id)))
	return nil
}

func waitForCoins(ctx context.Context, sess *session.Session, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	for sess.Coins() == nil {
		if err := clock.SleepWithContext(ctx, 100*time.Millisecond); err != nil {
			return fmt.Errorf("wait for coin list: %w", err)
		}
	}
	return nil
}
