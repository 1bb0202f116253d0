// Package app wires the coin merger components from configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinmerger-backend/internal/connector"
	"github.com/goodnatureofminers/coinmerger-backend/internal/env"
	"github.com/goodnatureofminers/coinmerger-backend/internal/faucet"
	"github.com/goodnatureofminers/coinmerger-backend/internal/merge"
	"github.com/goodnatureofminers/coinmerger-backend/internal/metrics"
	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/goodnatureofminers/coinmerger-backend/internal/notify"
	"github.com/goodnatureofminers/coinmerger-backend/internal/poller"
	"github.com/goodnatureofminers/coinmerger-backend/internal/provider"
	"github.com/goodnatureofminers/coinmerger-backend/internal/session"
	"github.com/goodnatureofminers/coinmerger-backend/internal/wallet"
)

const closeTimeout = 5 * time.Second

// Config holds the settings shared by every binary.
type Config struct {
	Environment   string        `long:"environment" env:"COIN_MERGER_ENVIRONMENT" description:"network environment: local, testnet or mainnet" default:"local"`
	NodePort      int           `long:"node-port" env:"COIN_MERGER_NODE_PORT" description:"port of the local node" default:"4000"`
	ConnectorURL  string        `long:"connector-url" env:"COIN_MERGER_CONNECTOR_URL" description:"wallet connector JSON-RPC URL" default:"http://127.0.0.1:4100/rpc"`
	FaucetAccount string        `long:"faucet-account" env:"COIN_MERGER_FAUCET_ACCOUNT" description:"local account paying faucet drips, empty disables the faucet"`
	FaucetWorkers int           `long:"faucet-workers" env:"COIN_MERGER_FAUCET_WORKERS" description:"concurrent faucet transfers" default:"4"`
	RPCTimeout    time.Duration `long:"rpc-timeout" env:"COIN_MERGER_RPC_TIMEOUT" description:"timeout of one node or connector request" default:"30s"`
	ProviderRPS   int           `long:"provider-rps" env:"COIN_MERGER_PROVIDER_RPS" description:"node requests per second, 0 for unlimited" default:"20"`
	PollInterval  time.Duration `long:"poll-interval" env:"COIN_MERGER_POLL_INTERVAL" description:"coin list refresh period" default:"2.5s"`
	Notifications int           `long:"notifications" env:"COIN_MERGER_NOTIFICATIONS" description:"notifications kept for the API" default:"100"`
}

// Service is the wired set of components.
type Service struct {
	Endpoint env.Endpoint
	Session  *session.Session
	Workflow *merge.Workflow
	Feed     *notify.Feed

	// Faucet is nil unless the environment is local and an account is set.
	Faucet *faucet.Faucet

	logger *zap.Logger
}

// New resolves the environment and builds every component.
func New(cfg Config, logger *zap.Logger) (*Service, error) {
	endpoint := env.Resolve(cfg.Environment, cfg.NodePort)
	logger = logger.With(zap.String("environment", string(endpoint.Environment)))

	prov := provider.New(endpoint.ProviderURL, cfg.RPCTimeout, cfg.ProviderRPS,
		metrics.NewRPCClient("provider", endpoint.Environment))
	conn := connector.New(cfg.ConnectorURL, cfg.RPCTimeout,
		metrics.NewRPCClient("connector", endpoint.Environment))

	feed := notify.NewFeed(cfg.Notifications, endpoint.TransactionLink)
	notifier := notify.Multi{feed, notify.NewLog(logger, endpoint.TransactionLink)}

	pollMetrics := metrics.NewCoinPoller(endpoint.Environment)
	sess, err := session.New(endpoint, conn,
		func(address model.Address) session.Wallet {
			return wallet.New(address, prov, conn, logger.Named("wallet"))
		},
		func(src poller.Source) (session.Poller, error) {
			p, err := poller.New(src, pollMetrics, logger.Named("poller"), cfg.PollInterval)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("init session: %w", err)
	}

	workflow, err := merge.NewWorkflow(notifier, sess, metrics.NewMergeWorkflow(endpoint.Environment), logger.Named("merge"))
	if err != nil {
		return nil, fmt.Errorf("init merge workflow: %w", err)
	}

	svc := &Service{
		Endpoint: endpoint,
		Session:  sess,
		Workflow: workflow,
		Feed:     feed,
		logger:   logger,
	}
	if endpoint.IsLocal() && cfg.FaucetAccount != "" {
		svc.Faucet, err = faucet.New(endpoint, model.Address(cfg.FaucetAccount), conn, prov, sess, cfg.FaucetWorkers, logger)
		if err != nil {
			return nil, fmt.Errorf("init faucet: %w", err)
		}
	}
	return svc, nil
}

// Close disconnects the wallet if one is connected.
func (s *Service) Close() {
	if !s.Session.IsConnected() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := s.Session.Disconnect(ctx); err != nil {
		s.logger.Warn("disconnect on close failed", zap.Error(err))
	}
}
