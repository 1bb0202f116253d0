// Package poller keeps a fresh view of the connected account's coins.
package poller

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/clock"
	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"go.uber.org/zap"
)

// DefaultInterval is the coin list refresh period.
const DefaultInterval = 2500 * time.Millisecond

// Snapshot is one refresh result. It is never modified after publishing.
type Snapshot struct {
	Coins       []model.Coin
	MaxInputs   uint64
	BaseAssetID model.AssetID
	UpdatedAt   time.Time
}

// Count returns the number of coins, zero for a nil snapshot.
func (s *Snapshot) Count() int {
	if s == nil {
		return 0
	}
	return len(s.Coins)
}

// CoinPoller refreshes the base asset coin list on an interval.
type CoinPoller struct {
	source   Source
	metrics  Metrics
	logger   *zap.Logger
	interval time.Duration
	now      func() time.Time

	latest atomic.Pointer[Snapshot]
}

// New builds a CoinPoller. A non-positive interval means DefaultInterval.
func New(source Source, metrics Metrics, logger *zap.Logger, interval time.Duration) (*CoinPoller, error) {
	if source == nil {
		return nil, errors.New("poller source is required")
	}
	if metrics == nil {
		return nil, errors.New("poller metrics is required")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &CoinPoller{
		source:   source,
		metrics:  metrics,
		logger:   logger,
		interval: interval,
		now:      time.Now,
	}, nil
}

// Run refreshes immediately and then every interval until ctx is canceled.
// Failed refreshes keep the previous snapshot.
func (p *CoinPoller) Run(ctx context.Context) error {
	p.logger.Info("coin poller started", zap.Duration("interval", p.interval))
	err := clock.Tick(ctx, p.interval, func(ctx context.Context) {
		if err := p.Refresh(ctx); err != nil && ctx.Err() == nil {
			p.logger.Warn("refresh coins failed", zap.Error(err))
		}
	})
	p.logger.Info("coin poller stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Refresh reads chain parameters and every base asset coin, then publishes
// a new snapshot.
func (p *CoinPoller) Refresh(ctx context.Context) (err error) {
	started := time.Now()
	coins := 0
	defer func() {
		p.metrics.ObservePoll(err, coins, started)
	}()

	asset, err := p.source.BaseAssetID(ctx)
	if err != nil {
		return fmt.Errorf("base asset id: %w", err)
	}
	params, err := p.source.ChainParameters(ctx)
	if err != nil {
		return fmt.Errorf("chain parameters: %w", err)
	}
	list, err := p.source.Coins(ctx, asset, 0)
	if err != nil {
		return fmt.Errorf("coins: %w", err)
	}
	coins = len(list)

	p.latest.Store(&Snapshot{
		Coins:       list,
		MaxInputs:   params.MaxInputs,
		BaseAssetID: asset,
		UpdatedAt:   p.now(),
	})
	return nil
}

// Snapshot returns the latest published snapshot or nil before the first
// successful refresh.
func (p *CoinPoller) Snapshot() *Snapshot {
	return p.latest.Load()
}
