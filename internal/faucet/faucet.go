// Package faucet splits funds from a local development account into many
// small coins, giving the merger something to merge.
package faucet

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/coinmerger-backend/internal/env"
	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/goodnatureofminers/coinmerger-backend/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	// DefaultAmount is the value of one drip in base units.
	DefaultAmount uint64 = 1_000_000
	// DefaultCount is the number of coins one request creates.
	DefaultCount = 10
	// MaxCount caps the coins created by one request.
	MaxCount = 500
	// DefaultWorkers is the number of transfers in flight.
	DefaultWorkers = 4
)

var (
	// ErrNotLocal is returned outside the local environment.
	ErrNotLocal = errors.New("faucet is only available on a local node")
	// ErrInvalidRequest is returned for a bad amount, count or recipient.
	ErrInvalidRequest = errors.New("invalid faucet request")
)

// Faucet funds an address from a configured local account.
type Faucet struct {
	endpoint env.Endpoint
	account  model.Address
	transfer Transferer
	assets   AssetSource
	balance  BalanceRefresher
	workers  int
	logger   *zap.Logger
}

// New builds a Faucet paying from account. balance may be nil.
func New(
	endpoint env.Endpoint,
	account model.Address,
	transfer Transferer,
	assets AssetSource,
	balance BalanceRefresher,
	workers int,
	logger *zap.Logger,
) (*Faucet, error) {
	if account == "" {
		return nil, errors.New("faucet account is required")
	}
	if transfer == nil || assets == nil {
		return nil, errors.New("faucet transferer and asset source are required")
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Faucet{
		endpoint: endpoint,
		account:  account,
		transfer: transfer,
		assets:   assets,
		balance:  balance,
		workers:  workers,
		logger:   logger.Named("faucet"),
	}, nil
}

// Enabled reports whether the faucet may be used in this environment.
func (f *Faucet) Enabled() bool {
	return f != nil && f.endpoint.IsLocal()
}

// Drip sends count transfers of amount base asset to to and returns the
// transaction ids in send order. The first failed transfer stops the rest.
func (f *Faucet) Drip(ctx context.Context, to model.Address, amount model.Amount, count int) ([]model.TxID, error) {
	if !f.Enabled() {
		return nil, ErrNotLocal
	}
	switch {
	case to == "":
		return nil, fmt.Errorf("%w: empty recipient", ErrInvalidRequest)
	case amount.Sign() <= 0:
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	case count <= 0 || count > MaxCount:
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidRequest, MaxCount)
	}

	asset, err := f.assets.BaseAssetID(ctx)
	if err != nil {
		return nil, fmt.Errorf("base asset id: %w", err)
	}

	logger := f.logger.With(
		zap.String("to", string(to)),
		zap.Stringer("amount", amount),
		zap.Int("count", count),
	)
	logger.Info("faucet drip started")

	drips := make([]int, count)
	ids, err := workerpool.Map(ctx, f.workers, drips, func(ctx context.Context, _ int) (model.TxID, error) {
		return f.transfer.Transfer(ctx, f.account, to, amount, asset)
	})
	if err != nil {
		logger.Error("faucet drip failed", zap.Error(err))
		return nil, fmt.Errorf("transfer: %w", err)
	}
	logger.Info("faucet drip finished")

	if f.balance != nil {
		if err := f.balance.RefetchBalance(ctx); err != nil {
			logger.Warn("refresh balance after drip failed", zap.Error(err))
		}
	}
	return ids, nil
}
