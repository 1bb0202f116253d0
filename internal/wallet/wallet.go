// Package wallet binds a connected account to the node and the wallet connector.
package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/clock"
	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"go.uber.org/zap"
)

const statusPollInterval = time.Second

// Wallet is a transaction-capable view of one account.
type Wallet struct {
	address      model.Address
	provider     Provider
	connector    Connector
	logger       *zap.Logger
	sleep        func(context.Context, time.Duration) error
	pollInterval time.Duration
}

// New returns a Wallet for address.
func New(address model.Address, provider Provider, connector Connector, logger *zap.Logger) *Wallet {
	return &Wallet{
		address:      address,
		provider:     provider,
		connector:    connector,
		logger:       logger.With(zap.String("address", string(address))),
		sleep:        clock.SleepWithContext,
		pollInterval: statusPollInterval,
	}
}

// Address returns the account address.
func (w *Wallet) Address() model.Address {
	return w.address
}

// BaseAssetID returns the chain's base asset.
func (w *Wallet) BaseAssetID(ctx context.Context) (model.AssetID, error) {
	return w.provider.BaseAssetID(ctx)
}

// ChainParameters returns the chain's consensus parameters.
func (w *Wallet) ChainParameters(ctx context.Context) (model.ChainParameters, error) {
	return w.provider.ChainParameters(ctx)
}

// Coins lists the account's coins of asset; first <= 0 lists all.
func (w *Wallet) Coins(ctx context.Context, asset model.AssetID, first int) ([]model.Coin, error) {
	return w.provider.Coins(ctx, w.address, asset, first)
}

// Balance returns the account's total amount of asset.
func (w *Wallet) Balance(ctx context.Context, asset model.AssetID) (model.Amount, error) {
	return w.provider.Balance(ctx, w.address, asset)
}

// TransactionCost estimates gas and fee for tx.
func (w *Wallet) TransactionCost(ctx context.Context, tx *model.TransactionRequest) (model.TransactionCost, error) {
	return w.connector.TransactionCost(ctx, w.address, tx)
}

// Fund attaches the resources needed to pay cost and returns the funded request.
func (w *Wallet) Fund(ctx context.Context, tx *model.TransactionRequest, cost model.TransactionCost) (*model.TransactionRequest, error) {
	return w.connector.Fund(ctx, w.address, tx, cost)
}

// SendTransaction signs and submits tx.
func (w *Wallet) SendTransaction(ctx context.Context, tx *model.TransactionRequest) (model.TxID, error) {
	return w.connector.SendTransaction(ctx, w.address, tx)
}

// WaitForResult blocks until the transaction reaches a final status. A
// failed or squeezed out transaction is reported as model.ErrTransactionFailed.
func (w *Wallet) WaitForResult(ctx context.Context, id model.TxID) (model.TransactionResult, error) {
	for {
		result, err := w.provider.TransactionStatus(ctx, id)
		if err != nil {
			return model.TransactionResult{}, err
		}
		if result.Status.Final() {
			if result.Status != model.TxStatusSuccess {
				return result, fmt.Errorf("%w: %s %s", model.ErrTransactionFailed, result.Status, result.Reason)
			}
			return result, nil
		}

		w.logger.Debug("transaction pending", zap.String("tx_id", string(id)), zap.String("status", string(result.Status)))
		if err := w.sleep(ctx, w.pollInterval); err != nil {
			return model.TransactionResult{}, err
		}
	}
}
