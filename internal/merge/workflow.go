// Package merge consolidates many small coins of an asset into one coin.
package merge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/goodnatureofminers/coinmerger-backend/pkg/safe"
	"go.uber.org/zap"
)

// FeeBuffer is held back from the merged output so the inputs still cover
// the fee.
const FeeBuffer uint64 = 10_000

// Workflow runs coin merges for a wallet.
type Workflow struct {
	notifier Notifier
	balance  BalanceRefresher
	metrics  Metrics
	logger   *zap.Logger
}

// NewWorkflow builds a Workflow with dependencies.
func NewWorkflow(notifier Notifier, balance BalanceRefresher, metrics Metrics, logger *zap.Logger) (*Workflow, error) {
	if notifier == nil {
		return nil, errors.New("merge notifier is required")
	}
	if metrics == nil {
		return nil, errors.New("merge metrics is required")
	}
	return &Workflow{
		notifier: notifier,
		balance:  balance,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// BuildMergeRequest drafts a transaction spending every coin into a single
// output to owner, worth the coins' total minus FeeBuffer.
func BuildMergeRequest(owner model.Address, asset model.AssetID, coins []model.Coin) (*model.TransactionRequest, error) {
	if len(coins) == 0 {
		return nil, ErrNoCoins
	}
	amount := model.SumCoins(coins).Sub(model.NewAmount(FeeBuffer))
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNonPositiveAmount, amount)
	}

	tx := model.NewScriptTransactionRequest()
	tx.AddCoinOutput(owner, amount, asset)
	for _, c := range coins {
		tx.AddCoinInput(c)
	}
	return tx, nil
}

// checkFunded verifies the funded request still pays the merged output and
// spends every selected coin.
func checkFunded(built, funded *model.TransactionRequest) error {
	want := built.Outputs[0]
	found := false
	for _, out := range funded.Outputs {
		if out.Type == want.Type && out.To == want.To && out.AssetID == want.AssetID && out.Amount.Cmp(want.Amount) == 0 {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: merged output to %s missing", ErrFundedMismatch, want.To)
	}

	spent := make(map[model.UTXOID]struct{}, len(funded.Inputs))
	for _, in := range funded.Inputs {
		spent[in.ID] = struct{}{}
	}
	for _, in := range built.Inputs {
		if _, ok := spent[in.ID]; !ok {
			return fmt.Errorf("%w: coin %s dropped", ErrFundedMismatch, in.ID)
		}
	}
	return nil
}

// Merge consolidates up to maxInputs-1 coins of the base asset. Every failure
// is logged with its cause and reported to the user as ErrorMessage; the
// error is also returned to the caller.
func (w *Workflow) Merge(ctx context.Context, wallet Wallet) (model.TxID, error) {
	started := time.Now()
	inputs := 0
	logger := w.logger.With(zap.String("address", string(wallet.Address())))

	id, err := w.merge(ctx, wallet, logger, &inputs)
	w.metrics.ObserveMerge(Reason(err), inputs, started)
	if err != nil {
		logger.Error("merge coins failed",
			zap.String("reason", Reason(err)),
			zap.String("tx_id", string(id)),
			zap.Error(err),
		)
		w.notifier.Error(ErrorMessage)
		return id, err
	}
	return id, nil
}

func (w *Workflow) merge(ctx context.Context, wallet Wallet, logger *zap.Logger, inputs *int) (model.TxID, error) {
	var asset model.AssetID
	if err := w.step(StepAsset, func() (err error) {
		asset, err = wallet.BaseAssetID(ctx)
		return err
	}); err != nil {
		return "", err
	}

	var params model.ChainParameters
	if err := w.step(StepChain, func() (err error) {
		params, err = wallet.ChainParameters(ctx)
		if err == nil && params.MaxInputs < 2 {
			err = fmt.Errorf("max inputs %d leaves no room to merge", params.MaxInputs)
		}
		return err
	}); err != nil {
		return "", err
	}

	var coins []model.Coin
	if err := w.step(StepFetch, func() error {
		first, err := safe.Int(params.MaxInputs - 1)
		if err != nil {
			return err
		}
		coins, err = wallet.Coins(ctx, asset, first)
		return err
	}); err != nil {
		return "", err
	}
	*inputs = len(coins)

	var tx *model.TransactionRequest
	if err := w.step(StepBuild, func() (err error) {
		tx, err = BuildMergeRequest(wallet.Address(), asset, coins)
		return err
	}); err != nil {
		return "", err
	}
	logger.Info("merging coins",
		zap.Int("coins", len(coins)),
		zap.Uint64("max_inputs", params.MaxInputs),
		zap.Stringer("amount", tx.Outputs[0].Amount),
	)

	var cost model.TransactionCost
	if err := w.step(StepCost, func() (err error) {
		cost, err = wallet.TransactionCost(ctx, tx)
		return err
	}); err != nil {
		return "", err
	}
	tx.ApplyCost(cost)

	var funded *model.TransactionRequest
	if err := w.step(StepFund, func() (err error) {
		funded, err = wallet.Fund(ctx, tx, cost)
		if err != nil {
			return err
		}
		if funded == nil {
			return errors.New("wallet returned no funded transaction")
		}
		if err := checkFunded(tx, funded); err != nil {
			return err
		}
		if uint64(len(funded.Inputs)) >= params.MaxInputs {
			return fmt.Errorf("%w: %d inputs, limit %d", ErrMaxInputsExceeded, len(funded.Inputs), params.MaxInputs)
		}
		return nil
	}); err != nil {
		return "", err
	}

	var id model.TxID
	if err := w.step(StepSubmit, func() (err error) {
		id, err = wallet.SendTransaction(ctx, funded)
		return err
	}); err != nil {
		return "", err
	}
	funded.State = model.TxSubmitted
	w.notifier.Submit(id)
	logger.Info("merge transaction submitted", zap.String("tx_id", string(id)))

	if err := w.step(StepAwait, func() error {
		_, err := wallet.WaitForResult(ctx, id)
		return err
	}); err != nil {
		funded.State = model.TxFailed
		return id, err
	}
	funded.State = model.TxConfirmed
	w.notifier.Success(id)
	logger.Info("merge transaction confirmed", zap.String("tx_id", string(id)))

	if w.balance != nil {
		if err := w.balance.RefetchBalance(ctx); err != nil {
			logger.Warn("refresh balance after merge failed", zap.Error(err))
		}
	}
	return id, nil
}

func (w *Workflow) step(name string, fn func() error) error {
	started := time.Now()
	err := fn()
	w.metrics.ObserveStep(name, err, started)
	if err != nil {
		return &StepError{Step: name, Err: err}
	}
	return nil
}
