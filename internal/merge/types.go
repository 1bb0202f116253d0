package merge

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Wallet interface {
		Address() model.Address
		BaseAssetID(ctx context.Context) (model.AssetID, error)
		ChainParameters(ctx context.Context) (model.ChainParameters, error)
		Coins(ctx context.Context, asset model.AssetID, first int) ([]model.Coin, error)
		TransactionCost(ctx context.Context, tx *model.TransactionRequest) (model.TransactionCost, error)
		Fund(ctx context.Context, tx *model.TransactionRequest, cost model.TransactionCost) (*model.TransactionRequest, error)
		SendTransaction(ctx context.Context, tx *model.TransactionRequest) (model.TxID, error)
		WaitForResult(ctx context.Context, id model.TxID) (model.TransactionResult, error)
	}
	Notifier interface {
		Submit(id model.TxID)
		Success(id model.TxID)
		Error(message string)
	}
	BalanceRefresher interface {
		RefetchBalance(ctx context.Context) error
	}
	Metrics interface {
		ObserveStep(step string, err error, started time.Time)
		ObserveMerge(result string, inputs int, started time.Time)
	}
)
