package wallet

import (
	"context"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Provider interface {
		ChainParameters(ctx context.Context) (model.ChainParameters, error)
		BaseAssetID(ctx context.Context) (model.AssetID, error)
		Coins(ctx context.Context, owner model.Address, asset model.AssetID, first int) ([]model.Coin, error)
		Balance(ctx context.Context, owner model.Address, asset model.AssetID) (model.Amount, error)
		TransactionStatus(ctx context.Context, id model.TxID) (model.TransactionResult, error)
	}
	Connector interface {
		TransactionCost(ctx context.Context, account model.Address, tx *model.TransactionRequest) (model.TransactionCost, error)
		Fund(ctx context.Context, account model.Address, tx *model.TransactionRequest, cost model.TransactionCost) (*model.TransactionRequest, error)
		SendTransaction(ctx context.Context, account model.Address, tx *model.TransactionRequest) (model.TxID, error)
	}
)
