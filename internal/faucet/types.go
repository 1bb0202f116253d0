package faucet

import (
	"context"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Transferer interface {
		Transfer(ctx context.Context, from, to model.Address, amount model.Amount, asset model.AssetID) (model.TxID, error)
	}
	AssetSource interface {
		BaseAssetID(ctx context.Context) (model.AssetID, error)
	}
	BalanceRefresher interface {
		RefetchBalance(ctx context.Context) error
	}
)
