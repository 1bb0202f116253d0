package poller

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		BaseAssetID(ctx context.Context) (model.AssetID, error)
		ChainParameters(ctx context.Context) (model.ChainParameters, error)
		Coins(ctx context.Context, asset model.AssetID, first int) ([]model.Coin, error)
	}
	Metrics interface {
		ObservePoll(err error, coins int, started time.Time)
	}
)
