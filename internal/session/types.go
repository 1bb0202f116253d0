package session

import (
	"context"

	"github.com/goodnatureofminers/coinmerger-backend/internal/merge"
	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/goodnatureofminers/coinmerger-backend/internal/poller"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Connector interface {
		Connect(ctx context.Context) (bool, error)
		Disconnect(ctx context.Context) error
		CurrentAccount(ctx context.Context) (model.Address, error)
		CurrentNetwork(ctx context.Context) (model.Network, error)
	}
	Wallet interface {
		merge.Wallet
		Balance(ctx context.Context, asset model.AssetID) (model.Amount, error)
	}
	Poller interface {
		Run(ctx context.Context) error
		Snapshot() *poller.Snapshot
	}
	Workflow interface {
		Merge(ctx context.Context, wallet merge.Wallet) (model.TxID, error)
	}
)

// WalletFactory binds a wallet to the connected account.
type WalletFactory func(address model.Address) Wallet

// PollerFactory builds the coin poller for a connected wallet.
type PollerFactory func(source poller.Source) (Poller, error)
