package transport

import (
	"context"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/goodnatureofminers/coinmerger-backend/internal/notify"
	"github.com/goodnatureofminers/coinmerger-backend/internal/session"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Session interface {
		Connect(ctx context.Context) error
		Disconnect(ctx context.Context) error
		Summary() session.Summary
		StartMerge(ctx context.Context, wf session.Workflow) (<-chan session.MergeResult, error)
	}
	Faucet interface {
		Enabled() bool
		Drip(ctx context.Context, to model.Address, amount model.Amount, count int) ([]model.TxID, error)
	}
	Feed interface {
		Since(after uint64) []notify.Event
		LastSeq() uint64
	}
)
