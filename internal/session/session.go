// Package session holds the connected wallet and everything derived from it.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goodnatureofminers/coinmerger-backend/internal/env"
	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/goodnatureofminers/coinmerger-backend/internal/poller"
	"go.uber.org/zap"
)

// BalanceSymbol is the unit shown next to the formatted balance.
const BalanceSymbol = "ETH"

var (
	// ErrNotConnected is returned by operations that need a wallet.
	ErrNotConnected = errors.New("wallet not connected")
	// ErrConnectionRejected means the user declined the connection request.
	ErrConnectionRejected = errors.New("wallet connection rejected")
	// ErrMergeDisabled means the merge preconditions do not hold.
	ErrMergeDisabled = errors.New("merge is not available")
	// ErrMergeInProgress means another merge has not finished yet.
	ErrMergeInProgress = errors.New("merge already in progress")
)

// Session tracks one wallet connection. All methods are safe for concurrent
// use.
type Session struct {
	endpoint  env.Endpoint
	connector Connector
	newWallet WalletFactory
	newPoller PollerFactory
	logger    *zap.Logger

	mu        sync.RWMutex
	connected bool
	network   model.Network
	wallet    Wallet
	balance   model.Amount
	poller    Poller
	stopPoll  context.CancelFunc
	pollDone  chan struct{}

	merging atomic.Bool
}

// New builds a disconnected Session.
func New(endpoint env.Endpoint, connector Connector, newWallet WalletFactory, newPoller PollerFactory, logger *zap.Logger) (*Session, error) {
	if connector == nil {
		return nil, errors.New("session connector is required")
	}
	if newWallet == nil || newPoller == nil {
		return nil, errors.New("session wallet and poller factories are required")
	}
	return &Session{
		endpoint:  endpoint,
		connector: connector,
		newWallet: newWallet,
		newPoller: newPoller,
		logger:    logger.Named("session"),
	}, nil
}

// Connect asks the connector for the user's account, binds a wallet to it,
// starts coin polling and loads the balance. Connecting again replaces the
// previous wallet.
func (s *Session) Connect(ctx context.Context) error {
	ok, err := s.connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect wallet: %w", err)
	}
	if !ok {
		return ErrConnectionRejected
	}
	account, err := s.connector.CurrentAccount(ctx)
	if err != nil {
		return fmt.Errorf("current account: %w", err)
	}
	network, err := s.connector.CurrentNetwork(ctx)
	if err != nil {
		return fmt.Errorf("current network: %w", err)
	}

	w := s.newWallet(account)
	p, err := s.newPoller(w)
	if err != nil {
		return fmt.Errorf("create coin poller: %w", err)
	}

	pollCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := p.Run(pollCtx); err != nil {
			s.logger.Error("coin poller exited", zap.Error(err))
		}
	}()

	s.mu.Lock()
	prevCancel, prevDone := s.stopPoll, s.pollDone
	s.connected = true
	s.network = network
	s.wallet = w
	s.balance = model.Amount{}
	s.poller = p
	s.stopPoll = cancel
	s.pollDone = done
	s.mu.Unlock()

	stopPoller(prevCancel, prevDone)

	s.logger.Info("wallet connected",
		zap.String("address", string(account)),
		zap.String("network", network.URL),
		zap.Bool("correct_network", s.IsConnectedToCorrectNetwork()),
	)

	if err := s.RefetchBalance(ctx); err != nil {
		s.logger.Warn("load balance failed", zap.Error(err))
	}
	return nil
}

// Disconnect stops polling and forgets the wallet. Local state is cleared
// even when the connector call fails.
func (s *Session) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.stopPoll, s.pollDone
	s.connected = false
	s.network = model.Network{}
	s.wallet = nil
	s.balance = model.Amount{}
	s.poller = nil
	s.stopPoll, s.pollDone = nil, nil
	s.mu.Unlock()

	stopPoller(cancel, done)

	if err := s.connector.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect wallet: %w", err)
	}
	s.logger.Info("wallet disconnected")
	return nil
}

// stopPoller cancels a poller swapped out of the session and waits for it.
func stopPoller(cancel context.CancelFunc, done <-chan struct{}) {
	if cancel != nil {
		cancel()
		<-done
	}
}

// IsConnected reports whether a wallet is connected.
func (s *Session) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// Network returns the network the wallet reported at connect time.
func (s *Session) Network() model.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network
}

// Wallet returns the connected wallet or nil.
func (s *Session) Wallet() Wallet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wallet
}

// Balance returns the last loaded base asset balance.
func (s *Session) Balance() model.Amount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance
}

// RefetchBalance reloads the base asset balance of the connected wallet.
func (s *Session) RefetchBalance(ctx context.Context) error {
	w := s.Wallet()
	if w == nil {
		return ErrNotConnected
	}
	asset, err := w.BaseAssetID(ctx)
	if err != nil {
		return fmt.Errorf("base asset id: %w", err)
	}
	balance, err := w.Balance(ctx, asset)
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wallet == w {
		s.balance = balance
	}
	return nil
}

// IsConnectedToCorrectNetwork reports whether the wallet's network is the
// node this service talks to.
func (s *Session) IsConnectedToCorrectNetwork() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected && s.network.URL == s.endpoint.ProviderURL
}

// Coins returns the latest coin snapshot or nil.
func (s *Session) Coins() *poller.Snapshot {
	s.mu.RLock()
	p := s.poller
	s.mu.RUnlock()
	if p == nil {
		return nil
	}
	return p.Snapshot()
}

// CanMerge reports whether Merge would start a merge right now.
func (s *Session) CanMerge() bool {
	_, err := s.mergeWallet()
	return err == nil && !s.merging.Load()
}

// Merging reports whether a merge is running.
func (s *Session) Merging() bool {
	return s.merging.Load()
}

func (s *Session) mergeWallet() (Wallet, error) {
	s.mu.RLock()
	connected, w, balance := s.connected, s.wallet, s.balance
	correct := s.network.URL == s.endpoint.ProviderURL
	s.mu.RUnlock()

	switch {
	case !connected || w == nil:
		return nil, fmt.Errorf("%w: %w", ErrMergeDisabled, ErrNotConnected)
	case !correct:
		return nil, fmt.Errorf("%w: wallet is on another network", ErrMergeDisabled)
	case balance.Sign() <= 0:
		return nil, fmt.Errorf("%w: balance is zero", ErrMergeDisabled)
	case s.Coins().Count() == 0:
		return nil, fmt.Errorf("%w: no coins", ErrMergeDisabled)
	}
	return w, nil
}

// Merge runs wf for the connected wallet once the preconditions hold. Only
// one merge runs at a time.
func (s *Session) Merge(ctx context.Context, wf Workflow) (model.TxID, error) {
	w, err := s.claimMerge()
	if err != nil {
		return "", err
	}
	defer s.merging.Store(false)
	return wf.Merge(ctx, w)
}

// MergeResult is the outcome of a background merge.
type MergeResult struct {
	TxID model.TxID
	Err  error
}

// StartMerge checks the preconditions and claims the merge slot like Merge,
// then runs wf in the background. The channel receives one result and is
// closed.
func (s *Session) StartMerge(ctx context.Context, wf Workflow) (<-chan MergeResult, error) {
	w, err := s.claimMerge()
	if err != nil {
		return nil, err
	}
	out := make(chan MergeResult, 1)
	go func() {
		defer close(out)
		defer s.merging.Store(false)
		id, err := wf.Merge(ctx, w)
		out <- MergeResult{TxID: id, Err: err}
	}()
	return out, nil
}

func (s *Session) claimMerge() (Wallet, error) {
	if _, err := s.mergeWallet(); err != nil {
		return nil, err
	}
	if !s.merging.CompareAndSwap(false, true) {
		return nil, ErrMergeInProgress
	}
	w, err := s.mergeWallet()
	if err != nil {
		s.merging.Store(false)
		return nil, err
	}
	return w, nil
}

// Summary is the account view.
type Summary struct {
	Connected        bool          `json:"connected"`
	CorrectNetwork   bool          `json:"correctNetwork"`
	ProviderURL      string        `json:"providerUrl"`
	NetworkURL       string        `json:"networkUrl,omitempty"`
	Address          model.Address `json:"address,omitempty"`
	AddressFormatted string        `json:"addressFormatted,omitempty"`
	Balance          model.Amount  `json:"balance"`
	BalanceFormatted string        `json:"balanceFormatted"`
	Symbol           string        `json:"symbol"`
	Coins            int           `json:"coins"`
	MaxInputs        uint64        `json:"maxInputs"`
	CanMerge         bool          `json:"canMerge"`
	Merging          bool          `json:"merging"`
}

// Summary renders the current account view.
func (s *Session) Summary() Summary {
	s.mu.RLock()
	sum := Summary{
		Connected:   s.connected,
		ProviderURL: s.endpoint.ProviderURL,
		NetworkURL:  s.network.URL,
		Balance:     s.balance,
		Symbol:      BalanceSymbol,
	}
	if s.wallet != nil {
		sum.Address = s.wallet.Address()
		sum.AddressFormatted = sum.Address.Short()
	}
	s.mu.RUnlock()

	sum.CorrectNetwork = s.IsConnectedToCorrectNetwork()
	if sum.Balance.Sign() > 0 {
		sum.BalanceFormatted = sum.Balance.Format(model.DefaultDecimalUnits, model.DefaultPrecision)
	}
	if snap := s.Coins(); snap != nil {
		sum.Coins = snap.Count()
		sum.MaxInputs = snap.MaxInputs
	}
	sum.Merging = s.Merging()
	sum.CanMerge = s.CanMerge()
	return sum
}
