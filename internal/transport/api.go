// Package transport exposes the coin merger over HTTP and gRPC.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/coinmerger-backend/internal/env"
	"github.com/goodnatureofminers/coinmerger-backend/internal/faucet"
	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/goodnatureofminers/coinmerger-backend/internal/notify"
	"github.com/goodnatureofminers/coinmerger-backend/internal/session"
	"go.uber.org/zap"
)

// API serves the JSON HTTP interface.
type API struct {
	ctx      context.Context
	endpoint env.Endpoint
	session  Session
	workflow session.Workflow
	faucet   Faucet
	feed     Feed
	logger   *zap.Logger
}

// NewAPI builds an API. Background merges run under ctx, so cancelling it
// aborts them. faucet may be nil.
func NewAPI(
	ctx context.Context,
	endpoint env.Endpoint,
	sess Session,
	workflow session.Workflow,
	drips Faucet,
	feed Feed,
	logger *zap.Logger,
) *API {
	return &API{
		ctx:      ctx,
		endpoint: endpoint,
		session:  sess,
		workflow: workflow,
		faucet:   drips,
		feed:     feed,
		logger:   logger.Named("api"),
	}
}

// Register adds the API routes to mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/environment", a.environment)
	mux.HandleFunc("GET /api/account", a.account)
	mux.HandleFunc("POST /api/connect", a.connect)
	mux.HandleFunc("POST /api/disconnect", a.disconnect)
	mux.HandleFunc("POST /api/merge", a.merge)
	mux.HandleFunc("POST /api/faucet", a.drip)
	mux.HandleFunc("GET /api/notifications", a.notifications)
}

type environmentResponse struct {
	Environment   model.Environment `json:"environment"`
	ProviderURL   string            `json:"providerUrl"`
	PlaygroundURL string            `json:"playgroundUrl"`
	Local         bool              `json:"local"`
	Faucet        bool              `json:"faucet"`
}

func (a *API) environment(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, environmentResponse{
		Environment:   a.endpoint.Environment,
		ProviderURL:   a.endpoint.ProviderURL,
		PlaygroundURL: a.endpoint.PlaygroundURL,
		Local:         a.endpoint.IsLocal(),
		Faucet:        a.faucetEnabled(),
	})
}

func (a *API) account(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.session.Summary())
}

func (a *API) connect(w http.ResponseWriter, r *http.Request) {
	if err := a.session.Connect(r.Context()); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, session.ErrConnectionRejected) {
			status = http.StatusForbidden
		}
		a.logger.Warn("connect failed", zap.Error(err))
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, a.session.Summary())
}

func (a *API) disconnect(w http.ResponseWriter, r *http.Request) {
	if err := a.session.Disconnect(r.Context()); err != nil {
		a.logger.Warn("disconnect failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, a.session.Summary())
}

func (a *API) merge(w http.ResponseWriter, _ *http.Request) {
	results, err := a.session.StartMerge(a.ctx, a.workflow)
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	go func() {
		res := <-results
		if res.Err != nil {
			a.logger.Debug("background merge finished with error", zap.Error(res.Err))
			return
		}
		a.logger.Debug("background merge finished", zap.String("tx_id", string(res.TxID)))
	}()
	writeJSON(w, http.StatusAccepted, a.session.Summary())
}

type dripRequest struct {
	Amount model.Amount `json:"amount"`
	Count  int          `json:"count"`
}

type dripResponse struct {
	Transactions []model.TxID `json:"transactions"`
}

func (a *API) drip(w http.ResponseWriter, r *http.Request) {
	if !a.faucetEnabled() {
		writeError(w, http.StatusNotFound, faucet.ErrNotLocal)
		return
	}
	var req dripRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if req.Amount.IsZero() {
		req.Amount = model.NewAmount(faucet.DefaultAmount)
	}
	if req.Count == 0 {
		req.Count = faucet.DefaultCount
	}

	to := a.session.Summary().Address
	if to == "" {
		writeError(w, http.StatusConflict, session.ErrNotConnected)
		return
	}

	ids, err := a.faucet.Drip(r.Context(), to, req.Amount, req.Count)
	switch {
	case errors.Is(err, faucet.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		a.logger.Warn("faucet drip failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, dripResponse{Transactions: ids})
}

type notificationsResponse struct {
	Events []notify.Event `json:"events"`
	// LastSeq is the cursor for the next poll.
	LastSeq uint64 `json:"lastSeq"`
}

func (a *API) notifications(w http.ResponseWriter, r *http.Request) {
	var after uint64
	if raw := r.URL.Query().Get("after"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("after must be a non-negative integer"))
			return
		}
		after = v
	}
	// Read the cursor first so an event pushed in between is not skipped.
	last := a.feed.LastSeq()
	events := a.feed.Since(after)
	if n := len(events); n > 0 && events[n-1].Seq > last {
		last = events[n-1].Seq
	}
	writeJSON(w, http.StatusOK, notificationsResponse{Events: events, LastSeq: last})
}

func (a *API) faucetEnabled() bool {
	return a.faucet != nil && a.faucet.Enabled()
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
