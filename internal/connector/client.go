// Package connector provides a JSON-RPC 2.0 client for the external wallet
// connector that owns keys, signing, fee estimation and funding.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
)

const defaultTimeout = 30 * time.Second

type (
	// RPCMetrics records metrics for remote calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client is a JSON-RPC 2.0 HTTP client.
type Client struct {
	endpoint string
	http     *http.Client
	metrics  RPCMetrics
	nextID   atomic.Int64
}

// New creates a client targeting endpoint. timeout bounds a single call.
func New(endpoint string, timeout time.Duration, metrics RPCMetrics) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		metrics:  metrics,
	}
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      int64  `json:"id"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      int64           `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RPCError is returned when the connector responds with an error.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// ErrEmptyResult means a call that expects a result got none.
var ErrEmptyResult = errors.New("connector returned no result")

// StatusError is returned for a non-2xx HTTP response without an RPC error.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("connector http status %d", e.Code)
}

// Call invokes a JSON-RPC method and unmarshals the result into the provided pointer.
// If result is nil, the response result is discarded; otherwise a missing or
// null result is an error.
func (c *Client) Call(ctx context.Context, method string, params, result any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, err, started)
	}()

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.nextID.Add(1),
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var rpcResp response
	decodeErr := json.Unmarshal(data, &rpcResp)
	if decodeErr == nil && rpcResp.Error != nil {
		return &RPCError{
			Code:    rpcResp.Error.Code,
			Message: rpcResp.Error.Message,
		}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Code: resp.StatusCode}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	if result == nil {
		return nil
	}
	if len(rpcResp.Result) == 0 || bytes.Equal(rpcResp.Result, []byte("null")) {
		return fmt.Errorf("%s: %w", method, ErrEmptyResult)
	}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

// Connect asks the connector to open a session. It reports whether the user
// approved the connection.
func (c *Client) Connect(ctx context.Context) (bool, error) {
	var ok bool
	if err := c.Call(ctx, "connect", nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Disconnect closes the connector session.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.Call(ctx, "disconnect", nil, nil)
}

// IsConnected reports whether the connector session is open.
func (c *Client) IsConnected(ctx context.Context) (bool, error) {
	var ok bool
	if err := c.Call(ctx, "isConnected", nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// CurrentAccount returns the account selected in the connector.
func (c *Client) CurrentAccount(ctx context.Context) (model.Address, error) {
	var addr model.Address
	if err := c.Call(ctx, "currentAccount", nil, &addr); err != nil {
		return "", err
	}
	if addr == "" {
		return "", fmt.Errorf("connector has no selected account")
	}
	return addr, nil
}

// CurrentNetwork returns the network the connector points at.
func (c *Client) CurrentNetwork(ctx context.Context) (model.Network, error) {
	var n model.Network
	if err := c.Call(ctx, "currentNetwork", nil, &n); err != nil {
		return model.Network{}, err
	}
	return n, nil
}

type txParams struct {
	Address     model.Address             `json:"address"`
	Transaction *model.TransactionRequest `json:"transaction"`
	Cost        *model.TransactionCost    `json:"cost,omitempty"`
}

// TransactionCost estimates gas and fee for tx on behalf of account.
func (c *Client) TransactionCost(ctx context.Context, account model.Address, tx *model.TransactionRequest) (model.TransactionCost, error) {
	var cost model.TransactionCost
	if err := c.Call(ctx, "getTransactionCost", txParams{Address: account, Transaction: tx}, &cost); err != nil {
		return model.TransactionCost{}, err
	}
	return cost, nil
}

// Fund returns tx with the resources attached that are needed to pay cost.
func (c *Client) Fund(ctx context.Context, account model.Address, tx *model.TransactionRequest, cost model.TransactionCost) (*model.TransactionRequest, error) {
	var funded model.TransactionRequest
	if err := c.Call(ctx, "fund", txParams{Address: account, Transaction: tx, Cost: &cost}, &funded); err != nil {
		return nil, err
	}
	funded.State = model.TxFunded
	return &funded, nil
}

// SendTransaction signs and broadcasts tx, returning its id without waiting
// for inclusion.
func (c *Client) SendTransaction(ctx context.Context, account model.Address, tx *model.TransactionRequest) (model.TxID, error) {
	var id model.TxID
	if err := c.Call(ctx, "sendTransaction", txParams{Address: account, Transaction: tx}, &id); err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("connector returned empty transaction id")
	}
	return id, nil
}

type transferParams struct {
	From    model.Address `json:"from"`
	To      model.Address `json:"to"`
	Amount  model.Amount  `json:"amount"`
	AssetID model.AssetID `json:"assetId"`
}

// Transfer sends amount of asset from one connector account to an address.
func (c *Client) Transfer(ctx context.Context, from, to model.Address, amount model.Amount, asset model.AssetID) (model.TxID, error) {
	var id model.TxID
	params := transferParams{From: from, To: to, Amount: amount, AssetID: asset}
	if err := c.Call(ctx, "transfer", params, &id); err != nil {
		return "", err
	}
	return id, nil
}
