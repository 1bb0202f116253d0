// Package provider is a GraphQL client for the node's read and status API.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"github.com/goodnatureofminers/coinmerger-backend/pkg/safe"
	"go.uber.org/ratelimit"
)

const (
	defaultTimeout = 10 * time.Second
	coinsPageSize  = 512
)

type (
	// RPCMetrics records metrics for remote calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// GraphQLError is returned when the node answers with GraphQL errors.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// Client talks to the node GraphQL endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	rl       ratelimit.Limiter
	metrics  RPCMetrics

	mu    sync.Mutex
	chain *model.ChainParameters
}

// New creates a client for endpoint. rps bounds the request rate; timeout
// bounds a single request.
func New(endpoint string, timeout time.Duration, rps int, metrics RPCMetrics) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		rl:       rl,
		metrics:  metrics,
	}
}

// Endpoint returns the URL the client queries.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) query(ctx context.Context, operation, query string, vars map[string]any, result any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	c.rl.Take()
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
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}

	var gqlResp response
	if err := json.Unmarshal(data, &gqlResp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		msgs := make([]string, 0, len(gqlResp.Errors))
		for _, e := range gqlResp.Errors {
			msgs = append(msgs, e.Message)
		}
		return &GraphQLError{Messages: msgs}
	}
	if result != nil {
		if err := json.Unmarshal(gqlResp.Data, result); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// uint64Scalar decodes integer scalars the node may send as strings or numbers.
type uint64Scalar uint64

func (u *uint64Scalar) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", data, err)
	}
	*u = uint64Scalar(v)
	return nil
}

const chainQuery = `query Chain {
  chain {
    consensusParameters {
      baseAssetId
      txParams {
        maxInputs
      }
    }
  }
}`

// ChainParameters returns the consensus values the merge depends on. They
// are fetched once and cached for the lifetime of the client.
func (c *Client) ChainParameters(ctx context.Context) (model.ChainParameters, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.chain != nil {
		return *c.chain, nil
	}

	var out struct {
		Chain struct {
			ConsensusParameters struct {
				BaseAssetID string `json:"baseAssetId"`
				TxParams    struct {
					MaxInputs uint64Scalar `json:"maxInputs"`
				} `json:"txParams"`
			} `json:"consensusParameters"`
		} `json:"chain"`
	}
	if err := c.query(ctx, "chain", chainQuery, nil, &out); err != nil {
		return model.ChainParameters{}, err
	}
	params := model.ChainParameters{
		MaxInputs:   uint64(out.Chain.ConsensusParameters.TxParams.MaxInputs),
		BaseAssetID: model.AssetID(out.Chain.ConsensusParameters.BaseAssetID),
	}
	if params.MaxInputs == 0 || params.BaseAssetID == "" {
		return model.ChainParameters{}, errors.New("node returned incomplete chain parameters")
	}
	c.chain = &params
	return params, nil
}

// BaseAssetID returns the chain's base asset.
func (c *Client) BaseAssetID(ctx context.Context) (model.AssetID, error) {
	params, err := c.ChainParameters(ctx)
	if err != nil {
		return "", err
	}
	return params.BaseAssetID, nil
}

const coinsQuery = `query Coins($owner: Address!, $assetId: AssetId, $first: Int, $after: String) {
  coins(filter: { owner: $owner, assetId: $assetId }, first: $first, after: $after) {
    pageInfo {
      hasNextPage
      endCursor
    }
    nodes {
      utxoId
      owner
      amount
      assetId
      blockCreated
    }
  }
}`

// Coins lists unspent coins of asset owned by owner in the order the node
// returns them. first limits the number of coins; first <= 0 lists all.
func (c *Client) Coins(ctx context.Context, owner model.Address, asset model.AssetID, first int) ([]model.Coin, error) {
	var (
		coins  []model.Coin
		cursor string
	)
	for {
		pageSize := coinsPageSize
		if first > 0 && first-len(coins) < pageSize {
			pageSize = first - len(coins)
		}
		vars := map[string]any{
			"owner":   owner,
			"assetId": asset,
			"first":   pageSize,
		}
		if cursor != "" {
			vars["after"] = cursor
		}

		var out struct {
			Coins struct {
				PageInfo struct {
					HasNextPage bool   `json:"hasNextPage"`
					EndCursor   string `json:"endCursor"`
				} `json:"pageInfo"`
				Nodes []struct {
					UTXOID       string       `json:"utxoId"`
					Owner        string       `json:"owner"`
					Amount       model.Amount `json:"amount"`
					AssetID      string       `json:"assetId"`
					BlockCreated uint64Scalar `json:"blockCreated"`
				} `json:"nodes"`
			} `json:"coins"`
		}
		if err := c.query(ctx, "coins", coinsQuery, vars, &out); err != nil {
			return nil, fmt.Errorf("fetch coins: %w", err)
		}
		for _, n := range out.Coins.Nodes {
			blockCreated, err := safe.Uint32(uint64(n.BlockCreated))
			if err != nil {
				return nil, fmt.Errorf("coin %s block: %w", n.UTXOID, err)
			}
			coins = append(coins, model.Coin{
				ID:           model.UTXOID(n.UTXOID),
				Owner:        model.Address(n.Owner),
				Amount:       n.Amount,
				AssetID:      model.AssetID(n.AssetID),
				BlockCreated: blockCreated,
			})
		}

		if first > 0 && len(coins) >= first {
			return coins[:first], nil
		}
		if !out.Coins.PageInfo.HasNextPage || len(out.Coins.Nodes) == 0 {
			return coins, nil
		}
		cursor = out.Coins.PageInfo.EndCursor
	}
}

const balanceQuery = `query Balance($owner: Address!, $assetId: AssetId!) {
  balance(owner: $owner, assetId: $assetId) {
    amount
  }
}`

// Balance returns the total amount of asset owned by owner.
func (c *Client) Balance(ctx context.Context, owner model.Address, asset model.AssetID) (model.Amount, error) {
	var out struct {
		Balance struct {
			Amount model.Amount `json:"amount"`
		} `json:"balance"`
	}
	vars := map[string]any{"owner": owner, "assetId": asset}
	if err := c.query(ctx, "balance", balanceQuery, vars, &out); err != nil {
		return model.Amount{}, fmt.Errorf("fetch balance: %w", err)
	}
	return out.Balance.Amount, nil
}

const transactionStatusQuery = `query TransactionStatus($id: TransactionId!) {
  transaction(id: $id) {
    id
    status {
      __typename
      ... on FailureStatus {
        reason
      }
      ... on SqueezedOutStatus {
        reason
      }
    }
  }
}`

// TransactionStatus returns the current status of a transaction.
func (c *Client) TransactionStatus(ctx context.Context, id model.TxID) (model.TransactionResult, error) {
	var out struct {
		Transaction *struct {
			ID     string `json:"id"`
			Status *struct {
				TypeName string `json:"__typename"`
				Reason   string `json:"reason"`
			} `json:"status"`
		} `json:"transaction"`
	}
	vars := map[string]any{"id": id}
	if err := c.query(ctx, "transaction_status", transactionStatusQuery, vars, &out); err != nil {
		return model.TransactionResult{}, fmt.Errorf("fetch transaction status: %w", err)
	}

	result := model.TransactionResult{ID: id, Status: model.TxStatusNotFound}
	if out.Transaction == nil || out.Transaction.Status == nil {
		return result, nil
	}
	switch out.Transaction.Status.TypeName {
	case "SubmittedStatus":
		result.Status = model.TxStatusSubmitted
	case "SuccessStatus":
		result.Status = model.TxStatusSuccess
	case "FailureStatus":
		result.Status = model.TxStatusFailure
	case "SqueezedOutStatus":
		result.Status = model.TxStatusSqueezed
	default:
		return model.TransactionResult{}, fmt.Errorf("unknown transaction status %q", out.Transaction.Status.TypeName)
	}
	result.Reason = out.Transaction.Status.Reason
	return result, nil
}
