// Package env resolves the active network environment into endpoint URLs.
package env

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
)

const (
	// DefaultNodePort is the port of a local node when none is configured.
	DefaultNodePort = 4000

	TestnetProviderURL = "https://testnet.fuel.network/v1/graphql"
	MainnetProviderURL = "https://mainnet.fuel.network/v1/graphql"

	explorerTxURL = "https://app.fuel.network/tx/%s/simple"
)

// Endpoint is the resolved environment, computed once at startup.
type Endpoint struct {
	Environment   model.Environment
	ProviderURL   string
	PlaygroundURL string
}

// Resolve maps an environment tag and local node port to an Endpoint.
// Anything other than "local" or "testnet" resolves to mainnet. A
// non-positive port falls back to DefaultNodePort.
func Resolve(tag string, port int) Endpoint {
	var e Endpoint
	switch model.Environment(strings.ToLower(strings.TrimSpace(tag))) {
	case model.Local:
		if port <= 0 {
			port = DefaultNodePort
		}
		e = Endpoint{Environment: model.Local, ProviderURL: LocalProviderURL(port)}
	case model.Testnet:
		e = Endpoint{Environment: model.Testnet, ProviderURL: TestnetProviderURL}
	default:
		e = Endpoint{Environment: model.Mainnet, ProviderURL: MainnetProviderURL}
	}
	e.PlaygroundURL = strings.Replace(e.ProviderURL, "v1/graphql", "v1/playground", 1)
	return e
}

// LocalProviderURL returns the GraphQL endpoint of a node on localhost.
func LocalProviderURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d/v1/graphql", port)
}

// IsLocal reports whether the endpoint targets a local node.
func (e Endpoint) IsLocal() bool {
	return e.Environment == model.Local
}

// TransactionLink returns the explorer URL of a transaction, or the bare id
// on a local node which has no explorer.
func (e Endpoint) TransactionLink(id model.TxID) string {
	if e.IsLocal() {
		return string(id)
	}
	return fmt.Sprintf(explorerTxURL, id)
}
