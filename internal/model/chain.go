package model

// Environment names a deployment target.
type Environment string

var (
	Local   Environment = "local"
	Testnet Environment = "testnet"
	Mainnet Environment = "mainnet"
)

// ChainParameters holds the consensus values the merge depends on.
type ChainParameters struct {
	MaxInputs   uint64
	BaseAssetID AssetID
}

// Network describes the node a wallet is connected to.
type Network struct {
	URL     string `json:"url"`
	ChainID uint64 `json:"chainId"`
}
