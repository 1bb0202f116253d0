package model

// AssetID identifies a fungible asset, hex encoded with 0x prefix.
type AssetID string

// Address is a 32 byte account address, hex encoded with 0x prefix.
type Address string

// UTXOID references a coin as a transaction input.
type UTXOID string

// Short renders the address as 0x1234...abcd for display.
func (a Address) Short() string {
	s := string(a)
	if len(s) <= 10 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

// Coin is an unspent output owned by an address for one asset.
type Coin struct {
	ID           UTXOID  `json:"utxoId"`
	Owner        Address `json:"owner"`
	Amount       Amount  `json:"amount"`
	AssetID      AssetID `json:"assetId"`
	BlockCreated uint32  `json:"blockCreated,omitempty"`
}
