package model

import "errors"

// ErrTransactionFailed is returned when a submitted transaction resolves to a
// failure status.
var ErrTransactionFailed = errors.New("transaction failed")

// TxID is a transaction identifier, hex encoded with 0x prefix.
type TxID string

// TxState tracks a transaction request through its lifecycle.
type TxState string

var (
	TxDraft     TxState = "draft"
	TxCosted    TxState = "costed"
	TxFunded    TxState = "funded"
	TxSubmitted TxState = "submitted"
	TxConfirmed TxState = "confirmed"
	TxFailed    TxState = "failed"
)

// InputCoin is the input type for spending a coin.
const InputCoin = "coin"

// OutputCoin is the output type for creating a coin.
const OutputCoin = "coin"

// ScriptTransaction is the request type used for merges.
const ScriptTransaction = "script"

// Input is a transaction input. Only coin inputs are produced here; the
// connector may add other kinds while funding.
type Input struct {
	Type    string  `json:"type"`
	ID      UTXOID  `json:"id"`
	Owner   Address `json:"owner"`
	Amount  Amount  `json:"amount"`
	AssetID AssetID `json:"assetId"`
}

// Output is a transaction output.
type Output struct {
	Type    string  `json:"type"`
	To      Address `json:"to"`
	Amount  Amount  `json:"amount"`
	AssetID AssetID `json:"assetId"`
}

// TransactionRequest is an unsigned transaction draft.
type TransactionRequest struct {
	Type     string   `json:"type"`
	Inputs   []Input  `json:"inputs"`
	Outputs  []Output `json:"outputs"`
	GasLimit Amount   `json:"gasLimit"`
	MaxFee   Amount   `json:"maxFee"`
	State    TxState  `json:"-"`
}

// NewScriptTransactionRequest returns an empty draft.
func NewScriptTransactionRequest() *TransactionRequest {
	return &TransactionRequest{
		Type:    ScriptTransaction,
		Inputs:  []Input{},
		Outputs: []Output{},
		State:   TxDraft,
	}
}

// AddCoinInput appends coin as an input.
func (r *TransactionRequest) AddCoinInput(c Coin) {
	r.Inputs = append(r.Inputs, Input{
		Type:    InputCoin,
		ID:      c.ID,
		Owner:   c.Owner,
		Amount:  c.Amount,
		AssetID: c.AssetID,
	})
}

// AddCoinOutput appends an output paying amount of asset to to.
func (r *TransactionRequest) AddCoinOutput(to Address, amount Amount, asset AssetID) {
	r.Outputs = append(r.Outputs, Output{
		Type:    OutputCoin,
		To:      to,
		Amount:  amount,
		AssetID: asset,
	})
}

// ApplyCost copies the estimate into the fee fields.
func (r *TransactionRequest) ApplyCost(cost TransactionCost) {
	r.GasLimit = cost.GasUsed
	r.MaxFee = cost.MaxFee
	r.State = TxCosted
}

// TransactionCost is the node's estimate for a request.
type TransactionCost struct {
	GasUsed Amount `json:"gasUsed"`
	MaxFee  Amount `json:"maxFee"`
}

// TxStatus is the final status of a submitted transaction.
type TxStatus string

var (
	TxStatusSubmitted TxStatus = "submitted"
	TxStatusSuccess   TxStatus = "success"
	TxStatusFailure   TxStatus = "failure"
	TxStatusSqueezed  TxStatus = "squeezed_out"
	TxStatusNotFound  TxStatus = "not_found"
)

// Final reports whether no further status change is expected.
func (s TxStatus) Final() bool {
	return s == TxStatusSuccess || s == TxStatusFailure || s == TxStatusSqueezed
}

// TransactionResult is the resolved outcome of a submitted transaction.
type TransactionResult struct {
	ID     TxID
	Status TxStatus
	Reason string
}
