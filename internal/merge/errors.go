package merge

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
)

// ErrorMessage is the only failure text shown to the user, whatever the cause.
const ErrorMessage = "Error merging coins. You may have reached the maximum number of coins that can be merged."

// Workflow steps, in execution order.
const (
	StepAsset  = "asset"
	StepChain  = "chain"
	StepFetch  = "fetch"
	StepBuild  = "build"
	StepCost   = "cost"
	StepFund   = "fund"
	StepSubmit = "submit"
	StepAwait  = "await"
)

var (
	// ErrNoCoins means there was nothing to merge.
	ErrNoCoins = errors.New("no coins to merge")
	// ErrNonPositiveAmount means the coins do not cover the fee buffer.
	ErrNonPositiveAmount = errors.New("merged amount is not positive")
	// ErrMaxInputsExceeded means funding pushed the input count to the chain limit.
	ErrMaxInputsExceeded = errors.New("transaction inputs reach the chain maximum")
	// ErrFundedMismatch means the wallet returned a funded request that no
	// longer matches the merge that was built.
	ErrFundedMismatch = errors.New("funded transaction does not match the merge request")
)

// StepError ties a failure to the workflow step that produced it.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Reason classifies a merge failure for logs and metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoCoins):
		return "no_coins"
	case errors.Is(err, ErrNonPositiveAmount):
		return "insufficient_amount"
	case errors.Is(err, ErrMaxInputsExceeded):
		return "max_inputs_exceeded"
	case errors.Is(err, ErrFundedMismatch):
		return "funded_mismatch"
	case errors.Is(err, model.ErrTransactionFailed):
		return "transaction_failed"
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step + "_failed"
	}
	return "unknown"
}
