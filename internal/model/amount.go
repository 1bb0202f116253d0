package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultDecimalUnits is the number of decimals of the base asset.
	DefaultDecimalUnits int32 = 9
	// DefaultPrecision is the number of fractional digits shown to the user.
	DefaultPrecision int32 = 3
)

// Amount is an arbitrary precision quantity of base units. The zero value is 0.
// Amounts are immutable: arithmetic returns new values.
type Amount struct {
	v *big.Int
}

// NewAmount builds an Amount from a uint64.
func NewAmount(v uint64) Amount {
	return Amount{v: new(big.Int).SetUint64(v)}
}

// AmountFromBig copies b into a new Amount.
func AmountFromBig(b *big.Int) Amount {
	if b == nil {
		return Amount{}
	}
	return Amount{v: new(big.Int).Set(b)}
}

// ParseAmount parses a base-10 or 0x-prefixed integer.
func ParseAmount(s string) (Amount, error) {
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	return Amount{v: v}, nil
}

func (a Amount) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Big returns a copy of the underlying integer.
func (a Amount) Big() *big.Int {
	return new(big.Int).Set(a.big())
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b. The result may be negative.
func (a Amount) Sub(b Amount) Amount {
	return Amount{v: new(big.Int).Sub(a.big(), b.big())}
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.big().Cmp(b.big())
}

// Sign returns -1, 0 or +1 depending on the sign of a.
func (a Amount) Sign() int {
	return a.big().Sign()
}

// IsZero reports whether a is 0.
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

func (a Amount) String() string {
	return a.big().String()
}

// Format renders a as a decimal number with the given number of units,
// truncated to precision fractional digits.
func (a Amount) Format(units, precision int32) string {
	return decimal.NewFromBigInt(a.big(), -units).Truncate(precision).StringFixed(precision)
}

// MarshalJSON encodes the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a quoted decimal/hex string or a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	parsed, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// SumCoins adds up the amounts of coins.
func SumCoins(coins []Coin) Amount {
	total := new(big.Int)
	for _, c := range coins {
		total.Add(total, c.Amount.big())
	}
	return Amount{v: total}
}
