package domain

import (
	"github.com/shopspring/decimal"
)

// Bounds for any monetary amount stored or processed by the application.
// Balances and transaction amounts are never negative and never exceed the ceiling.
var (
	minAmountValue = decimal.Zero
	maxAmountValue = decimal.NewFromInt(1_000_000)
)

// AmountErrorKind distinguishes which bound an amount violated.
type AmountErrorKind string

const (
	MinValue AmountErrorKind = "MIN_VALUE"
	MaxValue AmountErrorKind = "MAX_VALUE"
)

// AmountError is returned when a value falls outside the allowed amount bounds.
// It carries the offending value so callers can report it.
type AmountError struct {
	Kind  AmountErrorKind
	Value decimal.Decimal
}

func (e *AmountError) Error() string {
	if e.Kind == MinValue {
		return "invalid amount value: " + e.Value.String() + ", must be greater than the minimum value " + minAmountValue.String()
	}
	return "invalid amount value: " + e.Value.String() + ", must be less than the maximum value " + maxAmountValue.String()
}

// Amount is a bounded monetary scalar. The zero value is a valid zero amount.
// Construction and every arithmetic operation validate against the bounds,
// so a held Amount is always within [0, 1,000,000].
type Amount struct {
	value decimal.Decimal
}

// NewAmount validates v against the amount bounds (inclusive on both ends).
func NewAmount(v decimal.Decimal) (Amount, error) {
	if v.LessThan(minAmountValue) {
		return Amount{}, &AmountError{Kind: MinValue, Value: v}
	}
	if v.GreaterThan(maxAmountValue) {
		return Amount{}, &AmountError{Kind: MaxValue, Value: v}
	}
	return Amount{value: v}, nil
}

// NewAmountFromFloat is a convenience constructor for literals and request payloads.
func NewAmountFromFloat(v float64) (Amount, error) {
	return NewAmount(decimal.NewFromFloat(v))
}

// ZeroAmount returns the lower bound of the amount range.
func ZeroAmount() Amount {
	return Amount{value: minAmountValue}
}

// MaxAmount returns the upper bound of the amount range.
func MaxAmount() Amount {
	return Amount{value: maxAmountValue}
}

// Decimal exposes the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Add returns a+b, failing if the result exceeds the upper bound.
func (a Amount) Add(b Amount) (Amount, error) {
	return NewAmount(a.value.Add(b.value))
}

// Sub returns a-b, failing if the result falls below zero.
func (a Amount) Sub(b Amount) (Amount, error) {
	return NewAmount(a.value.Sub(b.value))
}

func (a Amount) LessThan(b Amount) bool {
	return a.value.LessThan(b.value)
}

func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

func (a Amount) String() string {
	return a.value.String()
}

// MarshalJSON renders the amount as a JSON number, like the plain decimal would.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// UnmarshalJSON parses and validates an amount from a JSON number or string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewAmount(d)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
