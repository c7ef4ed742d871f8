package domain

import (
	"errors"
	"fmt"
)

// Currency identifies the denomination of an account or transaction.
type Currency string

const (
	RWF Currency = "RWF"
	USD Currency = "USD"
)

// DefaultCurrency is used when an account is created without an explicit currency.
const DefaultCurrency = RWF

var ErrInvalidCurrency = errors.New("invalid currency")

// ParseCurrency converts a string into a supported Currency.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case RWF, USD:
		return Currency(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}
}

func (c Currency) String() string {
	return string(c)
}
