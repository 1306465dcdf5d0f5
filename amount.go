package moneytext

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

var (
	errAmountOverflow   = errors.New("amount overflow")
	errCurrencyMismatch = errors.New("currency mismatch")
	errDivisionByZero   = errors.New("division by zero")
)

// Amount type represents a monetary amount in one of the known currencies.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency        // currency of the amount
	value decimal.Decimal // monetary value
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmountSafe creates a new amount and pads it to the scale of the currency.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Amount{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
		}
	}
	return newAmountUnsafe(c, d), nil
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
//
// NewAmountFromDecimal returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return newAmountSafe(curr, amount)
}

// ParseAmount converts currency and decimal strings to an amount.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
// See also constructors [ParseCurr] and [decimal.Parse].
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// SameCurr returns true if amounts are denominated in the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Mul returns the (possibly rounded) product of amount a and factor e.
// It is used to apply magnitude words such as 万 to a parsed amount.
//
// Mul returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	d, err := a.value.Mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return newAmountSafe(a.Curr(), d)
}

// Quo returns the (possibly rounded) quotient of amount a and divisor e.
//
// Quo returns an error if the divisor is 0 or the integer part of the result
// has more than [decimal.MaxPrec] digits.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	if e.IsZero() {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, errDivisionByZero)
	}
	d, err := a.value.Quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return newAmountSafe(a.Curr(), d)
}

// RoundToCurr returns an amount rounded to the scale of its currency
// using rounding half to even.
func (a Amount) RoundToCurr() Amount {
	return newAmountUnsafe(a.Curr(), a.value.Round(a.Curr().Scale()))
}

// Text returns the amount spelled out with Chinese financial numerals,
// for example "壹佰元整". The text always uses 元 regardless of the currency;
// see [Reading] for currency-aware text.
// Text returns one of the marker strings described in [Render] when the
// amount cannot be spelled.
func (a Amount) Text() string {
	s, err := spellDecimal(a.value)
	return marker(s, err)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the amount, for example "CNY 12.30".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().String() + " " + a.value.String()
}
