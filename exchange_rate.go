package moneytext

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", where XXX indicates
// an unknown currency.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // how many units of quote currency are needed to exchange for 1 unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive")
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be equal to 1")
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also methods [ParseCurr] and [decimal.Parse].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("quote currency parsing: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate parsing: %w", err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// CrossRate derives the base/quote rate from two rates quoted against a
// common pivot currency: baseRate and quoteRate are the number of units of
// base and quote obtained for 1 unit of the pivot.
// For example, with a CNY pivot, USD 0.138 and EUR 0.127 give USD/EUR of about 0.9203.
func CrossRate(base, quote Currency, baseRate, quoteRate decimal.Decimal) (ExchangeRate, error) {
	if !baseRate.IsPos() || !quoteRate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("computing %v/%v: pivot rates must be positive", base, quote)
	}
	if base == quote {
		return NewExchRate(base, quote, baseRate.One())
	}
	d, err := quoteRate.Quo(baseRate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("computing %v/%v: %w", base, quote, err)
	}
	return NewExchRate(base, quote, d)
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the rate as a decimal.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr() == r.Base() &&
		r.Base() != XXX &&
		r.Quote() != XXX &&
		r.value.IsPos()
}

// Conv returns the amount converted from the base currency to the quote currency.
// The result is not rounded to the scale of the quote currency.
//
// Conv returns an error if the base currency of the exchange rate does not
// match the currency of the given amount, or if the product overflows.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, fmt.Errorf("%v.Conv(%v): %w", r, b, errCurrencyMismatch)
	}
	f, err := r.value.Mul(b.Decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("%v.Conv(%v): %w", r, b, err)
	}
	return newAmountSafe(r.Quote(), f)
}

// Inv returns the inverse of the exchange rate.
//
// Inv returns an error if the rate is zero.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	d := r.value
	if d.IsZero() {
		return ExchangeRate{}, fmt.Errorf("%v.Inv(): zero rate does not have an inverse: %w", r, errDivisionByZero)
	}
	one := d.One()
	e, err := one.Quo(d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("%v.Inv(): %w", r, err)
	}
	return NewExchRate(r.Quote(), r.Base(), e)
}

// Display returns the rate in the form "1 USD ≈ 7.2464 CNY" with four digits
// after the decimal point, ties rounded away from zero.
// Rates below one are shown inverted, so that the number shown is at least one.
func (r ExchangeRate) Display() string {
	if r.value.IsPos() && r.value.WithinOne() {
		if inv, err := r.Inv(); err == nil {
			r = inv
		}
	}
	d, err := roundHalfUp(r.value, 4)
	if err != nil {
		d = r.value.Round(4)
	}
	return fmt.Sprintf("1 %v ≈ %v %v", r.Base(), d.Pad(4), r.Quote())
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, for example "USD/CNY 7.2464".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().String() + "/" + r.Quote().String() + " " + r.value.String()
}
