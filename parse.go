package moneytext

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/govalues/decimal"
)

// Magnitude is the multiplier expressed by a Chinese magnitude word.
type Magnitude int64

const (
	One            Magnitude = 1
	TenThousand    Magnitude = 10_000      // 万
	HundredMillion Magnitude = 100_000_000 // 亿
)

var errInvalidMagnitude = errors.New("invalid magnitude")

// ParseMagnitude converts a string to a magnitude.
// The input must be one of "1", "10000", "100000000", "万" or "亿".
func ParseMagnitude(s string) (Magnitude, error) {
	switch s {
	case "1", "":
		return One, nil
	case "10000", "万":
		return TenThousand, nil
	case "100000000", "亿":
		return HundredMillion, nil
	}
	return One, fmt.Errorf("%w %q", errInvalidMagnitude, s)
}

// Word returns the magnitude word, or an empty string for [One].
func (m Magnitude) Word() string {
	switch m {
	case TenThousand:
		return "万"
	case HundredMillion:
		return "亿"
	}
	return ""
}

// Decimal returns the multiplier as a decimal.
func (m Magnitude) Decimal() decimal.Decimal {
	return decimal.MustNew(int64(m), 0)
}

func (m Magnitude) String() string {
	return fmt.Sprintf("%d", int64(m))
}

// currencyToken maps the surface forms of a currency in free text to it.
type currencyToken struct {
	forms []string
	curr  Currency
}

// currencyTokens is scanned in order and the first entry with a matching
// form wins. An entry whose form occurs inside a form of another entry
// (元 in 美元, 欧元, 日元, 港元) must come after that entry.
var currencyTokens = []currencyToken{
	{[]string{"美元", "美金", "刀", "USD", "$"}, USD},
	{[]string{"欧元", "EUR", "€"}, EUR},
	{[]string{"英镑", "GBP", "£"}, GBP},
	{[]string{"日元", "JPY"}, JPY},
	{[]string{"港币", "港元", "HKD"}, HKD},
	{[]string{"卢布", "俄币", "RUB", "₽"}, RUB},
	{[]string{"人民币", "元", "块", "CNY", "RMB", "¥"}, CNY},
}

var numeralInText = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ParsedAmount is the result of [ParseText].
// The amount is reported as written; the magnitude word is reported
// separately and applied only by [ParsedAmount.Scaled].
type ParsedAmount struct {
	numeral string          // numeral without thousands separators
	amount  decimal.Decimal // value of numeral
	unit    Magnitude       // magnitude word found in the text
	curr    NullCurrency    // currency found in the text
}

// ParseText extracts an amount, a magnitude word and a currency from free
// text such as "1,000.50美元" or "5万日元".
// It returns false if the text contains no numeral.
//
// The three parts are found by independent scans over the whole text:
//   - the amount is the first run of digits, optionally grouped with commas
//     and followed by a decimal fraction;
//   - the magnitude is [HundredMillion] if 亿 occurs anywhere, otherwise
//     [TenThousand] if 万 occurs anywhere, otherwise [One];
//   - the currency is the first currency (in a fixed table order) any of
//     whose symbols, codes or names occurs anywhere, ignoring case.
//
// Nothing checks that the magnitude word or the currency belongs to the
// numeral, so "5 apples in 日本, 1万 in total" yields 5, [TenThousand] and no
// currency. Callers that need positional parsing must not rely on ParseText.
func ParseText(text string) (ParsedAmount, bool) {
	numeral := numeralInText.FindString(text)
	if numeral == "" {
		return ParsedAmount{}, false
	}
	numeral = strings.ReplaceAll(numeral, ",", "")
	d, err := decimal.Parse(numeral)
	if err != nil {
		return ParsedAmount{}, false
	}
	p := ParsedAmount{
		numeral: numeral,
		amount:  d,
		unit:    detectMagnitude(text),
	}
	if c, ok := detectCurrency(text); ok {
		p.curr = NullCurrency{Currency: c, Valid: true}
	}
	return p, true
}

func detectMagnitude(text string) Magnitude {
	switch {
	case strings.Contains(text, "亿"):
		return HundredMillion
	case strings.Contains(text, "万"):
		return TenThousand
	}
	return One
}

func detectCurrency(text string) (Currency, bool) {
	text = strings.ToLower(text)
	for _, tok := range currencyTokens {
		for _, form := range tok.forms {
			if strings.Contains(text, strings.ToLower(form)) {
				return tok.curr, true
			}
		}
	}
	return XXX, false
}

// Numeral returns the numeral as found in the text, without thousands separators.
func (p ParsedAmount) Numeral() string {
	return p.numeral
}

// Amount returns the value of the numeral, without the magnitude applied.
func (p ParsedAmount) Amount() decimal.Decimal {
	return p.amount
}

// Unit returns the magnitude word found in the text.
func (p ParsedAmount) Unit() Magnitude {
	return p.unit
}

// Curr returns the currency found in the text.
// If no currency was found, it returns [XXX] and false, and the caller is
// expected to fall back to a default.
func (p ParsedAmount) Curr() (Currency, bool) {
	return p.curr.Currency, p.curr.Valid
}

// CurrName returns the display name of the currency found in the text,
// or an empty string if none was found.
func (p ParsedAmount) CurrName() string {
	if !p.curr.Valid {
		return ""
	}
	return p.curr.Currency.Name()
}

// Scaled returns the amount multiplied by the detected magnitude.
func (p ParsedAmount) Scaled() (decimal.Decimal, error) {
	d, err := p.amount.Mul(p.unit.Decimal())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("scaling %v by %v: %w", p.amount, p.unit, err)
	}
	return d, nil
}
