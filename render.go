package moneytext

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Marker strings returned by [Render] in place of a spelled amount.
const (
	InvalidMarker  = "数据非法"
	TooLargeMarker = "金额过大（超过千亿）"
)

const zeroText = "零元整"

var (
	// ErrInvalidNumeral is returned by [Spell] when the input is not an
	// unsigned decimal number.
	ErrInvalidNumeral = errors.New("invalid numeral")

	// ErrAmountOutOfRange is returned by [Spell] when the amount is not
	// less than one trillion (10^12).
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// maxIntDigits is the number of integer digits covered by unitLabels.
const maxIntDigits = 12

var (
	numeralPattern = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d+)?$`)
	amountLimit    = decimal.MustNew(1_000_000_000_000, 0)
)

// digitGlyphs is indexed by digit value.
var digitGlyphs = [10]string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}

// unitLabels holds the positional labels from the highest slot down to 分.
// A digit string of length n takes the last n labels.
var unitLabels = [maxIntDigits + 2]string{
	"仟", "佰", "拾", "亿",
	"仟", "佰", "拾", "万",
	"仟", "佰", "拾", "元",
	"角", "分",
}

// rewrite is a single text-rewrite step of the normalization pipeline.
type rewrite struct {
	pattern *regexp.Regexp
	repl    string
}

// normalization must run in this exact order: each step relies on the
// artifacts left by the previous ones.
var normalization = []rewrite{
	{regexp.MustCompile(`零(仟|佰|拾|角)`), "零"},
	{regexp.MustCompile(`(零)+`), "零"},
	{regexp.MustCompile(`零(万|亿|元)`), "${1}"},
	{regexp.MustCompile(`(亿)万`), "${1}"},
	{regexp.MustCompile(`^元零?`), ""},
	{regexp.MustCompile(`零分$`), ""},
	{regexp.MustCompile(`元$`), "元整"},
}

func normalize(s string) string {
	for _, r := range normalization {
		s = r.pattern.ReplaceAllString(s, r.repl)
	}
	return s
}

// Render converts a non-negative decimal string to its spelled-out form in
// Chinese financial numerals, for example:
//
//	"0"       -> 零元整
//	"1234.50" -> 壹仟贰佰叁拾肆元伍角
//	"100.05"  -> 壹佰元零伍分
//
// The amount is rounded half away from zero to 分 (hundredths).
// Render never fails: an empty string renders as an empty string, input that
// is not an unsigned decimal number renders as [InvalidMarker], and amounts
// of one trillion or more render as [TooLargeMarker].
// See also [Spell].
func Render(amount string) string {
	s, err := Spell(amount)
	return marker(s, err)
}

// Spell is like [Render] but reports failures as errors instead of marker
// strings. The returned error wraps [ErrInvalidNumeral] or [ErrAmountOutOfRange].
func Spell(amount string) (string, error) {
	if amount == "" {
		return "", nil
	}
	m := numeralPattern.FindStringSubmatch(amount)
	if m == nil {
		return "", fmt.Errorf("spelling %q: %w", amount, ErrInvalidNumeral)
	}
	if len(m[1]) > maxIntDigits {
		return "", fmt.Errorf("spelling %q: %w", amount, ErrAmountOutOfRange)
	}
	// Only three fractional digits affect rounding to 分.
	frac := m[2]
	if len(frac) > 4 {
		frac = frac[:4]
	}
	d, err := decimal.Parse(m[1] + frac)
	if err != nil {
		return "", fmt.Errorf("spelling %q: %w: %v", amount, ErrInvalidNumeral, err)
	}
	s, err := spellDecimal(d)
	if err != nil {
		return "", fmt.Errorf("spelling %q: %w", amount, err)
	}
	return s, nil
}

func spellDecimal(d decimal.Decimal) (string, error) {
	switch {
	case d.IsNeg():
		return "", ErrInvalidNumeral
	case d.IsZero():
		return zeroText, nil
	case d.Cmp(amountLimit) >= 0:
		return "", ErrAmountOutOfRange
	}

	cents, err := toCents(d)
	if err != nil {
		return "", err
	}
	if cents == 0 {
		return zeroText, nil
	}

	digits := strconv.FormatUint(cents, 10)
	if len(digits) > len(unitLabels) {
		return "", ErrAmountOutOfRange
	}
	units := unitLabels[len(unitLabels)-len(digits):]

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		b.WriteString(digitGlyphs[digits[i]-'0'])
		b.WriteString(units[i])
	}
	return normalize(b.String()), nil
}

// roundHalfUp rounds a non-negative d to scale fractional digits,
// rounding ties away from zero.
func roundHalfUp(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	t := d.Trunc(scale)
	r, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if r.Cmp(decimal.MustNew(5, scale+1)) >= 0 {
		return t.Add(decimal.MustNew(1, scale))
	}
	return t, nil
}

// toCents returns d in hundredths, rounded half away from zero.
// d must be non-negative.
func toCents(d decimal.Decimal) (uint64, error) {
	t, err := roundHalfUp(d, 2)
	if err != nil {
		return 0, ErrAmountOutOfRange
	}
	whole, frac, ok := t.Int64(2)
	if !ok {
		return 0, ErrAmountOutOfRange
	}
	return uint64(whole)*100 + uint64(frac), nil //nolint:gosec
}

func marker(s string, err error) string {
	switch {
	case errors.Is(err, ErrAmountOutOfRange):
		return TooLargeMarker
	case err != nil:
		return InvalidMarker
	}
	return s
}
