package moneytext

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestAmount_ZeroValue(t *testing.T) {
	got := Amount{}
	if got.Curr() != XXX || !got.IsZero() {
		t.Errorf("Amount{} = %v, want XXX 0", got)
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount, want string
		}{
			{"JPY", "1", "JPY 1"},
			{"JPY", "1.5", "JPY 1.5"},
			{"USD", "1", "USD 1.00"},
			{"USD", "1.5", "USD 1.50"},
			{"USD", "1.555", "USD 1.555"},
			{"CNY", "0", "CNY 0.00"},
			{"RUB", "-3", "RUB -3.00"},
		}
		for _, tt := range tests {
			got, err := ParseAmount(tt.curr, tt.amount)
			if err != nil {
				t.Errorf("ParseAmount(%q, %q) failed: %v", tt.curr, tt.amount, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q, %q) = %q, want %q", tt.curr, tt.amount, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			curr, amount string
		}{
			"currency 1": {"UUU", "0"},
			"currency 2": {"", "0"},
			"amount 1":   {"USD", "abc"},
			"amount 2":   {"USD", ""},
			"overflow 1": {"USD", "99999999999999999999"},
			"overflow 2": {"USD", "9999999999999999999"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseAmount(tt.curr, tt.amount)
				if err == nil {
					t.Errorf("ParseAmount(%q, %q) did not fail", tt.curr, tt.amount)
				}
			})
		}
	})
}

func TestMustParseAmount(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseAmount(\"UUU\", \"0\") did not panic")
			}
		}()
		MustParseAmount("UUU", "0")
	})
}

func TestNewAmountFromDecimal(t *testing.T) {
	got, err := NewAmountFromDecimal(EUR, decimal.MustParse("7"))
	if err != nil {
		t.Fatalf("NewAmountFromDecimal failed: %v", err)
	}
	if want := "EUR 7.00"; got.String() != want {
		t.Errorf("NewAmountFromDecimal(EUR, 7) = %q, want %q", got, want)
	}
}

func TestAmount_Mul(t *testing.T) {
	tests := []struct {
		curr, amount, factor, want string
	}{
		{"CNY", "5", "10000", "CNY 50000.00"},
		{"JPY", "1.5", "100000000", "JPY 150000000.0"},
		{"USD", "0.01", "0.5", "USD 0.005"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.curr, tt.amount)
		e := decimal.MustParse(tt.factor)
		got, err := a.Mul(e)
		if err != nil {
			t.Errorf("%v.Mul(%v) failed: %v", a, e, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%v.Mul(%v) = %q, want %q", a, e, got, tt.want)
		}
	}
}

func TestAmount_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			curr, amount, divisor, want string
		}{
			{"USD", "10", "4", "2.5"},
			{"JPY", "50000", "10000", "5"},
			{"CNY", "1", "3", "0.3333333333333333333"},
		}
		for _, tt := range tests {
			a := MustParseAmount(tt.curr, tt.amount)
			e := decimal.MustParse(tt.divisor)
			got, err := a.Quo(e)
			if err != nil {
				t.Errorf("%v.Quo(%v) failed: %v", a, e, err)
				continue
			}
			want := decimal.MustParse(tt.want)
			if got.Curr() != a.Curr() || got.Decimal().Cmp(want) != 0 {
				t.Errorf("%v.Quo(%v) = %v, want %v %v", a, e, got, a.Curr(), want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		a := MustParseAmount("USD", "1")
		_, err := a.Quo(decimal.MustParse("0"))
		if !errors.Is(err, errDivisionByZero) {
			t.Errorf("%v.Quo(0) = %v, want %v", a, err, errDivisionByZero)
		}
	})
}

func TestAmount_RoundToCurr(t *testing.T) {
	tests := []struct {
		curr, amount, want string
	}{
		{"USD", "1.005", "USD 1.00"},
		{"USD", "1.015", "USD 1.02"},
		{"JPY", "1.5", "JPY 2"},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.curr, tt.amount)
		got := a.RoundToCurr()
		if got.String() != tt.want {
			t.Errorf("%v.RoundToCurr() = %q, want %q", a, got, tt.want)
		}
	}
}

func TestAmount_Text(t *testing.T) {
	tests := []struct {
		curr, amount, want string
	}{
		{"CNY", "0", "零元整"},
		{"CNY", "1234.5", "壹仟贰佰叁拾肆元伍角"},
		{"USD", "1.005", "壹元零壹分"},
		{"JPY", "50000", "伍万元整"},
		{"CNY", "-1", InvalidMarker},
		{"CNY", "1000000000000", TooLargeMarker},
	}
	for _, tt := range tests {
		a := MustParseAmount(tt.curr, tt.amount)
		got := a.Text()
		if got != tt.want {
			t.Errorf("%v.Text() = %q, want %q", a, got, tt.want)
		}
	}
}

func TestAmount_SameCurr(t *testing.T) {
	a := MustParseAmount("USD", "1")
	b := MustParseAmount("USD", "2")
	c := MustParseAmount("EUR", "1")
	if !a.SameCurr(b) {
		t.Errorf("%v.SameCurr(%v) = false, want true", a, b)
	}
	if a.SameCurr(c) {
		t.Errorf("%v.SameCurr(%v) = true, want false", a, c)
	}
}
