package moneytext

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate{}
	want := MustParseCurr("XXX")
	if got.Base() != want || got.Quote() != want || !got.Decimal().IsZero() {
		t.Errorf("ExchangeRate{} = %v, want XXX/XXX 0", got)
	}
}

func TestNewExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q Currency
			r    string
			want string
		}{
			{USD, CNY, "7.2464", "USD/CNY 7.2464"},
			{CNY, JPY, "21.5", "CNY/JPY 21.5"},
			{EUR, EUR, "1", "EUR/EUR 1"},
			{CNY, RUB, "13.5", "CNY/RUB 13.5"},
		}
		for _, tt := range tests {
			got, err := NewExchRate(tt.b, tt.q, decimal.MustParse(tt.r))
			if err != nil {
				t.Errorf("NewExchRate(%v, %v, %v) failed: %v", tt.b, tt.q, tt.r, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewExchRate(%v, %v, %v) = %q, want %q", tt.b, tt.q, tt.r, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			b, q Currency
			r    string
		}{
			"zero":          {USD, CNY, "0"},
			"negative":      {USD, CNY, "-1"},
			"same currency": {USD, USD, "2"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewExchRate(tt.b, tt.q, decimal.MustParse(tt.r))
				if err == nil {
					t.Errorf("NewExchRate(%v, %v, %v) did not fail", tt.b, tt.q, tt.r)
				}
			})
		}
	})
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := ParseExchRate("usd", "CNY", "7.2464")
		if err != nil {
			t.Fatalf("ParseExchRate failed: %v", err)
		}
		if want := "USD/CNY 7.2464"; got.String() != want {
			t.Errorf("ParseExchRate = %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			b, q, r string
		}{
			"base":  {"UUU", "CNY", "1"},
			"quote": {"USD", "UUU", "1"},
			"rate":  {"USD", "CNY", "abc"},
			"zero":  {"USD", "CNY", "0"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseExchRate(tt.b, tt.q, tt.r)
				if err == nil {
					t.Errorf("ParseExchRate(%q, %q, %q) did not fail", tt.b, tt.q, tt.r)
				}
			})
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseExchRate(\"USD\", \"CNY\", \"0\") did not panic")
			}
		}()
		MustParseExchRate("USD", "CNY", "0")
	})
}

func TestCrossRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q                Currency
			baseRate, quoteRate string
			want                string
		}{
			{CNY, USD, "1", "0.138", "0.138"},
			{USD, CNY, "0.138", "1", "7.2464"},
			{USD, EUR, "0.138", "0.127", "0.9203"},
			{EUR, JPY, "0.127", "21.5", "169.2913"},
			{GBP, GBP, "0.109", "0.109", "1"},
		}
		for _, tt := range tests {
			got, err := CrossRate(tt.b, tt.q, decimal.MustParse(tt.baseRate), decimal.MustParse(tt.quoteRate))
			if err != nil {
				t.Errorf("CrossRate(%v, %v, %v, %v) failed: %v", tt.b, tt.q, tt.baseRate, tt.quoteRate, err)
				continue
			}
			if got.Base() != tt.b || got.Quote() != tt.q {
				t.Errorf("CrossRate(%v, %v, ...) = %v, want %v/%v", tt.b, tt.q, got, tt.b, tt.q)
			}
			want := decimal.MustParse(tt.want)
			if got.Decimal().Round(4).Cmp(want) != 0 {
				t.Errorf("CrossRate(%v, %v, %v, %v) = %v, want ≈ %v", tt.b, tt.q, tt.baseRate, tt.quoteRate, got.Decimal(), want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			baseRate, quoteRate string
		}{
			{"0", "1"},
			{"1", "0"},
			{"-1", "1"},
		}
		for _, tt := range tests {
			_, err := CrossRate(USD, CNY, decimal.MustParse(tt.baseRate), decimal.MustParse(tt.quoteRate))
			if err == nil {
				t.Errorf("CrossRate(USD, CNY, %v, %v) did not fail", tt.baseRate, tt.quoteRate)
			}
		}
	})
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q, r, amount, want string
		}{
			{"USD", "CNY", "7.2464", "100", "CNY 724.640000"},
			{"CNY", "JPY", "21.5", "10", "JPY 215.000"},
			{"CNY", "USD", "0.138", "0.5", "USD 0.06900"},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.b, tt.q, tt.r)
			a := MustParseAmount(tt.b, tt.amount)
			got, err := r.Conv(a)
			if err != nil {
				t.Errorf("%v.Conv(%v) failed: %v", r, a, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.Conv(%v) = %q, want %q", r, a, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseExchRate("USD", "CNY", "7.2464")
		a := MustParseAmount("EUR", "1")
		_, err := r.Conv(a)
		if !errors.Is(err, errCurrencyMismatch) {
			t.Errorf("%v.Conv(%v) = %v, want %v", r, a, err, errCurrencyMismatch)
		}
		if r.CanConv(a) {
			t.Errorf("%v.CanConv(%v) = true, want false", r, a)
		}
	})
}

func TestExchangeRate_Inv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q, r, want string
		}{
			{"USD", "CNY", "2", "0.5"},
			{"CNY", "USD", "0.125", "8"},
			{"EUR", "EUR", "1", "1"},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.b, tt.q, tt.r)
			got, err := r.Inv()
			if err != nil {
				t.Errorf("%v.Inv() failed: %v", r, err)
				continue
			}
			if got.Base() != r.Quote() || got.Quote() != r.Base() {
				t.Errorf("%v.Inv() = %v, want %v/%v", r, got, r.Quote(), r.Base())
			}
			if want := decimal.MustParse(tt.want); got.Decimal().Cmp(want) != 0 {
				t.Errorf("%v.Inv() = %v, want %v", r, got.Decimal(), want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r := ExchangeRate{}
		_, err := r.Inv()
		if !errors.Is(err, errDivisionByZero) {
			t.Errorf("%v.Inv() = %v, want %v", r, err, errDivisionByZero)
		}
	})
}

func TestExchangeRate_Display(t *testing.T) {
	tests := []struct {
		b, q, r, want string
	}{
		{"USD", "CNY", "7.2464", "1 USD ≈ 7.2464 CNY"},
		{"CNY", "USD", "0.138", "1 USD ≈ 7.2464 CNY"},
		{"CNY", "JPY", "21.5", "1 CNY ≈ 21.5000 JPY"},
		{"CNY", "EUR", "0.125", "1 EUR ≈ 8.0000 CNY"},
		{"HKD", "HKD", "1", "1 HKD ≈ 1.0000 HKD"},
		{"USD", "HKD", "7.80005", "1 USD ≈ 7.8001 HKD"},
		{"USD", "HKD", "7.80015", "1 USD ≈ 7.8002 HKD"},
		{"USD", "HKD", "7.800049", "1 USD ≈ 7.8000 HKD"},
		{"CNY", "RUB", "12.5", "1 CNY ≈ 12.5000 RUB"},
	}
	for _, tt := range tests {
		r := MustParseExchRate(tt.b, tt.q, tt.r)
		got := r.Display()
		if got != tt.want {
			t.Errorf("%v.Display() = %q, want %q", r, got, tt.want)
		}
	}
}
