package moneytext

import (
	"strings"
	"testing"
)

func TestParseText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text    string
			numeral string
			unit    Magnitude
			curr    Currency
			found   bool
		}{
			// Currency names
			{"1000美元", "1000", One, USD, true},
			{"5万日元", "5", TenThousand, JPY, true},
			{"1,234.50欧元", "1234.50", One, EUR, true},
			{"3亿港元", "3", HundredMillion, HKD, true},
			{"20港币", "20", One, HKD, true},
			{"1000卢布", "1000", One, RUB, true},
			{"1000俄币", "1000", One, RUB, true},
			{"15英镑", "15", One, GBP, true},
			{"100人民币", "100", One, CNY, true},
			{"100元", "100", One, CNY, true},
			{"88块", "88", One, CNY, true},
			{"100刀", "100", One, USD, true},
			{"100美金", "100", One, USD, true},
			// Symbols and codes
			{"$1,000", "1000", One, USD, true},
			{"€5", "5", One, EUR, true},
			{"£20", "20", One, GBP, true},
			{"¥88", "88", One, CNY, true},
			{"₽10", "10", One, RUB, true},
			{"2.5万 usd", "2.5", TenThousand, USD, true},
			{"50 rmb", "50", One, CNY, true},
			{"7 Jpy", "7", One, JPY, true},
			// Magnitude words
			{"1万亿", "1", HundredMillion, XXX, false},
			{"1.5亿", "1.5", HundredMillion, XXX, false},
			{"8万", "8", TenThousand, XXX, false},
			// Numerals
			{"100", "100", One, XXX, false},
			{"12,345,678.9", "12345678.9", One, XXX, false},
			{"abc 42 def 17", "42", One, XXX, false},
			{", 5", "5", One, XXX, false},
			{"1,000,", "1000", One, XXX, false},
			{"0.5", "0.5", One, XXX, false},
		}
		for _, tt := range tests {
			got, ok := ParseText(tt.text)
			if !ok {
				t.Errorf("ParseText(%q) did not find a numeral", tt.text)
				continue
			}
			if got.Numeral() != tt.numeral {
				t.Errorf("ParseText(%q).Numeral() = %q, want %q", tt.text, got.Numeral(), tt.numeral)
			}
			if got.Amount().String() != tt.numeral {
				t.Errorf("ParseText(%q).Amount() = %v, want %v", tt.text, got.Amount(), tt.numeral)
			}
			if got.Unit() != tt.unit {
				t.Errorf("ParseText(%q).Unit() = %v, want %v", tt.text, got.Unit(), tt.unit)
			}
			curr, found := got.Curr()
			if tt.found != found || (found && curr != tt.curr) {
				t.Errorf("ParseText(%q).Curr() = %v, %v, want %v, %v", tt.text, curr, found, tt.curr, tt.found)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		tests := []string{
			"", "no digits here", "美元", "万", ",", ".", "一百元",
			"99999999999999999999999",
		}
		for _, tt := range tests {
			_, ok := ParseText(tt)
			if ok {
				t.Errorf("ParseText(%q) found a numeral", tt)
			}
		}
	})
}

func TestParseText_Unanchored(t *testing.T) {
	// Magnitude and currency are found anywhere in the text,
	// even when they are unrelated to the numeral.
	got, ok := ParseText("5 apples, 1万 of them cost 3美元")
	if !ok {
		t.Fatalf("ParseText did not find a numeral")
	}
	if got.Numeral() != "5" {
		t.Errorf("Numeral() = %q, want %q", got.Numeral(), "5")
	}
	if got.Unit() != TenThousand {
		t.Errorf("Unit() = %v, want %v", got.Unit(), TenThousand)
	}
	if curr, _ := got.Curr(); curr != USD {
		t.Errorf("Curr() = %v, want %v", curr, USD)
	}
}

func TestParsedAmount_Scaled(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"5万日元", "50000"},
		{"1.5亿", "150000000.0"},
		{"12.34美元", "12.34"},
	}
	for _, tt := range tests {
		p, ok := ParseText(tt.text)
		if !ok {
			t.Errorf("ParseText(%q) did not find a numeral", tt.text)
			continue
		}
		got, err := p.Scaled()
		if err != nil {
			t.Errorf("ParseText(%q).Scaled() failed: %v", tt.text, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseText(%q).Scaled() = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParsedAmount_CurrName(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"1000卢布", "俄币"},
		{"5万日元", "日元"},
		{"100块", "人民币"},
		{"100", ""},
	}
	for _, tt := range tests {
		p, _ := ParseText(tt.text)
		if got := p.CurrName(); got != tt.want {
			t.Errorf("ParseText(%q).CurrName() = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestParseText_Render(t *testing.T) {
	p, ok := ParseText("1,234.50欧元")
	if !ok {
		t.Fatalf("ParseText did not find a numeral")
	}
	if curr, _ := p.Curr(); curr != EUR || p.Unit() != One {
		t.Fatalf("ParseText = %v %v, want %v %v", curr, p.Unit(), EUR, One)
	}
	d, err := p.Scaled()
	if err != nil {
		t.Fatalf("Scaled() failed: %v", err)
	}
	got := Render(d.String())
	for _, label := range []string{"仟", "佰", "拾", "元"} {
		if !strings.Contains(got, label) {
			t.Errorf("Render(%q) = %q, does not contain %q", d, got, label)
		}
	}
	if want := "壹仟贰佰叁拾肆元伍角"; got != want {
		t.Errorf("Render(%q) = %q, want %q", d, got, want)
	}
	if strings.HasSuffix(got, "整") {
		t.Errorf("Render(%q) = %q, ends with 整", d, got)
	}
}

func TestCurrencyTokens_Order(t *testing.T) {
	// A form that occurs inside a form of a later entry would shadow it.
	for i, earlier := range currencyTokens {
		for _, later := range currencyTokens[i+1:] {
			for _, f := range earlier.forms {
				for _, g := range later.forms {
					if strings.Contains(strings.ToLower(g), strings.ToLower(f)) {
						t.Errorf("%v form %q shadows %v form %q", earlier.curr, f, later.curr, g)
					}
				}
			}
		}
	}
}

func TestCurrencyTokens_Detect(t *testing.T) {
	seen := map[Currency]bool{}
	for _, tok := range currencyTokens {
		if seen[tok.curr] {
			t.Errorf("currency %v is listed twice", tok.curr)
		}
		seen[tok.curr] = true
		for _, f := range tok.forms {
			got, ok := detectCurrency("100" + f)
			if !ok || got != tok.curr {
				t.Errorf("detectCurrency(%q) = %v, %v, want %v, true", "100"+f, got, ok, tok.curr)
			}
		}
	}
	for _, c := range Currencies() {
		if !seen[c] {
			t.Errorf("currency %v has no tokens", c)
		}
	}
}

func TestParseMagnitude(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Magnitude
		}{
			{"", One},
			{"1", One},
			{"万", TenThousand},
			{"10000", TenThousand},
			{"亿", HundredMillion},
			{"100000000", HundredMillion},
		}
		for _, tt := range tests {
			got, err := ParseMagnitude(tt.s)
			if err != nil {
				t.Errorf("ParseMagnitude(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseMagnitude(%q) = %v, want %v", tt.s, got, tt.want)
			}
			if got.Word() != map[Magnitude]string{One: "", TenThousand: "万", HundredMillion: "亿"}[got] {
				t.Errorf("%v.Word() = %q", got, got.Word())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"0", "100", "千", "1e4"}
		for _, tt := range tests {
			_, err := ParseMagnitude(tt)
			if err == nil {
				t.Errorf("ParseMagnitude(%q) did not fail", tt)
			}
		}
	})
}
