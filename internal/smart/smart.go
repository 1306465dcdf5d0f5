// Package smart converts amounts written in free text between currencies.
package smart

import (
	"context"
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/govalues/moneytext"
	"go.uber.org/zap"

	"github.com/govalues/moneytext/internal/logging"
)

// ErrNoNumeral is returned when the text contains no numeral.
var ErrNoNumeral = errors.New("no numeral in text")

// RateSource provides exchange rates.
type RateSource interface {
	Rate(ctx context.Context, from, to moneytext.Currency) (moneytext.ExchangeRate, error)
}

// Request describes a conversion. Zero fields are inferred:
// [moneytext.XXX] for a currency and 0 for a magnitude mean "not set".
type Request struct {
	Text       string
	Source     moneytext.Currency  // used when the text names no currency
	Unit       moneytext.Magnitude // overrides the magnitude found in the text
	Target     moneytext.Currency
	TargetUnit moneytext.Magnitude // magnitude the result is expressed in
}

// Result is the outcome of a conversion.
type Result struct {
	Parsed     moneytext.ParsedAmount
	Source     moneytext.Currency
	Target     moneytext.Currency
	Unit       moneytext.Magnitude
	TargetUnit moneytext.Magnitude

	SourceAmount moneytext.Amount // numeral times Unit, in Source
	BaseAmount   moneytext.Amount // SourceAmount converted to Target, unrounded
	Final        decimal.Decimal  // BaseAmount divided by TargetUnit

	Rate          moneytext.ExchangeRate
	RateText      string // for example "1 USD ≈ 7.2464 CNY"
	SourceReading string // standard reading of SourceAmount
	BaseReading   string // standard reading of BaseAmount
}

// FinalText formats the final amount. Amounts in plain units are rounded to
// the scale of the target currency; amounts in 万 or 亿 keep between two and
// four decimal places.
func (r Result) FinalText() string {
	if r.TargetUnit == moneytext.One {
		d := r.Final.Round(r.Target.Scale()).Pad(r.Target.Scale())
		return d.String() + " " + r.Target.Code()
	}
	d := r.Final.Round(4).Trim(2).Pad(2)
	return d.String() + r.TargetUnit.Word() + " " + r.Target.Code()
}

// Defaults holds the currencies a [Converter] falls back to.
type Defaults struct {
	Source moneytext.Currency // used when neither text nor request names one, XXX means CNY
	Target moneytext.Currency // target of CNY amounts, XXX means USD
}

// Converter runs conversions against a rate source.
type Converter struct {
	rates    RateSource
	defaults Defaults
	logger   *zap.Logger
}

// New returns a converter.
func New(rates RateSource, defaults Defaults, logger *zap.Logger) *Converter {
	if defaults.Source == moneytext.XXX {
		defaults.Source = moneytext.CNY
	}
	if defaults.Target == moneytext.XXX {
		defaults.Target = moneytext.USD
	}
	return &Converter{
		rates:    rates,
		defaults: defaults,
		logger:   logging.OrNop(logger).Named("smart"),
	}
}

// Convert parses req.Text and converts the amount found.
func (c *Converter) Convert(ctx context.Context, req Request) (Result, error) {
	p, ok := moneytext.ParseText(req.Text)
	if !ok {
		return Result{}, fmt.Errorf("converting %q: %w", req.Text, ErrNoNumeral)
	}
	res := Result{
		Parsed:     p,
		Source:     c.sourceOf(p, req),
		Unit:       req.Unit,
		TargetUnit: req.TargetUnit,
	}
	if res.Unit == 0 {
		res.Unit = p.Unit()
	}
	if res.TargetUnit == 0 {
		res.TargetUnit = moneytext.One
	}
	res.Target = req.Target
	if res.Target == moneytext.XXX {
		res.Target = c.targetOf(res.Source)
	}

	amount, err := p.Amount().Mul(res.Unit.Decimal())
	if err != nil {
		return Result{}, fmt.Errorf("converting %q: %w", req.Text, err)
	}
	res.SourceAmount, err = moneytext.NewAmountFromDecimal(res.Source, amount)
	if err != nil {
		return Result{}, fmt.Errorf("converting %q: %w", req.Text, err)
	}

	res.Rate, err = c.rates.Rate(ctx, res.Source, res.Target)
	if err != nil {
		return Result{}, fmt.Errorf("converting %q: %w", req.Text, err)
	}
	res.BaseAmount, err = res.Rate.Conv(res.SourceAmount)
	if err != nil {
		return Result{}, fmt.Errorf("converting %q: %w", req.Text, err)
	}
	res.Final, err = res.BaseAmount.Decimal().Quo(res.TargetUnit.Decimal())
	if err != nil {
		return Result{}, fmt.Errorf("converting %q: %w", req.Text, err)
	}

	res.RateText = res.Rate.Display()
	res.SourceReading = moneytext.Reading(res.SourceAmount)
	res.BaseReading = moneytext.Reading(res.BaseAmount)

	c.logger.Debug("converted",
		zap.String("text", req.Text),
		zap.Stringer("source", res.SourceAmount),
		zap.Stringer("rate", res.Rate),
		zap.Stringer("base", res.BaseAmount),
	)
	return res, nil
}

func (c *Converter) sourceOf(p moneytext.ParsedAmount, req Request) moneytext.Currency {
	if curr, ok := p.Curr(); ok {
		return curr
	}
	if req.Source != moneytext.XXX {
		return req.Source
	}
	return c.defaults.Source
}

// targetOf returns the default target: CNY amounts go to the configured
// target, everything else goes to CNY.
func (c *Converter) targetOf(source moneytext.Currency) moneytext.Currency {
	if source == moneytext.CNY {
		return c.defaults.Target
	}
	return moneytext.CNY
}
