// Package rates fetches exchange rate tables from an HTTP endpoint and
// keeps them cached in memory.
//
// A table lists, for one base currency, how many units of every other known
// currency one unit of the base buys. The endpoint is queried as
// GET {base_url}/{BASE} and must answer with a JSON document of the form
//
//	{"base": "CNY", "rates": {"USD": 0.138, ...}, "time_last_updated": 1700000000}
//
// Codes that are not known to [moneytext.ParseCurr] are ignored.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/govalues/decimal"
	"github.com/govalues/moneytext"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/govalues/moneytext/internal/logging"
)

var (
	// ErrMissingRate is returned when a table has no rate for a currency.
	ErrMissingRate = errors.New("missing rate")

	errStatus = errors.New("unexpected status")
)

// Table is a rate table for a single base currency.
type Table struct {
	Base     moneytext.Currency
	Rates    map[moneytext.Currency]decimal.Decimal
	Updated  time.Time // as reported by the endpoint, zero for fallback tables
	Fallback bool      // true if the table is the built-in fallback

	fetched time.Time
}

// RateOf returns the number of units of c bought by one unit of the base.
// The base currency itself always has rate 1.
func (t Table) RateOf(c moneytext.Currency) (decimal.Decimal, error) {
	if c == t.Base {
		return decimal.MustNew(1, 0), nil
	}
	d, ok := t.Rates[c]
	if !ok || !d.IsPos() {
		return decimal.Decimal{}, fmt.Errorf("%v in %v table: %w", c, t.Base, ErrMissingRate)
	}
	return d, nil
}

// Rate returns the from/to exchange rate implied by the table.
func (t Table) Rate(from, to moneytext.Currency) (moneytext.ExchangeRate, error) {
	f, err := t.RateOf(from)
	if err != nil {
		return moneytext.ExchangeRate{}, err
	}
	q, err := t.RateOf(to)
	if err != nil {
		return moneytext.ExchangeRate{}, err
	}
	return moneytext.CrossRate(from, to, f, q)
}

// Options configures a [Provider].
type Options struct {
	BaseURL  string
	CacheTTL time.Duration
	Timeout  time.Duration
	Retries  uint64

	// Fallback rates against CNY, used when a CNY table cannot be fetched.
	Fallback map[moneytext.Currency]decimal.Decimal

	Client     *http.Client
	Logger     *zap.Logger
	NewBackOff func() backoff.BackOff
	Now        func() time.Time
}

// Provider serves rate tables, fetching them on demand.
// It is safe for concurrent use by multiple goroutines.
type Provider struct {
	opts   Options
	client *http.Client
	logger *zap.Logger
	group  singleflight.Group

	mu     sync.RWMutex
	tables map[moneytext.Currency]Table
}

// New returns a provider. Zero options take their defaults: a one hour
// cache, a ten second timeout and exponential backoff between retries.
func New(opts Options) *Provider {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = time.Hour
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.NewBackOff == nil {
		opts.NewBackOff = func() backoff.BackOff { return backoff.NewExponentialBackOff() }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Provider{
		opts:   opts,
		client: client,
		logger: logging.OrNop(opts.Logger).Named("rates"),
		tables: make(map[moneytext.Currency]Table),
	}
}

// Rates returns the table for base.
// A cached table younger than the cache TTL is returned without I/O.
//
// If the fetch fails and base is [moneytext.CNY], the fallback table is
// returned with a nil error and [Table.Fallback] set. For other bases the
// error is returned and any previously fetched table is kept.
func (p *Provider) Rates(ctx context.Context, base moneytext.Currency) (Table, error) {
	if t, ok := p.cached(base); ok {
		return t, nil
	}
	return p.load(ctx, base)
}

// Refresh fetches the table for base, ignoring the cache.
func (p *Provider) Refresh(ctx context.Context, base moneytext.Currency) (Table, error) {
	return p.load(ctx, base)
}

// Prefetch loads the tables for all bases concurrently.
func (p *Provider) Prefetch(ctx context.Context, bases ...moneytext.Currency) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, base := range bases {
		g.Go(func() error {
			_, err := p.Rates(ctx, base)
			return err
		})
	}
	return g.Wait()
}

// Rate returns the from/to exchange rate.
// It uses the table based on from; if that table cannot be loaded or lacks
// one of the currencies, the CNY table is tried once.
func (p *Provider) Rate(ctx context.Context, from, to moneytext.Currency) (moneytext.ExchangeRate, error) {
	t, err := p.Rates(ctx, from)
	if err == nil {
		r, rerr := t.Rate(from, to)
		if rerr == nil {
			return r, nil
		}
		err = rerr
	}
	if from == moneytext.CNY {
		return moneytext.ExchangeRate{}, err
	}
	p.logger.Debug("retrying with CNY table",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Error(err),
	)
	t, err = p.Rates(ctx, moneytext.CNY)
	if err != nil {
		return moneytext.ExchangeRate{}, err
	}
	return t.Rate(from, to)
}

func (p *Provider) cached(base moneytext.Currency) (Table, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	t, ok := p.tables[base]
	if !ok || t.fetched.IsZero() {
		return Table{}, false
	}
	if p.opts.Now().Sub(t.fetched) >= p.opts.CacheTTL {
		return Table{}, false
	}
	return t, true
}

func (p *Provider) store(t Table) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tables[t.Base] = t
}

// load fetches the table for base, collapsing concurrent calls.
// The shared fetch runs detached from the callers' contexts, bounded by
// fetchBudget, so one canceled caller does not fail the others.
func (p *Provider) load(ctx context.Context, base moneytext.Currency) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}
	ch := p.group.DoChan(base.Code(), func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.fetchBudget())
		defer cancel()

		t, err := p.fetch(fctx, base)
		if err != nil {
			return p.fallback(base, err)
		}
		t.fetched = p.opts.Now()
		p.store(t)
		p.logger.Debug("fetched rates",
			zap.Stringer("base", base),
			zap.Int("currencies", len(t.Rates)),
			zap.Time("updated", t.Updated),
		)
		return t, nil
	})

	select {
	case <-ctx.Done():
		return Table{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			p.logger.Debug("shared rate fetch", zap.Stringer("base", base))
		}
		if res.Err != nil {
			return Table{}, res.Err
		}
		return res.Val.(Table), nil
	}
}

// fetchBudget bounds a whole fetch, retries included.
func (p *Provider) fetchBudget() time.Duration {
	return p.opts.Timeout * time.Duration(p.opts.Retries+1)
}

// fallback decides what a failed fetch yields.
func (p *Provider) fallback(base moneytext.Currency, err error) (Table, error) {
	if base != moneytext.CNY || len(p.opts.Fallback) == 0 {
		p.logger.Warn("rate fetch failed", zap.Stringer("base", base), zap.Error(err))
		return Table{}, fmt.Errorf("fetching %v rates: %w", base, err)
	}
	p.logger.Warn("rate fetch failed, using fallback rates", zap.Error(err))
	t := Table{
		Base:     moneytext.CNY,
		Rates:    make(map[moneytext.Currency]decimal.Decimal, len(p.opts.Fallback)),
		Fallback: true,
	}
	for c, d := range p.opts.Fallback {
		if c != moneytext.CNY {
			t.Rates[c] = d
		}
	}
	// The fallback is stored without a fetch time, so the next call retries.
	p.store(t)
	return t, nil
}

type payload struct {
	Base        string                 `json:"base"`
	Rates       map[string]json.Number `json:"rates"`
	LastUpdated int64                  `json:"time_last_updated"`
}

func (p *Provider) fetch(ctx context.Context, base moneytext.Currency) (Table, error) {
	var t Table
	op := func() error {
		var err error
		t, err = p.fetchOnce(ctx, base)
		return err
	}
	b := backoff.WithContext(backoff.WithMaxRetries(p.opts.NewBackOff(), p.opts.Retries), ctx)
	notify := func(err error, wait time.Duration) {
		p.logger.Debug("retrying rate fetch", zap.Stringer("base", base), zap.Duration("wait", wait), zap.Error(err))
	}
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return Table{}, err
	}
	return t, nil
}

func (p *Provider) fetchOnce(ctx context.Context, base moneytext.Currency) (Table, error) {
	endpoint := strings.TrimRight(p.opts.BaseURL, "/") + "/" + base.Code()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Table{}, backoff.Permanent(fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Table{}, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return Table{}, fmt.Errorf("GET %s: %w %d", endpoint, errStatus, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return Table{}, backoff.Permanent(fmt.Errorf("GET %s: %w %d", endpoint, errStatus, resp.StatusCode))
	}

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Table{}, fmt.Errorf("decoding %s: %w", endpoint, err)
	}
	return p.table(base, body)
}

func (p *Provider) table(base moneytext.Currency, body payload) (Table, error) {
	if got, err := moneytext.ParseCurr(body.Base); err != nil || got != base {
		return Table{}, backoff.Permanent(fmt.Errorf("response base %q does not match %v", body.Base, base))
	}
	t := Table{
		Base:  base,
		Rates: make(map[moneytext.Currency]decimal.Decimal, len(body.Rates)),
	}
	if body.LastUpdated > 0 {
		t.Updated = time.Unix(body.LastUpdated, 0).UTC()
	}
	for code, num := range body.Rates {
		c, err := moneytext.ParseCurr(code)
		if err != nil || c == moneytext.XXX || c == base {
			continue
		}
		d, err := decimal.Parse(num.String())
		if err != nil || !d.IsPos() {
			p.logger.Debug("skipping rate", zap.String("code", code), zap.String("rate", num.String()))
			continue
		}
		t.Rates[c] = d
	}
	return t, nil
}
