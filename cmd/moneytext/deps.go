package main

import (
	"context"
	"fmt"

	"github.com/govalues/moneytext"
	"github.com/govalues/moneytext/internal/history"
	"github.com/govalues/moneytext/internal/rates"
)

func (a *app) newProvider() (*rates.Provider, error) {
	fallback, err := a.cfg.FallbackRates()
	if err != nil {
		return nil, err
	}
	return rates.New(rates.Options{
		BaseURL:  a.cfg.Rates.BaseURL,
		CacheTTL: a.cfg.Rates.CacheTTL,
		Timeout:  a.cfg.Rates.Timeout,
		Retries:  a.cfg.Rates.Retries,
		Fallback: fallback,
		Logger:   a.logger,
	}), nil
}

// openHistory opens the configured history. The returned function closes
// the underlying store.
func (a *app) openHistory(ctx context.Context) (*history.History, func() error, error) {
	var (
		backend history.Backend
		closer  = func() error { return nil }
	)
	switch a.cfg.History.Backend {
	case "sqlite":
		b, err := history.OpenSQLite(ctx, a.cfg.HistoryPath())
		if err != nil {
			return nil, nil, err
		}
		backend, closer = b, b.Close
	case "redis":
		b, err := history.DialRedis(ctx, a.cfg.Redis.URL)
		if err != nil {
			return nil, nil, err
		}
		backend, closer = b, b.Close
	case "memory":
		backend = history.NewMemoryBackend()
	default:
		return nil, nil, fmt.Errorf("invalid history backend: %s", a.cfg.History.Backend)
	}
	h := history.New(backend,
		history.WithKey(a.cfg.History.Key),
		history.WithLimit(a.cfg.History.Limit),
		history.WithLogger(a.logger),
	)
	return h, closer, nil
}

// parseCurrFlag parses an optional currency flag; empty means XXX.
func parseCurrFlag(name, s string) (moneytext.Currency, error) {
	if s == "" {
		return moneytext.XXX, nil
	}
	c, err := moneytext.ParseCurr(s)
	if err != nil {
		return moneytext.XXX, fmt.Errorf("--%s: %w", name, err)
	}
	return c, nil
}

// parseUnitFlag parses an optional magnitude flag; empty means 0.
func parseUnitFlag(name, s string) (moneytext.Magnitude, error) {
	if s == "" {
		return 0, nil
	}
	m, err := moneytext.ParseMagnitude(s)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return m, nil
}
