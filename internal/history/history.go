// Package history keeps the most recent conversions in a key-value store.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/govalues/moneytext"
	"go.uber.org/zap"

	"github.com/govalues/moneytext/internal/logging"
)

// ErrNotFound is returned by a [Backend] when the key does not exist.
var ErrNotFound = errors.New("key not found")

const (
	// DefaultKey is the key the history is stored under.
	DefaultKey = "conversionHistory"
	// DefaultLimit is the number of records kept.
	DefaultLimit = 10
)

// Backend is a minimal key-value store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Record is a single conversion.
type Record struct {
	Amount    decimal.Decimal    `json:"amount"`
	From      moneytext.Currency `json:"from"`
	To        moneytext.Currency `json:"to"`
	Result    string             `json:"result"`
	Timestamp time.Time          `json:"timestamp"`
}

// History is a bounded, newest-first list of records stored as one JSON
// array under a single key.
// Add is a read-modify-write and is not atomic across processes.
type History struct {
	backend Backend
	key     string
	limit   int
	logger  *zap.Logger
}

// Option configures a [History].
type Option func(*History)

// WithKey sets the storage key.
func WithKey(key string) Option {
	return func(h *History) {
		if key != "" {
			h.key = key
		}
	}
}

// WithLimit sets the number of records kept.
func WithLimit(limit int) Option {
	return func(h *History) {
		if limit > 0 {
			h.limit = limit
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(h *History) {
		h.logger = logging.OrNop(logger)
	}
}

// New returns a history stored in backend.
func New(backend Backend, opts ...Option) *History {
	h := &History{
		backend: backend,
		key:     DefaultKey,
		limit:   DefaultLimit,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	h.logger = h.logger.Named("history")
	return h
}

// Add prepends r and drops the records beyond the limit.
func (h *History) Add(ctx context.Context, r Record) error {
	records, err := h.List(ctx)
	if err != nil {
		return err
	}
	records = append([]Record{r}, records...)
	if len(records) > h.limit {
		records = records[:h.limit]
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := h.backend.Set(ctx, h.key, data); err != nil {
		return fmt.Errorf("storing history: %w", err)
	}
	h.logger.Debug("recorded conversion",
		zap.Stringer("from", r.From),
		zap.Stringer("to", r.To),
		zap.Int("records", len(records)),
	)
	return nil
}

// List returns the records, newest first.
// A missing key yields an empty list.
func (h *History) List(ctx context.Context) ([]Record, error) {
	data, err := h.backend.Get(ctx, h.key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	return records, nil
}

// Clear removes all records.
func (h *History) Clear(ctx context.Context) error {
	if err := h.backend.Delete(ctx, h.key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
