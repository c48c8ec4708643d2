package quotesort

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/quotesort/internal/adapters"
	"github.com/aretw0/quotesort/pkg/domain"
	"github.com/aretw0/quotesort/pkg/ports"
)

// Engine is the high-level entry point for the quotesort library.
// It binds the quote operations to a QuoteStore.
type Engine struct {
	store    ports.QuoteStore
	selector *domain.Selector
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects a custom QuoteStore, bypassing the default file store.
func WithStore(s ports.QuoteStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSelector sets the strategy state used by QuoteOfTheDay.
func WithSelector(s *domain.Selector) Option {
	return func(e *Engine) {
		e.selector = s
	}
}

// New creates an Engine for the project rooted at dir, whose quotes live
// in dir/public/quotes.json.
func New(dir string, opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.selector == nil {
		e.selector = domain.NewSelector()
	}
	if e.store == nil {
		store := adapters.NewFileStore(dir)
		store.Logger = e.logger
		e.store = store
	}

	return e
}

// Store returns the underlying QuoteStore.
func (e *Engine) Store() ports.QuoteStore {
	return e.store
}

// SortResult summarizes a completed Sort.
type SortResult struct {
	Location string
	Count    int
	Moved    int
}

// Sort loads the document, orders its entries by key and writes it back.
//
// The document is always rewritten so that formatting is normalized, even
// when the order does not change. Nothing is written if loading fails.
func (e *Engine) Sort(ctx context.Context) (*SortResult, error) {
	doc, err := e.Load(ctx)
	if err != nil {
		return nil, err
	}

	sorted := doc.Sorted()
	moved := domain.Moved(doc, sorted)
	e.logger.Debug("Quotes Sorted", "count", sorted.Len(), "moved", moved)

	if err := e.store.Save(ctx, sorted); err != nil {
		return nil, fmt.Errorf("failed to save quotes: %w", err)
	}
	e.logger.Info("Quotes Written", "path", e.store.Location(), "count", sorted.Len(), "moved", moved)

	return &SortResult{
		Location: e.store.Location(),
		Count:    sorted.Len(),
		Moved:    moved,
	}, nil
}

// Check reports whether the stored entries are already ordered by key.
// It returns a *domain.UnsortedError (matching domain.ErrUnsorted) if not.
// The store is never written.
func (e *Engine) Check(ctx context.Context) error {
	doc, err := e.Load(ctx)
	if err != nil {
		return err
	}

	if i := doc.FirstUnsorted(); i >= 0 {
		return &domain.UnsortedError{
			Index:    i,
			Previous: doc.Quotes[i-1].Key,
			Key:      doc.Quotes[i].Key,
		}
	}
	return nil
}

// Load returns the stored document.
func (e *Engine) Load(ctx context.Context) (*domain.Document, error) {
	doc, err := e.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}
	e.logger.Debug("Quotes Loaded", "path", e.store.Location(), "count", doc.Len())
	return doc, nil
}

// QuoteOfTheDay picks one entry according to mode.
func (e *Engine) QuoteOfTheDay(ctx context.Context, mode domain.Mode) (domain.Entry, error) {
	doc, err := e.Load(ctx)
	if err != nil {
		return domain.Entry{}, err
	}

	entry, idx, err := e.selector.Select(doc, mode)
	if err != nil {
		return domain.Entry{}, err
	}
	e.logger.Debug("Quote Selected", "mode", mode, "index", idx, "key", entry.Key)
	return entry, nil
}
