package memory

import (
	"context"
	"sync"

	"github.com/aretw0/quotesort/pkg/domain"
)

// Store implements ports.QuoteStore in memory.
// Safe for concurrent use.
type Store struct {
	doc   *domain.Document
	saves int
	mu    sync.RWMutex
}

// NewStore creates a new in-memory store. A nil doc leaves the store empty.
func NewStore(doc *domain.Document) *Store {
	return &Store{doc: doc.Clone()}
}

// Location identifies the store in logs.
func (s *Store) Location() string {
	return "memory"
}

// Save replaces the stored document with a copy of doc.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	copied := doc.Clone()
	if copied == nil {
		copied = domain.NewDocument()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = copied
	s.saves++
	return nil
}

// Load returns a copy so the caller can't mutate the stored document.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return nil, domain.ErrNotFound
	}
	return s.doc.Clone(), nil
}

// Saves returns how many times Save succeeded.
func (s *Store) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
