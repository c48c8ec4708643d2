package ports

import (
	"context"

	"github.com/aretw0/quotesort/pkg/domain"
)

// QuoteStore defines the interface for reading and rewriting the quotes document.
type QuoteStore interface {
	// Load reads and decodes the whole document.
	// Returns an error wrapping domain.ErrNotFound if there is no document.
	Load(ctx context.Context) (*domain.Document, error)

	// Save replaces the stored document with doc.
	Save(ctx context.Context, doc *domain.Document) error

	// Location describes where the document lives, for logs and messages.
	Location() string
}
