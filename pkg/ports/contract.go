package ports

import (
	"context"
	"testing"

	"github.com/aretw0/quotesort/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunQuoteStoreContract runs a suite of tests to verify that a QuoteStore
// implementation adheres to the defined interface contract.
// The store must start out empty.
func RunQuoteStoreContract(t *testing.T, store QuoteStore) {
	ctx := context.Background()

	t.Run("Load missing", func(t *testing.T) {
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Save and Load", func(t *testing.T) {
		doc := domain.NewDocument(
			domain.Entry{Text: "When you start to walk on the way, the way appears.", Key: "Rumi"},
			domain.Entry{Text: "café quote", Key: "é"},
		)

		require.NoError(t, store.Save(ctx, doc), "Save should not return error")

		loaded, err := store.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, doc.Quotes, loaded.Quotes)
	})

	t.Run("Save replaces", func(t *testing.T) {
		doc := domain.NewDocument(domain.Entry{Text: "only", Key: "one"})
		require.NoError(t, store.Save(ctx, doc))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, doc.Quotes, loaded.Quotes)
	})

	t.Run("Loaded document is isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		loaded.Quotes[0].Text = "mutated"

		again, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "only", again.Quotes[0].Text)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, store.Save(cctx, domain.NewDocument()), context.Canceled)
	})

	t.Run("Location", func(t *testing.T) {
		assert.NotEmpty(t, store.Location())
	})
}
