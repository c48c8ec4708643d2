package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aretw0/quotesort/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDocument(n int) *domain.Document {
	doc := domain.NewDocument()
	for i := 0; i < n; i++ {
		doc.Quotes = append(doc.Quotes, domain.Entry{Text: string(rune('a' + i)), Key: "K"})
	}
	return doc
}

func TestSelector_Select(t *testing.T) {
	doc := fixtureDocument(5)
	sel := &domain.Selector{
		Now:    func() time.Time { return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC) },
		IntN:   func(n int) int { return n - 2 },
		Pinned: 1,
	}

	tests := []struct {
		mode domain.Mode
		want int
	}{
		{domain.ModeDay, 19 % 5},
		{domain.ModeRandom, 3},
		{domain.ModeLast, 4},
		{domain.ModePick, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			entry, idx, err := sel.Select(doc, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, idx)
			assert.Equal(t, doc.Quotes[tt.want], entry)
		})
	}
}

func TestSelector_Errors(t *testing.T) {
	sel := domain.NewSelector()

	_, _, err := sel.Select(domain.NewDocument(), domain.ModeLast)
	assert.ErrorIs(t, err, domain.ErrEmpty)

	// Default pinned index is beyond a short document.
	_, _, err = sel.Select(fixtureDocument(3), domain.ModePick)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	_, _, err = sel.Select(fixtureDocument(3), domain.Mode("weekly"))
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestSelector_ZeroValue(t *testing.T) {
	var sel domain.Selector
	doc := fixtureDocument(3)

	_, idx, err := sel.Select(doc, domain.ModeRandom)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 3)

	_, idx, err = sel.Select(doc, domain.ModePick)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestParseMode(t *testing.T) {
	for _, m := range domain.Modes() {
		got, err := domain.ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := domain.ParseMode("hourly")
	assert.True(t, errors.Is(err, domain.ErrUnknownMode))
}

func TestStructureError(t *testing.T) {
	err := &domain.StructureError{Field: "quotes[2]", Reason: "must have at least 2 elements", Value: []any{"x"}}
	assert.ErrorIs(t, err, domain.ErrStructure)
	assert.Contains(t, err.Error(), `"quotes[2]"`)
	assert.Contains(t, err.Error(), "[]interface {}")

	unsorted := &domain.UnsortedError{Index: 3, Previous: "B", Key: "A"}
	assert.ErrorIs(t, unsorted, domain.ErrUnsorted)
	assert.Contains(t, unsorted.Error(), "entry 3")
}
