package quotesort_test

import (
	"context"
	"fmt"

	"github.com/aretw0/quotesort"
	"github.com/aretw0/quotesort/pkg/adapters/memory"
	"github.com/aretw0/quotesort/pkg/domain"
)

func ExampleEngine_Sort() {
	store := memory.NewStore(domain.NewDocument(
		domain.Entry{Text: "b quote", Key: "B"},
		domain.Entry{Text: "a quote", Key: "A"},
		domain.Entry{Text: "c quote", Key: "A"},
	))
	eng := quotesort.New("", quotesort.WithStore(store))

	ctx := context.Background()
	if _, err := eng.Sort(ctx); err != nil {
		fmt.Println(err)
		return
	}

	doc, _ := eng.Load(ctx)
	for _, e := range doc.Quotes {
		fmt.Printf("%s: %s\n", e.Key, e.Text)
	}
	// Output:
	// A: a quote
	// A: c quote
	// B: b quote
}
