package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/quotesort"
	"github.com/aretw0/quotesort/internal/presentation/tui"
	"github.com/aretw0/quotesort/pkg/domain"
)

// QOTDOptions configures the 'qotd' command.
type QOTDOptions struct {
	Options
	Mode  string
	Index int
	Plain bool // Skip markdown rendering even on a terminal

	// Selector overrides the clock and random source. Nil uses the defaults.
	Selector *domain.Selector
}

// RunQOTD prints the quote of the day.
func RunQOTD(ctx context.Context, opts QOTDOptions, out io.Writer) error {
	mode, err := domain.ParseMode(opts.Mode)
	if err != nil {
		return err
	}

	sel := domain.NewSelector()
	if opts.Selector != nil {
		copied := *opts.Selector
		sel = &copied
	}
	if mode == domain.ModePick {
		sel.Pinned = opts.Index
	}

	eng := createEngine(opts.Options, quotesort.WithSelector(sel))
	entry, err := eng.QuoteOfTheDay(ctx, mode)
	if err != nil {
		return err
	}

	if !opts.Plain && isTerminal(out) {
		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		s, err := render(tui.QuoteMarkdown(entry))
		if err != nil {
			return fmt.Errorf("failed to render quote: %w", err)
		}
		_, err = io.WriteString(out, s)
		return err
	}

	_, err = io.WriteString(out, tui.FormatQuote(entry, colorProfile(out)))
	return err
}
