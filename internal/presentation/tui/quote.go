package tui

import (
	"strings"

	"github.com/aretw0/quotesort/pkg/domain"
	"github.com/muesli/termenv"
)

// FormatQuote renders an entry as plain text:
//
//	"<text>"
//	  -- <key>
//
// The attribution is colored when the profile supports it.
func FormatQuote(e domain.Entry, p termenv.Profile) string {
	text := strings.Join(normalizeLines(e.Text), "\n ")
	author := p.String("-- " + e.Key).Foreground(p.Color("#a78bfa")).Italic()
	return "\"" + text + "\"\n  " + author.String() + "\n"
}

// FormatListLine renders an entry as a single line for listings.
func FormatListLine(e domain.Entry, p termenv.Profile) string {
	key := p.String(e.Key).Foreground(p.Color("#818cf8")).Bold()
	return key.String() + ": " + strings.Join(normalizeLines(e.Text), " ") + "\n"
}
