package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/quotesort/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// QuoteMarkdown formats an entry as a markdown blockquote followed by its attribution.
func QuoteMarkdown(e domain.Entry) string {
	var sb strings.Builder
	for _, line := range normalizeLines(e.Text) {
		sb.WriteString("> ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(">\n")
	fmt.Fprintf(&sb, "> — *%s*\n", e.Key)
	return sb.String()
}

// normalizeLines splits the text on newlines and drops the hanging
// indentation that multi-line quotes carry over from their source.
func normalizeLines(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
