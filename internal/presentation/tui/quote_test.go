package tui

import (
	"testing"

	"github.com/aretw0/quotesort/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

var multiline = domain.Entry{
	Text: "If I have been able to see further, it was only\n        because I stood on the shoulders of giants.",
	Key:  "Isaac Newton",
}

func TestFormatQuote_Ascii(t *testing.T) {
	got := FormatQuote(multiline, termenv.Ascii)
	want := "\"If I have been able to see further, it was only\n because I stood on the shoulders of giants.\"\n  -- Isaac Newton\n"
	assert.Equal(t, want, got)
}

func TestFormatQuote_Colored(t *testing.T) {
	got := FormatQuote(domain.Entry{Text: "t", Key: "k"}, termenv.TrueColor)
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "-- k")
}

func TestFormatListLine(t *testing.T) {
	got := FormatListLine(multiline, termenv.Ascii)
	assert.Equal(t, "Isaac Newton: If I have been able to see further, it was only because I stood on the shoulders of giants.\n", got)
}

func TestQuoteMarkdown(t *testing.T) {
	got := QuoteMarkdown(multiline)
	want := "> If I have been able to see further, it was only\n" +
		"> because I stood on the shoulders of giants.\n" +
		">\n" +
		"> — *Isaac Newton*\n"
	assert.Equal(t, want, got)
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer()
	if !assert.NoError(t, err) {
		return
	}
	out, err := render(QuoteMarkdown(domain.Entry{Text: "café", Key: "é"}))
	assert.NoError(t, err)
	assert.Contains(t, out, "caf")
}
