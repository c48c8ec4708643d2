package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/quotesort/internal/presentation/tui"
	"github.com/aretw0/quotesort/pkg/codec"
	"github.com/aretw0/quotesort/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Output formats supported by 'list'.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ListOptions configures the 'list' command.
type ListOptions struct {
	Options
	Author string // Exact key to filter by; empty lists everything
	Format string
}

type yamlQuote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

type yamlExport struct {
	Quotes []yamlQuote `yaml:"quotes"`
}

// RunList prints the entries in file order.
func RunList(ctx context.Context, opts ListOptions, out io.Writer) error {
	eng := createEngine(opts.Options)

	doc, err := eng.Load(ctx)
	if err != nil {
		return err
	}
	if opts.Author != "" {
		doc = domain.NewDocument(doc.ByKey(opts.Author)...)
	}

	switch opts.Format {
	case "", FormatText:
		p := colorProfile(out)
		for _, e := range doc.Quotes {
			if _, err := io.WriteString(out, tui.FormatListLine(e, p)); err != nil {
				return err
			}
		}
		return nil

	case FormatJSON:
		data, err := codec.Encode(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err

	case FormatYAML:
		export := yamlExport{Quotes: make([]yamlQuote, 0, doc.Len())}
		for _, e := range doc.Quotes {
			export.Quotes = append(export.Quotes, yamlQuote{Text: e.Text, Author: e.Key})
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(export); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", opts.Format, FormatText, FormatJSON, FormatYAML)
	}
}
