package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/aretw0/quotesort/pkg/domain"
)

// Indent is the per-level indentation of the written file.
const Indent = "    "

type wireDocument struct {
	Quotes [][2]string `json:"quotes"`
}

// Encode serializes doc as the quotes file: a single "quotes" field holding
// [text, key] pairs, indented by four spaces.
//
// Non-ASCII characters (U+2028 and U+2029 included) and the HTML-sensitive
// <, > and & are written literally. The output has no trailing newline.
func Encode(doc *domain.Document) ([]byte, error) {
	wire := wireDocument{Quotes: make([][2]string, 0, doc.Len())}
	if doc != nil {
		for _, e := range doc.Quotes {
			wire.Quotes = append(wire.Quotes, [2]string{e.Text, e.Key})
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(wire); err != nil {
		return nil, fmt.Errorf("failed to encode quotes: %w", err)
	}

	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that
// encoding/json always emits back into literal runes. A sequence is only an
// escape when it is introduced by an odd run of backslashes; an even run is
// an escaped backslash followed by plain text.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if b[i] != '\\' {
			out = append(out, b[i])
			i++
			continue
		}

		n := 0
		for i+n < len(b) && b[i+n] == '\\' {
			n++
		}
		rest := b[i+n:]
		if n%2 == 1 && len(rest) >= 5 && bytes.HasPrefix(rest, []byte("u202")) && (rest[4] == '8' || rest[4] == '9') {
			out = append(out, b[i:i+n-1]...)
			if rest[4] == '8' {
				out = utf8.AppendRune(out, '\u2028')
			} else {
				out = utf8.AppendRune(out, '\u2029')
			}
			i += n + 5
			continue
		}

		out = append(out, b[i:i+n]...)
		i += n
	}
	return out
}
