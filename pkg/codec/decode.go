package codec

import (
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/aretw0/quotesort/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// QuotesKey is the only top-level field of the quotes file.
const QuotesKey = "quotes"

// rawDocument is the loosely typed view of the file, before entries are checked.
type rawDocument struct {
	Quotes []any `mapstructure:"quotes"`
}

// Details reports what decoding discarded. Neither case is an error.
type Details struct {
	IgnoredKeys      []string // Top-level keys other than "quotes"
	TruncatedEntries int      // Entries that had more than two elements
}

// Decode parses a quotes file into a Document.
func Decode(data []byte) (*domain.Document, error) {
	doc, _, err := DecodeDetailed(data)
	return doc, err
}

// DecodeDetailed parses a quotes file and also reports what was dropped.
//
// Invalid JSON or invalid UTF-8 yields an error wrapping domain.ErrParse. Valid JSON of the
// wrong shape yields a *domain.StructureError.
func DecodeDetailed(data []byte) (*domain.Document, Details, error) {
	var details Details

	if !utf8.Valid(data) {
		return nil, details, fmt.Errorf("%w: input is not valid UTF-8", domain.ErrParse)
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, details, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, details, &domain.StructureError{Field: "$", Reason: "top-level value must be an object", Value: root}
	}

	quotes, present := obj[QuotesKey]
	if !present {
		return nil, details, &domain.StructureError{Field: QuotesKey, Reason: "missing"}
	}
	if quotes == nil {
		return nil, details, &domain.StructureError{Field: QuotesKey, Reason: "must be an array, got null"}
	}

	var raw rawDocument
	var meta mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &raw,
		Metadata: &meta,
	})
	if err != nil {
		return nil, details, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(obj); err != nil {
		return nil, details, &domain.StructureError{Field: QuotesKey, Reason: "must be an array", Value: quotes}
	}

	details.IgnoredKeys = meta.Unused
	sort.Strings(details.IgnoredKeys)

	doc := &domain.Document{Quotes: make([]domain.Entry, 0, len(raw.Quotes))}
	for i, item := range raw.Quotes {
		entry, extra, err := decodeEntry(i, item)
		if err != nil {
			return nil, details, err
		}
		if extra {
			details.TruncatedEntries++
		}
		doc.Quotes = append(doc.Quotes, entry)
	}

	return doc, details, nil
}

// decodeEntry reads the first two positions of a [text, key, ...] array.
func decodeEntry(i int, item any) (domain.Entry, bool, error) {
	field := fmt.Sprintf("%s[%d]", QuotesKey, i)

	pair, ok := item.([]any)
	if !ok {
		return domain.Entry{}, false, &domain.StructureError{Field: field, Reason: "entry must be an array", Value: item}
	}
	if len(pair) < 2 {
		return domain.Entry{}, false, &domain.StructureError{
			Field:  field,
			Reason: fmt.Sprintf("entry must have at least 2 elements, has %d", len(pair)),
		}
	}

	text, ok := pair[0].(string)
	if !ok {
		return domain.Entry{}, false, &domain.StructureError{Field: field + "[0]", Reason: "text must be a string", Value: pair[0]}
	}
	key, ok := pair[1].(string)
	if !ok {
		return domain.Entry{}, false, &domain.StructureError{Field: field + "[1]", Reason: "key must be a string", Value: pair[1]}
	}

	return domain.Entry{Text: text, Key: key}, len(pair) > 2, nil
}
