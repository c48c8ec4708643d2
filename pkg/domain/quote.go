package domain

// Entry is a single quote record: the quoted text and the key it is
// attributed to (an author or a category). Key is the sort discriminant.
type Entry struct {
	Text string
	Key  string
}

// Document is the in-memory form of the quotes file.
// Only the "quotes" field is recognized; anything else is dropped on write.
type Document struct {
	Quotes []Entry
}

// NewDocument creates a Document holding the given entries.
func NewDocument(entries ...Entry) *Document {
	quotes := make([]Entry, len(entries))
	copy(quotes, entries)
	return &Document{Quotes: quotes}
}

// Len returns the number of entries.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Quotes)
}

// Clone returns a copy that shares no backing array with d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	return NewDocument(d.Quotes...)
}

// ByKey returns the entries attributed to key, in document order.
func (d *Document) ByKey(key string) []Entry {
	var out []Entry
	for _, e := range d.Quotes {
		if e.Key == key {
			out = append(out, e)
		}
	}
	return out
}
