package domain

import (
	"slices"
	"strings"
)

// compareKeys orders entries by key only. Byte-wise comparison of UTF-8
// strings matches code point order.
func compareKeys(a, b Entry) int {
	return strings.Compare(a.Key, b.Key)
}

// Sorted returns a new Document whose entries are ordered ascending by key.
// Entries with equal keys keep their relative input order.
// The receiver is not modified.
func (d *Document) Sorted() *Document {
	out := d.Clone()
	if out == nil {
		return NewDocument()
	}
	slices.SortStableFunc(out.Quotes, compareKeys)
	return out
}

// IsSorted reports whether the entries are already in ascending key order.
func (d *Document) IsSorted() bool {
	return d.FirstUnsorted() < 0
}

// FirstUnsorted returns the index of the first entry whose key is smaller
// than its predecessor's, or -1 when the document is sorted.
func (d *Document) FirstUnsorted() int {
	if d == nil {
		return -1
	}
	for i := 1; i < len(d.Quotes); i++ {
		if compareKeys(d.Quotes[i-1], d.Quotes[i]) > 0 {
			return i
		}
	}
	return -1
}

// Moved counts the positions at which before and after hold different entries.
// Both documents are expected to hold the same entries.
func Moved(before, after *Document) int {
	n := 0
	for i := 0; i < before.Len() && i < after.Len(); i++ {
		if before.Quotes[i] != after.Quotes[i] {
			n++
		}
	}
	return n
}
