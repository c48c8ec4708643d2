package domain

import (
	"errors"
	"fmt"
)

// ErrParse is returned when the quotes file is not well-formed JSON.
var ErrParse = errors.New("invalid JSON")

// ErrStructure is returned when the JSON is valid but does not have the
// {"quotes": [[text, key], ...]} shape.
var ErrStructure = errors.New("invalid quotes document")

// ErrNotFound is returned when the quotes file does not exist.
var ErrNotFound = errors.New("quotes file not found")

// ErrUnsorted is returned by a check when the entries are not in key order.
var ErrUnsorted = errors.New("quotes are not sorted")

// ErrEmpty is returned when a quote is requested from a document with no entries.
var ErrEmpty = errors.New("no quotes available")

// ErrIndexOutOfRange is returned when a pinned quote index does not exist.
var ErrIndexOutOfRange = errors.New("quote index out of range")

// ErrUnknownMode is returned for an unrecognized selection mode.
var ErrUnknownMode = errors.New("unknown selection mode")

// StructureError describes where a document deviates from the expected shape.
// It matches ErrStructure with errors.Is.
type StructureError struct {
	Field  string // Path to the offending value, e.g. "quotes[3][1]"
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed, if any
}

func (e *StructureError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: field %q: %s", ErrStructure, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s (got %T)", ErrStructure, e.Field, e.Reason, e.Value)
}

func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}

// UnsortedError reports the first entry found out of key order.
type UnsortedError struct {
	Index    int
	Previous string
	Key      string
}

func (e *UnsortedError) Error() string {
	return fmt.Sprintf("%s: entry %d has key %q after %q", ErrUnsorted, e.Index, e.Key, e.Previous)
}

func (e *UnsortedError) Is(target error) bool {
	return target == ErrUnsorted
}
