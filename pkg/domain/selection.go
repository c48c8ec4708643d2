package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// Mode selects which entry is shown as the quote of the day.
type Mode string

const (
	// ModeDay shows the same quote for a whole day (day of month modulo count).
	ModeDay Mode = "day"
	// ModeRandom shows a uniformly random quote.
	ModeRandom Mode = "random"
	// ModeLast shows the last entry of the document.
	ModeLast Mode = "last"
	// ModePick shows the entry at a fixed index.
	ModePick Mode = "pick"
)

// DefaultPickIndex is the index used by ModePick when none is given.
const DefaultPickIndex = 14

// Modes lists the supported selection modes.
func Modes() []Mode {
	return []Mode{ModeDay, ModeRandom, ModeLast, ModePick}
}

// ParseMode converts a user-supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Selector picks a quote of the day. The zero value uses the wall clock
// and the global random source.
type Selector struct {
	Now    func() time.Time
	IntN   func(n int) int
	Pinned int
}

// NewSelector creates a Selector with the default clock, random source and pinned index.
func NewSelector() *Selector {
	return &Selector{
		Now:    time.Now,
		IntN:   rand.Intn,
		Pinned: DefaultPickIndex,
	}
}

// Select returns the entry chosen by mode, along with its index.
func (s *Selector) Select(doc *Document, mode Mode) (Entry, int, error) {
	n := doc.Len()
	if n == 0 {
		return Entry{}, -1, ErrEmpty
	}

	var idx int
	switch mode {
	case ModeDay:
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		idx = now().Day() % n
	case ModeRandom:
		intN := rand.Intn
		if s.IntN != nil {
			intN = s.IntN
		}
		idx = intN(n)
	case ModeLast:
		idx = n - 1
	case ModePick:
		idx = s.Pinned
		if idx < 0 || idx >= n {
			return Entry{}, -1, fmt.Errorf("%w: %d (have %d quotes)", ErrIndexOutOfRange, idx, n)
		}
	default:
		return Entry{}, -1, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	return doc.Quotes[idx], idx, nil
}
