package domain

import (
	"fmt"
	"strings"
)

func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Term is one offering period within a plan year.
type Term string

const (
	TermFall   Term = "fall"
	TermSpring Term = "spring"
	TermSummer Term = "summer"
)

// Terms lists every term in chronological order within an academic year.
var Terms = []Term{TermFall, TermSpring, TermSummer}

// Rank returns the chronological rank of the term within a year,
// fall < spring < summer. Unknown terms sort last.
func (t Term) Rank() int {
	switch t {
	case TermFall:
		return 0
	case TermSpring:
		return 1
	case TermSummer:
		return 2
	default:
		return 3
	}
}

// Valid reports whether t is one of the three known terms.
func (t Term) Valid() bool {
	return t == TermFall || t == TermSpring || t == TermSummer
}

// ParseTerm converts catalog strings like "Fall" into a Term.
func ParseTerm(s string) (Term, error) {
	switch Term(normalizeLower(s)) {
	case TermFall:
		return TermFall, nil
	case TermSpring:
		return TermSpring, nil
	case TermSummer:
		return TermSummer, nil
	}
	return "", fmt.Errorf("unknown term %q", s)
}

// TermSlot identifies one offering period within one plan year.
// Slots are totally ordered by (Year, Term rank).
type TermSlot struct {
	Year int  `json:"year"`
	Term Term `json:"term"`
}

// Before reports whether s is chronologically strictly earlier than other.
func (s TermSlot) Before(other TermSlot) bool {
	if s.Year != other.Year {
		return s.Year < other.Year
	}
	return s.Term.Rank() < other.Term.Rank()
}

// String renders the slot for logs and warning messages.
func (s TermSlot) String() string {
	return fmt.Sprintf("year %d %s", s.Year, s.Term)
}
