// Package sorting orders sibling entries with a numeric-prefix aware,
// locale-aware natural comparator.
package sorting

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Mode selects a built-in ordering.
type Mode string

const (
	ModeAsc  Mode = "asc"
	ModeDesc Mode = "desc"
)

var modeNormalizer = normalization.NewNormalizer("sort mode", map[string]Mode{
	"asc":  ModeAsc,
	"desc": ModeDesc,
}, ModeAsc)

// ParseMode converts a config string into a Mode. Empty input means ascending.
func ParseMode(raw string) (Mode, error) {
	return modeNormalizer.Parse(raw)
}

// Comparator is a total order over entry names returning <0, 0 or >0.
type Comparator func(a, b string) int

// Sorter sorts entries by name. A Sorter holds a collator and is not safe for
// concurrent use.
type Sorter struct {
	compare Comparator
}

// New returns a Sorter for a built-in mode.
func New(mode Mode) *Sorter {
	n := newNatural()
	cmp := func(a, b string) int { return comparePrefixed(n, a, b) }
	if mode == ModeDesc {
		return &Sorter{compare: func(a, b string) int { return -cmp(a, b) }}
	}
	return &Sorter{compare: cmp}
}

// WithComparator returns a Sorter using a caller supplied order.
func WithComparator(cmp Comparator) *Sorter {
	return &Sorter{compare: cmp}
}

// Compare exposes the effective comparator.
func (s *Sorter) Compare(a, b string) int {
	return s.compare(a, b)
}

// Sort orders items in place by name. Equal keys keep their relative order.
func Sort[T any](s *Sorter, items []T, name func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		return s.compare(name(a), name(b))
	})
}

// Sorted returns a sorted copy of items, leaving the input untouched.
func Sorted[T any](s *Sorter, items []T, name func(T) string) []T {
	out := slices.Clone(items)
	Sort(s, out, name)
	return out
}

type natural struct {
	col *collate.Collator
}

func newNatural() *natural {
	return &natural{col: collate.New(language.Und, collate.IgnoreCase, collate.Numeric)}
}

func (n *natural) compare(a, b string) int {
	return n.col.CompareString(a, b)
}

// comparePrefixed compares numerically on leading digit runs when both names
// have one, breaking ties on the remainders; otherwise it falls back to a
// natural comparison of the full names.
func comparePrefixed(n *natural, a, b string) int {
	numA, restA, okA := splitNumericPrefix(a)
	numB, restB, okB := splitNumericPrefix(b)
	if okA && okB {
		if c := compareDigits(numA, numB); c != 0 {
			return c
		}
		return n.compare(restA, restB)
	}
	return n.compare(a, b)
}

// splitNumericPrefix returns the leading digit run and the remainder with a
// single separator character removed.
func splitNumericPrefix(name string) (digits, rest string, ok bool) {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", name, false
	}
	rest = name[i:]
	for _, sep := range []string{".", "_", "-", " ", "\t", "、", "，"} {
		if strings.HasPrefix(rest, sep) {
			rest = rest[len(sep):]
			break
		}
	}
	return name[:i], rest, true
}

// compareDigits compares two ASCII digit strings of any length by value.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
