// Package view implements the presentation-side table operations: sorting,
// filtering and pagination over already-fetched snapshots, and markdown
// rendering for ticket bodies. Nothing in here touches the network.
package view

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction parsed from a query parameter.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseDirection maps a query value to a direction, defaulting to ascending.
func ParseDirection(s string) Direction {
	if s == "desc" {
		return Descending
	}
	return Ascending
}

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Collation is shared across sorts; the collator keeps internal buffers, so
// access is serialized.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und, collate.IgnoreCase)
)

func compareFold(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// Field compares two records on one column. missing reports a value absent
// from the record; absent values sort after everything else ascending and
// before everything else descending, regardless of the comparator.
type Field[T any] struct {
	cmp     func(a, b T) int
	missing func(T) bool
}

// StringField sorts case-insensitively; the empty string counts as missing.
func StringField[T any](get func(T) string) Field[T] {
	return Field[T]{
		cmp:     func(a, b T) int { return compareFold(get(a), get(b)) },
		missing: func(v T) bool { return get(v) == "" },
	}
}

// NumberField sorts by numeric value. Zero is a real value, not a missing
// one: a ticket opened today has ageInDays 0 and still sorts by value.
func NumberField[T any](get func(T) float64) Field[T] {
	return Field[T]{
		cmp: func(a, b T) int {
			x, y := get(a), get(b)
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		},
		missing: func(T) bool { return false },
	}
}

// DateField sorts by instant. Unparsable or empty values count as missing.
func DateField[T any](get func(T) string) Field[T] {
	instant := func(v T) (time.Time, bool) {
		return parseInstant(get(v))
	}
	return Field[T]{
		cmp: func(a, b T) int {
			x, _ := instant(a)
			y, _ := instant(b)
			switch {
			case x.Before(y):
				return -1
			case x.After(y):
				return 1
			}
			return 0
		},
		missing: func(v T) bool {
			_, ok := instant(v)
			return !ok
		},
	}
}

// RankField sorts by an explicit rank table. Values outside the table rank
// zero and compare below every ranked value rather than counting as missing.
func RankField[T any](get func(T) int) Field[T] {
	return Field[T]{
		cmp:     func(a, b T) int { return get(a) - get(b) },
		missing: func(T) bool { return false },
	}
}

var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortBy orders items in place on the given field. The sort is stable, so
// records equal on the field keep their snapshot order and re-sorting on the
// same field is idempotent.
func SortBy[T any](items []T, f Field[T], dir Direction) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		am, bm := f.missing(a), f.missing(b)
		if am || bm {
			if am == bm {
				return false
			}
			if dir == Ascending {
				return bm // present before missing
			}
			return am // missing before present
		}
		c := f.cmp(a, b)
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
}
