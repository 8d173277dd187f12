package runner

import (
	"iter"
	"strings"
)

// Mismatch is a set of outcome fields that differ from the expected values.
type Mismatch int

const (
	MISMATCH_RESULT   = Mismatch(1 << 0)
	MISMATCH_CARRY    = Mismatch(1 << 1)
	MISMATCH_ZERO     = Mismatch(1 << 2)
	MISMATCH_OVERFLOW = Mismatch(1 << 3)
	MISMATCH_NEGATIVE = Mismatch(1 << 4)

	MISMATCH_FLAGS = MISMATCH_CARRY | MISMATCH_ZERO | MISMATCH_OVERFLOW | MISMATCH_NEGATIVE
	MISMATCH_ALL   = MISMATCH_RESULT | MISMATCH_FLAGS
)

var _mismatchName = [...]string{
	"result",
	"carry",
	"zero",
	"overflow",
	"negative",
}

// Fields iterates over the single-field members of the set, in field order.
func (m Mismatch) Fields() iter.Seq[Mismatch] {
	return func(yield func(Mismatch) bool) {
		for n := range _mismatchName {
			field := Mismatch(1 << n)
			if m&field == 0 {
				continue
			}
			if !yield(field) {
				return
			}
		}
	}
}

// String returns the field names of the set, separated by '|'.
func (m Mismatch) String() string {
	var names []string
	for n, name := range _mismatchName {
		if m&Mismatch(1<<n) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}
