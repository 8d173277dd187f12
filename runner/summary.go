package runner

import (
	"iter"
	"maps"
	"slices"
	"time"
)

// Tally counts outcomes.
type Tally struct {
	Total  int // Vectors checked.
	Passed int // Vectors that matched.
	Failed int // Vectors that did not match, including Errors.
	Errors int // Vectors whose opcode could not be evaluated.
}

func (t *Tally) add(o Outcome) {
	t.Total++
	switch {
	case o.Passed():
		t.Passed++
	case o.Err != nil:
		t.Failed++
		t.Errors++
	default:
		t.Failed++
	}
}

// Percent returns the percentage of vectors that passed.
func (t Tally) Percent() float64 {
	if t.Total == 0 {
		return 0
	}
	return 100.0 * float64(t.Passed) / float64(t.Total)
}

// Summary is the aggregate result of a run.
type Summary struct {
	Tally
	Elapsed  time.Duration    // Wall-clock time of the run.
	ByOpcode map[string]Tally // Tallies keyed by the vector opcode code.
}

// Rate returns the number of vectors checked per second.
func (s Summary) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Total) / s.Elapsed.Seconds()
}

// Opcodes iterates over the per-opcode tallies, in code order.
func (s Summary) Opcodes() iter.Seq2[string, Tally] {
	return func(yield func(string, Tally) bool) {
		for _, code := range slices.Sorted(maps.Keys(s.ByOpcode)) {
			if !yield(code, s.ByOpcode[code]) {
				return
			}
		}
	}
}
