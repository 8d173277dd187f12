package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple value-error iterators into a single
// iterator sequence. Iteration stops after the first error.
func IterSeq2Concat[T any](seqs ...iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, seq := range seqs {
			for val, err := range seq {
				if !yield(val, err) {
					return // Stop if the consumer stops
				}
				if err != nil {
					return
				}
			}
		}
	}
}

// IterSeq2Lazy defers creating an iterator until iteration starts.
func IterSeq2Lazy[T1 any, T2 any](create func() iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for val1, val2 := range create() {
			if !yield(val1, val2) {
				return
			}
		}
	}
}
