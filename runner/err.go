package runner

import (
	"errors"

	"github.com/ezrec/alu8/translate"
)

var f = translate.From

var (
	ErrResultMismatch = errors.New(f("result mismatch"))
	ErrFlagMismatch   = errors.New(f("flag mismatch"))
)

// ErrFieldMismatch is a single outcome field that differs from the vector.
type ErrFieldMismatch struct {
	Field  Mismatch
	Expect int
	Actual int
}

func (err ErrFieldMismatch) Error() string {
	if err.Field == MISMATCH_RESULT {
		return f("%v: expected 0x%02X, got 0x%02X", err.Field.String(), err.Expect, err.Actual)
	}
	return f("%v: expected %d, got %d", err.Field.String(), err.Expect, err.Actual)
}

func (err ErrFieldMismatch) Unwrap() error {
	if err.Field == MISMATCH_RESULT {
		return ErrResultMismatch
	}
	return ErrFlagMismatch
}
