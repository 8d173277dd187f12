package runner

import (
	"errors"

	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/vector"
)

// Outcome is the result of checking a single vector.
type Outcome struct {
	Index    int           // Position of the vector in the source.
	Vector   vector.Vector // Vector that was checked.
	Result   uint8         // Result computed by the model.
	Flags    alu.Flags     // Flags computed by the model.
	Mismatch Mismatch      // Fields that differ from the vector.
	Err      error         // Evaluation error, such as alu.ErrUnknownOpcode.
}

// Passed returns true if the model matched every expected field.
func (o Outcome) Passed() bool {
	return o.Err == nil && o.Mismatch == 0
}

// Expected returns the expected value of a single mismatch field.
func (o Outcome) Expected(field Mismatch) int {
	return fieldValue(field, o.Vector.Result, o.Vector.Flags)
}

// Actual returns the computed value of a single mismatch field.
func (o Outcome) Actual(field Mismatch) int {
	return fieldValue(field, int(o.Result), o.Flags)
}

// Error returns nil for a passing outcome, the evaluation error, or the
// joined ErrFieldMismatch for each field that differs.
func (o Outcome) Error() error {
	if o.Err != nil {
		return o.Err
	}

	var errs []error
	for field := range o.Mismatch.Fields() {
		errs = append(errs, ErrFieldMismatch{
			Field:  field,
			Expect: o.Expected(field),
			Actual: o.Actual(field),
		})
	}

	return errors.Join(errs...)
}

func flagValue(b bool) int {
	if b {
		return 1
	}
	return 0
}

func fieldValue(field Mismatch, result int, flags alu.Flags) int {
	switch field {
	case MISMATCH_RESULT:
		return result
	case MISMATCH_CARRY:
		return flagValue(flags.Carry)
	case MISMATCH_ZERO:
		return flagValue(flags.Zero)
	case MISMATCH_OVERFLOW:
		return flagValue(flags.Overflow)
	case MISMATCH_NEGATIVE:
		return flagValue(flags.Negative)
	}
	return 0
}

// compare returns the fields where the computed values differ from the vector.
func compare(v vector.Vector, result uint8, flags alu.Flags) (m Mismatch) {
	if int(result) != v.Result {
		m |= MISMATCH_RESULT
	}
	if flags.Carry != v.Flags.Carry {
		m |= MISMATCH_CARRY
	}
	if flags.Zero != v.Flags.Zero {
		m |= MISMATCH_ZERO
	}
	if flags.Overflow != v.Flags.Overflow {
		m |= MISMATCH_OVERFLOW
	}
	if flags.Negative != v.Flags.Negative {
		m |= MISMATCH_NEGATIVE
	}
	return
}
