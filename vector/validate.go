package vector

import (
	"errors"
	"iter"

	"github.com/ezrec/alu8/alu"
)

func inRange(value int) bool {
	return value >= 0 && value <= 0xff
}

// Validate checks the vector fields: a name is present, the opcode is five
// '0' or '1' characters, and A, B and the expected result are bytes.
// The opcode need not be in the code table.
func (v Vector) Validate() (err error) {
	invalid := func(field string, reason error) error {
		return ErrVectorInvalid{Name: v.Name, Field: field, Err: reason}
	}

	if len(v.Name) == 0 {
		return invalid("test_name", ErrVectorField)
	}

	if len(v.Opcode) == 0 {
		return invalid("opcode", ErrVectorField)
	}
	if len(v.Opcode) != alu.CODE_BITS {
		return invalid("opcode", ErrVectorRange)
	}
	for _, c := range v.Opcode {
		if c != '0' && c != '1' {
			return invalid("opcode", ErrVectorRange)
		}
	}

	if !inRange(v.A) {
		return invalid("A", ErrVectorRange)
	}
	if !inRange(v.B) {
		return invalid("B", ErrVectorRange)
	}
	if !inRange(v.Result) {
		return invalid("expected_result", ErrVectorRange)
	}

	return
}

// Validate checks every vector of a source, and returns the number of vectors
// checked along with the joined validation errors. A source error stops the
// check and is returned as is.
func Validate(vectors iter.Seq2[Vector, error]) (count int, err error) {
	var errs []error
	for v, source_err := range vectors {
		if source_err != nil {
			err = source_err
			return
		}
		count++
		verr := v.Validate()
		if verr != nil {
			errs = append(errs, verr)
		}
	}

	err = errors.Join(errs...)
	return
}
