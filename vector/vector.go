package vector

import (
	"fmt"
	"iter"

	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/internal"
)

// Vector is a single ALU test vector.
type Vector struct {
	Name   string    // Test name.
	Source string    // File the vector was loaded from, if any.
	Opcode string    // Raw 5-bit opcode code, as written in the source.
	A      int       // Operand A.
	B      int       // Operand B.
	Result int       // Expected result byte.
	Flags  alu.Flags // Expected flags.
}

// String returns a one-line description of the vector.
func (v Vector) String() string {
	return fmt.Sprintf("%v: %v A=0x%02X B=0x%02X -> 0x%02X %v",
		v.Name, v.Opcode, v.A, v.B, v.Result, v.Flags)
}

// Expect returns the vector for an opcode and operands, with the expected
// result and flags computed by the reference model.
func Expect(name string, op alu.Opcode, a, b int) (v Vector, err error) {
	result, flags, err := alu.Evaluate(op, uint(a), uint(b))
	if err != nil {
		return
	}

	v = Vector{
		Name:   name,
		Opcode: op.Code(),
		A:      a,
		B:      b,
		Result: int(result),
		Flags:  flags,
	}

	return
}

// All adapts a plain vector sequence into an error-carrying source.
func All(vectors iter.Seq[Vector]) iter.Seq2[Vector, error] {
	return func(yield func(Vector, error) bool) {
		for v := range vectors {
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Fail returns a source that yields only the error.
func Fail(err error) iter.Seq2[Vector, error] {
	return func(yield func(Vector, error) bool) {
		yield(Vector{}, err)
	}
}

// Concat joins multiple sources into a single source, in order.
// Iteration stops after the first error.
func Concat(sources ...iter.Seq2[Vector, error]) iter.Seq2[Vector, error] {
	return internal.IterSeq2Concat(sources...)
}
