// Package vector provides ALU test vectors.
//
// A Vector names an opcode code, two operands and the result and flags the
// ALU is expected to produce. Vectors come from JSON documents, from
// starlark scripts, or from the exhaustive generator, and are consumed as
// iter.Seq2[Vector, error] sources by the conformance runner.
package vector
