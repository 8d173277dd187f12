package vector

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/alu8/alu"
)

// Exhaustive returns every operand pair for each of the opcodes, with the
// expected values computed by the reference model. With no opcodes, all
// opcodes in the code table are generated. Vectors are named
// '<OP>_<AA>_<BB>', with A and B in hex.
func Exhaustive(ops ...alu.Opcode) iter.Seq[Vector] {
	return func(yield func(Vector) bool) {
		list := ops
		if len(list) == 0 {
			list = slices.Collect(alu.Opcodes())
		}

		for _, op := range list {
			if !op.Valid() {
				continue
			}
			for a := range alu.MASK + 1 {
				for b := range alu.MASK + 1 {
					name := fmt.Sprintf("%v_%02X_%02X", op, a, b)
					v, _ := Expect(name, op, a, b)
					if !yield(v) {
						return
					}
				}
			}
		}
	}
}
