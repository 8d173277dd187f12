package alu

import (
	"fmt"
)

// Flags are the ALU status flags.
type Flags struct {
	Carry    bool // Unsigned carry (ADD), or no-borrow (SUB, DEC_A, CMP).
	Zero     bool // Result is zero.
	Overflow bool // Signed two's-complement overflow.
	Negative bool // Bit 7 of the result.
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// String returns the flags as 'C=x Z=x V=x N=x'.
func (fl Flags) String() string {
	return fmt.Sprintf("C=%d Z=%d V=%d N=%d",
		bit(fl.Carry), bit(fl.Zero), bit(fl.Overflow), bit(fl.Negative))
}
