package alu

import (
	"math/bits"
)

const (
	WIDTH    = 8                // Operand width, in bits.
	MASK     = (1 << WIDTH) - 1 // Operand mask.
	SIGN_BIT = 1 << (WIDTH - 1) // Sign bit of an operand.
)

// Execute decodes a 5-bit code string and evaluates it.
func Execute(code string, a, b uint) (result uint8, flags Flags, err error) {
	op, err := Decode(code)
	if err != nil {
		return
	}

	return Evaluate(op, a, b)
}

// Evaluate performs the ALU operation on the two operands, and returns the
// result byte and status flags. Operands are masked to 8 bits.
func Evaluate(op Opcode, a, b uint) (result uint8, flags Flags, err error) {
	if !op.Valid() {
		err = ErrUnknownOpcode(op.String())
		return
	}

	a &= MASK
	b &= MASK

	var carry, overflow bool

	switch op {
	case OP_ADD:
		sum := a + b
		result = uint8(sum)
		carry = sum > MASK
		overflow = (a&SIGN_BIT) == (b&SIGN_BIT) && (uint(result)&SIGN_BIT) != (a&SIGN_BIT)
	case OP_SUB:
		result, carry, overflow = subtract(a, b)
	case OP_INC_A:
		result = uint8(a + 1)
		carry = a == MASK
		overflow = a == SIGN_BIT-1
	case OP_DEC_A:
		result = uint8(a - 1)
		carry = a >= 1 // a - 1 >= 0
		overflow = a == SIGN_BIT
	case OP_LSL:
		carry = (a & SIGN_BIT) != 0
		result = uint8(a << 1)
	case OP_LSR:
		carry = (a & 1) != 0
		result = uint8(a >> 1)
	case OP_ASR:
		carry = (a & 1) != 0
		result = uint8((a >> 1) | (a & SIGN_BIT))
	case OP_REV_A:
		result = bits.Reverse8(uint8(a))
	case OP_NAND:
		result = ^uint8(a & b)
	case OP_NOR:
		result = ^uint8(a | b)
	case OP_XOR:
		result = uint8(a ^ b)
	case OP_PASS_A:
		result = uint8(a)
	case OP_PASS_B:
		result = uint8(b)
	case OP_AND:
		result = uint8(a & b)
	case OP_OR:
		result = uint8(a | b)
	case OP_XNOR:
		result = ^uint8(a ^ b)
	case OP_CMP:
		// Flags of the subtraction, result discarded.
		_, carry, overflow = subtract(a, b)
		result = 0
	case OP_NOT_A:
		result = ^uint8(a)
	case OP_NOT_B:
		result = ^uint8(b)
	default:
		err = ErrUnknownOpcode(op.String())
		return
	}

	flags = Flags{
		Carry:    carry,
		Zero:     result == 0,
		Overflow: overflow,
		Negative: (result & SIGN_BIT) != 0,
	}

	return
}

// subtract computes a - b, where carry is set when there is no borrow.
func subtract(a, b uint) (result uint8, carry bool, overflow bool) {
	diff := int(a) - int(b)
	result = uint8(diff)
	carry = diff >= 0
	overflow = (a&SIGN_BIT) != (b&SIGN_BIT) && (uint(result)&SIGN_BIT) != (a&SIGN_BIT)
	return
}
