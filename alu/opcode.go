package alu

import (
	"fmt"
	"iter"
	"strings"
)

// Opcode is an ALU operation. The value of each opcode is its 5-bit code.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD    = Opcode(0b00000) // ADD
	OP_SUB    = Opcode(0b00001) // SUB
	OP_INC_A  = Opcode(0b00010) // INC_A
	OP_DEC_A  = Opcode(0b00011) // DEC_A
	OP_LSL    = Opcode(0b00100) // LSL
	OP_LSR    = Opcode(0b00101) // LSR
	OP_ASR    = Opcode(0b00110) // ASR
	OP_REV_A  = Opcode(0b00111) // REV_A
	OP_NAND   = Opcode(0b01000) // NAND
	OP_NOR    = Opcode(0b01001) // NOR
	OP_XOR    = Opcode(0b01010) // XOR
	OP_PASS_A = Opcode(0b01011) // PASS_A
	OP_PASS_B = Opcode(0b01100) // PASS_B
	OP_AND    = Opcode(0b01101) // AND
	OP_OR     = Opcode(0b01110) // OR
	OP_XNOR   = Opcode(0b01111) // XNOR
	OP_CMP    = Opcode(0b10000) // CMP
	OP_NOT_A  = Opcode(0b10001) // NOT_A
	OP_NOT_B  = Opcode(0b10010) // NOT_B
)

// OP_COUNT is the number of opcodes in the code table.
const OP_COUNT = 19

// CODE_BITS is the width of an opcode code.
const CODE_BITS = 5

// Class is an opcode class.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_ARITHMETIC = Class(0) // arithmetic
	CLASS_SHIFT      = Class(1) // shift
	CLASS_LOGIC      = Class(2) // logic
	CLASS_SPECIAL    = Class(3) // special
)

// opInfo is the listing text for an opcode.
type opInfo struct {
	Expression  string
	Description string
}

var _opInfo = [OP_COUNT]opInfo{
	OP_ADD:    {"A + B", "Addition"},
	OP_SUB:    {"A - B", "Subtraction (no-borrow carry)"},
	OP_INC_A:  {"A + 1", "Increment A"},
	OP_DEC_A:  {"A - 1", "Decrement A"},
	OP_LSL:    {"A << 1", "Logical shift left"},
	OP_LSR:    {"A >> 1", "Logical shift right"},
	OP_ASR:    {"A >> 1 (sign)", "Arithmetic shift right"},
	OP_REV_A:  {"reverse(A)", "Reverse bit order of A"},
	OP_NAND:   {"~(A & B)", "NAND"},
	OP_NOR:    {"~(A | B)", "NOR"},
	OP_XOR:    {"A ^ B", "XOR"},
	OP_PASS_A: {"A", "Pass A through"},
	OP_PASS_B: {"B", "Pass B through"},
	OP_AND:    {"A & B", "AND"},
	OP_OR:     {"A | B", "OR"},
	OP_XNOR:   {"~(A ^ B)", "XNOR"},
	OP_CMP:    {"A - B (flags)", "Compare, result discarded"},
	OP_NOT_A:  {"~A", "Invert A"},
	OP_NOT_B:  {"~B", "Invert B"},
}

// Short mnemonics accepted by ParseName, in addition to the opcode names.
var aliasMap = map[string]Opcode{
	"INC":   OP_INC_A,
	"DEC":   OP_DEC_A,
	"REV":   OP_REV_A,
	"PASSA": OP_PASS_A,
	"PASSB": OP_PASS_B,
	"NOTA":  OP_NOT_A,
	"NOTB":  OP_NOT_B,
}

// Valid returns true if the opcode is in the code table.
func (op Opcode) Valid() bool {
	return op >= 0 && op < OP_COUNT
}

// Code returns the 5-bit code of the opcode, as a string of '0' and '1'.
func (op Opcode) Code() string {
	return fmt.Sprintf("%0*b", CODE_BITS, int(op)&((1<<CODE_BITS)-1))
}

// Class returns the class of the opcode.
func (op Opcode) Class() Class {
	switch {
	case op <= OP_DEC_A:
		return CLASS_ARITHMETIC
	case op <= OP_REV_A:
		return CLASS_SHIFT
	case op <= OP_XNOR:
		return CLASS_LOGIC
	default:
		return CLASS_SPECIAL
	}
}

// Expression returns a short expression describing the opcode.
func (op Opcode) Expression() string {
	if !op.Valid() {
		return ""
	}
	return _opInfo[op].Expression
}

// Description returns a one-line description of the opcode.
func (op Opcode) Description() string {
	if !op.Valid() {
		return ""
	}
	return f(_opInfo[op].Description)
}

// Opcodes returns an iterator over the code table, in code order.
func Opcodes() iter.Seq[Opcode] {
	return func(yield func(Opcode) bool) {
		for op := Opcode(0); op < OP_COUNT; op++ {
			if !yield(op) {
				return
			}
		}
	}
}

// Decode looks up a 5-bit code string in the code table.
func Decode(code string) (op Opcode, err error) {
	if len(code) != CODE_BITS {
		err = ErrUnknownOpcode(code)
		return
	}

	var value int
	for _, c := range []byte(code) {
		switch c {
		case '0':
			value <<= 1
		case '1':
			value = (value << 1) | 1
		default:
			err = ErrUnknownOpcode(code)
			return
		}
	}

	op = Opcode(value)
	if !op.Valid() {
		err = ErrUnknownOpcode(code)
		return
	}

	return
}

// ParseName looks up an opcode by mnemonic, ignoring case.
func ParseName(name string) (op Opcode, err error) {
	upper := strings.ToUpper(strings.TrimSpace(name))

	op, ok := aliasMap[upper]
	if ok {
		return
	}

	for candidate := range Opcodes() {
		if candidate.String() == upper {
			op = candidate
			return
		}
	}

	err = ErrUnknownOpcode(name)
	return
}
