// Package alu implements the golden reference model of the 8-bit ALU.
//
// The ALU takes a 5-bit opcode and two 8-bit operands, and produces a result
// byte with four status flags: carry, zero, overflow and negative. There are
// nineteen operations in four classes (arithmetic, shift, logic and special).
//
// Evaluation is a pure function of its arguments. Operands wider than eight
// bits are masked before use, and any opcode outside the closed code table is
// reported as ErrUnknownOpcode before any arithmetic takes place.
package alu
