package internal

import (
	"errors"

	"github.com/ezrec/alu8/translate"
)

var f = translate.From

var (
	ErrOperandRange = errors.New(f("operand out of 8-bit range (0-255)"))
	ErrFormat       = errors.New(f("unknown format"))
)

// ErrOperand is an operand that could not be parsed.
type ErrOperand struct {
	Operand string
	Err     error
}

func (err ErrOperand) Error() string {
	return f("operand '%v': %v", err.Operand, err.Err)
}

func (err ErrOperand) Unwrap() error {
	return err.Err
}
