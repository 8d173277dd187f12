package alu

import (
	"github.com/ezrec/alu8/translate"
)

var f = translate.From

// ErrUnknownOpcode is an opcode code that is not in the ALU code table.
type ErrUnknownOpcode string

func (eu ErrUnknownOpcode) Error() string {
	return f("unknown opcode '%v'", string(eu))
}

// Is matches any ErrUnknownOpcode, regardless of the code.
func (eu ErrUnknownOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrUnknownOpcode)
	return
}
