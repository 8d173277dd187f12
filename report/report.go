package report

import (
	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/runner"
)

// Status is the verdict of an outcome.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_PASS  = Status(0) // PASS
	STATUS_FAIL  = Status(1) // FAIL
	STATUS_ERROR = Status(2) // ERROR
)

// StatusOf returns the verdict of an outcome.
func StatusOf(outcome runner.Outcome) Status {
	switch {
	case outcome.Err != nil:
		return STATUS_ERROR
	case outcome.Mismatch != 0:
		return STATUS_FAIL
	default:
		return STATUS_PASS
	}
}

// OpcodeName returns the mnemonic for an opcode code, or '?' if the code is
// not in the code table.
func OpcodeName(code string) string {
	op, err := alu.Decode(code)
	if err != nil {
		return "?"
	}
	return op.String()
}

// Tee sends every call to each of its sinks, in order.
type Tee []runner.Sink

func (tee Tee) Outcome(outcome runner.Outcome) {
	for _, sink := range tee {
		sink.Outcome(outcome)
	}
}

func (tee Tee) Summary(summary runner.Summary) {
	for _, sink := range tee {
		sink.Summary(summary)
	}
}
