package report

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/alu8/runner"
	"github.com/ezrec/alu8/translate"
)

// ANSI colours.
const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiBold  = "\033[1m"
	ansiOff   = "\033[0m"
)

const rule = "================================================================================"

// Text is a human readable report. Failures and errors are always written;
// passing vectors only when Verbose is set.
type Text struct {
	Color   bool // Set to colour verdicts with ANSI escapes.
	Verbose bool // Set to report passing vectors.
	Debug   bool // Set to dump the whole outcome of every failure.

	writer io.Writer
	err    error
}

// NewText creates a text report written to w.
func NewText(w io.Writer) *Text {
	return &Text{writer: w}
}

// Err returns the first write error, if any.
func (t *Text) Err() error {
	return t.err
}

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = translate.Fprintf(t.writer, format, args...)
}

func (t *Text) pen(color string) (on string, off string) {
	if !t.Color {
		return
	}
	return color, ansiOff
}

// Outcome writes the verdict of a single vector.
func (t *Text) Outcome(outcome runner.Outcome) {
	status := StatusOf(outcome)
	v := outcome.Vector

	name := v.Name
	if len(v.Source) != 0 {
		name = name + " (" + v.Source + ")"
	}

	switch status {
	case STATUS_PASS:
		if !t.Verbose {
			return
		}
		on, off := t.pen(ansiGreen)
		t.printf("%v[%v]%v %v\n", on, status, off, name)
		return
	case STATUS_ERROR:
		on, off := t.pen(ansiRed)
		t.printf("%v[%v]%v %v: %v\n", on, status, off, name, outcome.Err)
	case STATUS_FAIL:
		on, off := t.pen(ansiRed)
		t.printf("%v[%v]%v %v\n", on, status, off, name)
		t.printf("  Opcode: %v (%v), A: 0x%02X, B: 0x%02X\n",
			v.Opcode, OpcodeName(v.Opcode), v.A, v.B)
		if outcome.Mismatch&runner.MISMATCH_RESULT != 0 {
			t.printf("  Result: expected 0x%02X, got 0x%02X\n", v.Result, outcome.Result)
		}
		if outcome.Mismatch&runner.MISMATCH_FLAGS != 0 {
			t.printf("  Flags mismatch: %v\n", (outcome.Mismatch & runner.MISMATCH_FLAGS).String())
			t.printf("    Expected: %v\n", v.Flags)
			t.printf("    Got:      %v\n", outcome.Flags)
		}
	}

	if t.Debug && t.err == nil {
		_, t.err = io.WriteString(t.writer, spew.Sdump(outcome))
	}

	t.printf("\n")
}

// Summary writes the run totals and the per-opcode table.
func (t *Text) Summary(summary runner.Summary) {
	failedPercent := 0.0
	if summary.Total > 0 {
		failedPercent = 100.0 - summary.Percent()
	}

	green, greenOff := t.pen(ansiGreen)
	red, redOff := t.pen(ansiRed)

	t.printf("%v\nTEST SUMMARY\n%v\n", rule, rule)
	t.printf("Total Tests:  %d\n", summary.Total)
	t.printf("%vPassed:       %d (%.1f%%)%v\n", green, summary.Passed, summary.Percent(), greenOff)
	t.printf("%vFailed:       %d (%.1f%%)%v\n", red, summary.Failed, failedPercent, redOff)
	if summary.Errors > 0 {
		t.printf("%vErrors:       %d%v\n", red, summary.Errors, redOff)
	}
	t.printf("Time:         %v\n", summary.Elapsed)
	t.printf("Speed:        %.0f tests/sec\n", summary.Rate())
	t.printf("%v\n", rule)

	if len(summary.ByOpcode) > 0 {
		t.printf("PER-OPERATION RESULTS\n%v\n", rule)
		for code, tally := range summary.Opcodes() {
			on, off := green, greenOff
			mark := "+"
			if tally.Failed > 0 {
				on, off = red, redOff
				mark = "-"
			}
			t.printf("%v%v %-5v | %-7v | %d/%d passed (%.1f%%)%v\n",
				on, mark, code, OpcodeName(code), tally.Passed, tally.Total, tally.Percent(), off)
		}
		t.printf("%v\n", rule)
	}

	if summary.Total > 0 && summary.Failed == 0 {
		bold, boldOff := t.pen(ansiGreen + ansiBold)
		t.printf("%vALL TESTS PASSED%v\n", bold, boldOff)
	}
}
