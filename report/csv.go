package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/alu8/runner"
)

var csvHeader = []string{
	"index", "test_name", "source", "opcode", "name", "A", "B",
	"expected_result", "actual_result", "expected_flags", "actual_flags",
	"status", "mismatch", "error",
}

// CSV streams one result row per outcome, after a header row.
type CSV struct {
	writer *csv.Writer
	header bool
	err    error
}

// NewCSV creates a CSV result writer on w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{writer: csv.NewWriter(w)}
}

// Err returns the first write error, if any.
func (cw *CSV) Err() error {
	return cw.err
}

func (cw *CSV) write(row []string) {
	if cw.err != nil {
		return
	}
	if !cw.header {
		cw.header = true
		cw.err = cw.writer.Write(csvHeader)
		if cw.err != nil {
			return
		}
	}
	cw.err = cw.writer.Write(row)
}

// Outcome writes a single result row.
func (cw *CSV) Outcome(outcome runner.Outcome) {
	v := outcome.Vector

	var actual_result, actual_flags, message string
	if outcome.Err != nil {
		message = outcome.Err.Error()
	} else {
		actual_result = strconv.Itoa(int(outcome.Result))
		actual_flags = outcome.Flags.String()
	}

	cw.write([]string{
		strconv.Itoa(outcome.Index),
		v.Name,
		v.Source,
		v.Opcode,
		OpcodeName(v.Opcode),
		strconv.Itoa(v.A),
		strconv.Itoa(v.B),
		strconv.Itoa(v.Result),
		actual_result,
		v.Flags.String(),
		actual_flags,
		StatusOf(outcome).String(),
		strings.Join(mismatchNames(outcome.Mismatch), "|"),
		message,
	})
}

// Summary flushes the rows written so far.
func (cw *CSV) Summary(summary runner.Summary) {
	if cw.err != nil {
		return
	}
	if !cw.header {
		cw.header = true
		cw.err = cw.writer.Write(csvHeader)
	}
	cw.writer.Flush()
	if cw.err == nil {
		cw.err = cw.writer.Error()
	}
}
