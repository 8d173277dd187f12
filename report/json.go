package report

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/ezrec/alu8/runner"
)

type jsonFlags struct {
	Carry    bool `json:"carry"`
	Zero     bool `json:"zero"`
	Overflow bool `json:"overflow"`
	Negative bool `json:"negative"`
}

type jsonOutcome struct {
	Index          int        `json:"index"`
	Name           string     `json:"test_name"`
	Source         string     `json:"source,omitempty"`
	Opcode         string     `json:"opcode"`
	A              int        `json:"A"`
	B              int        `json:"B"`
	Status         string     `json:"status"`
	ExpectedResult int        `json:"expected_result"`
	ExpectedFlags  jsonFlags  `json:"expected_flags"`
	ActualResult   *int       `json:"actual_result,omitempty"`
	ActualFlags    *jsonFlags `json:"actual_flags,omitempty"`
	Mismatch       []string   `json:"mismatch,omitempty"`
	Error          string     `json:"error,omitempty"`
}

type jsonTally struct {
	Name   string `json:"name,omitempty"`
	Total  int    `json:"total"`
	Passed int    `json:"passed"`
	Failed int    `json:"failed"`
	Errors int    `json:"errors"`
}

type jsonSummary struct {
	jsonTally
	ElapsedSeconds float64              `json:"elapsed_seconds"`
	TestsPerSecond float64              `json:"tests_per_second"`
	ByOpcode       map[string]jsonTally `json:"by_opcode"`
}

func toJsonTally(tally runner.Tally) jsonTally {
	return jsonTally{
		Total:  tally.Total,
		Passed: tally.Passed,
		Failed: tally.Failed,
		Errors: tally.Errors,
	}
}

func mismatchNames(m runner.Mismatch) (names []string) {
	for field := range m.Fields() {
		names = append(names, field.String())
	}
	return
}

// JSON streams outcomes as a single JSON document:
//
//	{"results": [ <outcome>, ... ], "summary": { ... }}
//
// The document is complete once Summary has been called.
type JSON struct {
	writer *bufio.Writer
	count  int
	err    error
}

// NewJSON creates a JSON result writer on w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{writer: bufio.NewWriter(w)}
}

// Err returns the first write or encoding error, if any.
func (js *JSON) Err() error {
	return js.err
}

func (js *JSON) write(data string) {
	if js.err != nil {
		return
	}
	_, js.err = js.writer.WriteString(data)
}

func (js *JSON) encode(value any) {
	if js.err != nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		js.err = err
		return
	}
	_, js.err = js.writer.Write(data)
}

// Outcome writes a single result record.
func (js *JSON) Outcome(outcome runner.Outcome) {
	v := outcome.Vector

	record := jsonOutcome{
		Index:          outcome.Index,
		Name:           v.Name,
		Source:         v.Source,
		Opcode:         v.Opcode,
		A:              v.A,
		B:              v.B,
		Status:         StatusOf(outcome).String(),
		ExpectedResult: v.Result,
		ExpectedFlags:  jsonFlags(v.Flags),
		Mismatch:       mismatchNames(outcome.Mismatch),
	}

	if outcome.Err != nil {
		record.Error = outcome.Err.Error()
	} else {
		result := int(outcome.Result)
		flags := jsonFlags(outcome.Flags)
		record.ActualResult = &result
		record.ActualFlags = &flags
	}

	if js.count == 0 {
		js.write("{\"results\": [\n  ")
	} else {
		js.write(",\n  ")
	}
	js.encode(record)
	js.count++
}

// Summary writes the run totals, and completes the document.
func (js *JSON) Summary(summary runner.Summary) {
	if js.count == 0 {
		js.write("{\"results\": [")
	}
	js.write("\n],\n\"summary\": ")

	record := jsonSummary{
		jsonTally:      toJsonTally(summary.Tally),
		ElapsedSeconds: summary.Elapsed.Seconds(),
		TestsPerSecond: summary.Rate(),
		ByOpcode:       map[string]jsonTally{},
	}
	for code, tally := range summary.Opcodes() {
		entry := toJsonTally(tally)
		entry.Name = OpcodeName(code)
		record.ByOpcode[code] = entry
	}
	js.encode(record)
	js.write("}\n")

	if js.err == nil {
		js.err = js.writer.Flush()
	}
}
