package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/runner"
	"github.com/ezrec/alu8/translate"
	"github.com/ezrec/alu8/vector"
)

var testVectors = []vector.Vector{
	{Name: "add", Source: "basic.json", Opcode: "00000", A: 1, B: 2, Result: 3},
	{Name: "add_bad", Source: "basic.json", Opcode: "00000", A: 1, B: 2, Result: 4,
		Flags: alu.Flags{Carry: true}},
	{Name: "unknown", Opcode: "11111", A: 1, B: 2, Result: 3},
}

func run(t *testing.T, sink runner.Sink, vectors ...vector.Vector) runner.Summary {
	translate.Language("en-US")

	r := &runner.Runner{}
	summary, err := r.Run(vector.All(slices.Values(vectors)), sink)
	assert.NoError(t, err)
	return summary
}

func TestStatusOf(t *testing.T) {
	assert := assert.New(t)

	r := &runner.Runner{}
	assert.Equal(STATUS_PASS, StatusOf(r.Check(testVectors[0])))
	assert.Equal(STATUS_FAIL, StatusOf(r.Check(testVectors[1])))
	assert.Equal(STATUS_ERROR, StatusOf(r.Check(testVectors[2])))

	assert.Equal("PASS", STATUS_PASS.String())
	assert.Equal("ERROR", STATUS_ERROR.String())
	assert.Equal("Status(3)", Status(3).String())

	assert.Equal("NOT_B", OpcodeName("10010"))
	assert.Equal("?", OpcodeName("11111"))
	assert.Equal("?", OpcodeName("0b000"))
}

func TestText(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	text := NewText(buf)
	run(t, text, testVectors...)
	assert.NoError(text.Err())

	out := buf.String()
	assert.NotContains(out, "[PASS]")
	assert.Contains(out, "[FAIL] add_bad (basic.json)\n")
	assert.Contains(out, "  Opcode: 00000 (ADD), A: 0x01, B: 0x02\n")
	assert.Contains(out, "  Result: expected 0x04, got 0x03\n")
	assert.Contains(out, "  Flags mismatch: carry\n")
	assert.Contains(out, "    Expected: C=1 Z=0 V=0 N=0\n")
	assert.Contains(out, "    Got:      C=0 Z=0 V=0 N=0\n")
	assert.Contains(out, "[ERROR] unknown: unknown opcode '11111'\n")
	assert.Contains(out, "TEST SUMMARY\n")
	assert.Contains(out, "Total Tests:  3\n")
	assert.Contains(out, "Passed:       1 (33.3%)\n")
	assert.Contains(out, "Failed:       2 (66.7%)\n")
	assert.Contains(out, "Errors:       1\n")
	assert.Contains(out, "tests/sec\n")
	assert.Contains(out, "- 00000 | ADD     | 1/2 passed (50.0%)\n")
	assert.Contains(out, "- 11111 | ?       | 0/1 passed (0.0%)\n")
	assert.NotContains(out, "ALL TESTS PASSED")
	assert.NotContains(out, "\033[")
}

func TestText_Options(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	text := NewText(buf)
	text.Color = true
	text.Verbose = true
	text.Debug = true
	run(t, text, testVectors...)

	out := buf.String()
	assert.Contains(out, "\033[32m[PASS]\033[0m add (basic.json)\n")
	assert.Contains(out, "\033[31m[FAIL]\033[0m add_bad (basic.json)\n")
	assert.Contains(out, "(runner.Outcome)")
	assert.Contains(out, "\033[31m- 00000")

	buf.Reset()
	text = NewText(buf)
	text.Color = true
	run(t, text, testVectors[0])
	out = buf.String()
	assert.Contains(out, "\033[32m+ 00000 | ADD     | 1/1 passed (100.0%)\033[0m\n")
	assert.Contains(out, "ALL TESTS PASSED")
	assert.NotContains(out, "Errors:")
}

func TestJSON(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	js := NewJSON(buf)
	run(t, js, testVectors...)
	assert.NoError(js.Err())

	var doc struct {
		Results []map[string]any `json:"results"`
		Summary struct {
			Total    int `json:"total"`
			Passed   int `json:"passed"`
			Failed   int `json:"failed"`
			Errors   int `json:"errors"`
			ByOpcode map[string]struct {
				Name  string `json:"name"`
				Total int    `json:"total"`
			} `json:"by_opcode"`
		} `json:"summary"`
	}
	err := json.Unmarshal(buf.Bytes(), &doc)
	if !assert.NoError(err, buf.String()) {
		return
	}

	if assert.Equal(3, len(doc.Results)) {
		assert.Equal("PASS", doc.Results[0]["status"])
		assert.Equal("basic.json", doc.Results[0]["source"])
		assert.Equal(3.0, doc.Results[0]["actual_result"])

		assert.Equal("FAIL", doc.Results[1]["status"])
		assert.Equal([]any{"result", "carry"}, doc.Results[1]["mismatch"])

		assert.Equal("ERROR", doc.Results[2]["status"])
		assert.Equal("unknown opcode '11111'", doc.Results[2]["error"])
		assert.NotContains(doc.Results[2], "actual_result")
		assert.NotContains(doc.Results[2], "source")
	}

	assert.Equal(3, doc.Summary.Total)
	assert.Equal(1, doc.Summary.Passed)
	assert.Equal(2, doc.Summary.Failed)
	assert.Equal(1, doc.Summary.Errors)
	assert.Equal("ADD", doc.Summary.ByOpcode["00000"].Name)
	assert.Equal(2, doc.Summary.ByOpcode["00000"].Total)

	buf.Reset()
	js = NewJSON(buf)
	run(t, js)
	assert.True(json.Valid(buf.Bytes()), buf.String())
}

func TestCSV(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	cw := NewCSV(buf)
	run(t, cw, testVectors...)
	assert.NoError(cw.Err())

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	assert.NoError(err)
	if !assert.Equal(4, len(rows)) {
		return
	}

	assert.Equal(csvHeader, rows[0])
	assert.Equal([]string{"0", "add", "basic.json", "00000", "ADD", "1", "2",
		"3", "3", "C=0 Z=0 V=0 N=0", "C=0 Z=0 V=0 N=0", "PASS", "", ""}, rows[1])
	assert.Equal([]string{"1", "add_bad", "basic.json", "00000", "ADD", "1", "2",
		"4", "3", "C=1 Z=0 V=0 N=0", "C=0 Z=0 V=0 N=0", "FAIL", "result|carry", ""}, rows[2])
	assert.Equal([]string{"2", "unknown", "", "11111", "?", "1", "2",
		"3", "", "C=0 Z=0 V=0 N=0", "", "ERROR", "", "unknown opcode '11111'"}, rows[3])

	buf.Reset()
	cw = NewCSV(buf)
	run(t, cw)
	assert.Equal(strings.Join(csvHeader, ",")+"\n", buf.String())
}

func TestTee(t *testing.T) {
	assert := assert.New(t)

	text_buf := &bytes.Buffer{}
	csv_buf := &bytes.Buffer{}
	tee := Tee{NewText(text_buf), NewCSV(csv_buf)}
	run(t, tee, testVectors...)

	assert.Contains(text_buf.String(), "[FAIL] add_bad")
	assert.Equal(4, strings.Count(csv_buf.String(), "\n"))
}
