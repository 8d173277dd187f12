package vector

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/ezrec/alu8/alu"
)

type jsonFlags struct {
	Carry    bool `json:"carry"`
	Zero     bool `json:"zero"`
	Overflow bool `json:"overflow"`
	Negative bool `json:"negative"`
}

type jsonVector struct {
	Name   string    `json:"test_name"`
	Opcode string    `json:"opcode"`
	A      int       `json:"A"`
	B      int       `json:"B"`
	Result int       `json:"expected_result"`
	Flags  jsonFlags `json:"expected_flags"`
}

type jsonDocument struct {
	Tests []json.RawMessage `json:"tests"`
}

func (jv jsonVector) vector() Vector {
	return Vector{
		Name:   jv.Name,
		Opcode: jv.Opcode,
		A:      jv.A,
		B:      jv.B,
		Result: jv.Result,
		Flags:  alu.Flags(jv.Flags),
	}
}

func fromVector(v Vector) jsonVector {
	return jsonVector{
		Name:   v.Name,
		Opcode: v.Opcode,
		A:      v.A,
		B:      v.B,
		Result: v.Result,
		Flags:  jsonFlags(v.Flags),
	}
}

// Decode reads a whole JSON vector document, which is either an object with
// a "tests" array or a bare array. Missing flags are false, and a missing
// test name is replaced by 'Test_<index>'.
func Decode(r io.Reader) (vectors []Vector, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		err = ErrVectorEmpty
		return
	}

	var entries []json.RawMessage
	switch data[0] {
	case '[':
		err = json.Unmarshal(data, &entries)
	case '{':
		var doc jsonDocument
		err = json.Unmarshal(data, &doc)
		entries = doc.Tests
	default:
		err = ErrVectorSyntax{Index: -1, Err: errors.New(f("unexpected '%c'", data[0]))}
	}
	if err != nil {
		if _, ok := err.(ErrVectorSyntax); !ok {
			err = ErrVectorSyntax{Index: -1, Err: err}
		}
		return
	}

	if len(entries) == 0 {
		err = ErrVectorEmpty
		return
	}

	vectors = make([]Vector, 0, len(entries))
	for index, entry := range entries {
		var jv jsonVector
		err = json.Unmarshal(entry, &jv)
		if err != nil {
			vectors = nil
			err = ErrVectorSyntax{Index: index, Err: err}
			return
		}
		if len(jv.Name) == 0 {
			jv.Name = fmt.Sprintf("Test_%d", index)
		}
		vectors = append(vectors, jv.vector())
	}

	return
}

// Load returns a source over a JSON vector document. The document is decoded
// in full before the first vector is yielded, so a malformed document yields
// only its error.
func Load(r io.Reader) iter.Seq2[Vector, error] {
	vectors, err := Decode(r)
	if err != nil {
		return Fail(err)
	}

	return All(slices.Values(vectors))
}

// Encode writes vectors as a JSON document with a "tests" array, one vector
// per line. The vectors are streamed, not collected.
func Encode(w io.Writer, vectors iter.Seq[Vector]) (count int, err error) {
	bw := bufio.NewWriter(w)

	_, err = bw.WriteString("{\"tests\": [")
	if err != nil {
		return
	}

	for v := range vectors {
		var data []byte
		data, err = json.Marshal(fromVector(v))
		if err != nil {
			return
		}
		if count > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString("\n  ")
		_, err = bw.Write(data)
		if err != nil {
			return
		}
		count++
	}

	_, err = bw.WriteString("\n]}\n")
	if err != nil {
		return
	}

	err = bw.Flush()
	return
}
