package vector

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/alu8/alu"
)

func TestExpect(t *testing.T) {
	assert := assert.New(t)

	v, err := Expect("dec_zero", alu.OP_DEC_A, 0, 0)
	assert.NoError(err)
	assert.Equal(Vector{Name: "dec_zero", Opcode: "00011", Result: 0xff,
		Flags: alu.Flags{Negative: true}}, v)
	assert.Equal("dec_zero: 00011 A=0x00 B=0x00 -> 0xFF C=0 Z=0 V=0 N=1", v.String())

	_, err = Expect("bad", alu.Opcode(31), 0, 0)
	assert.ErrorIs(err, alu.ErrUnknownOpcode(""))
}

func TestExhaustive(t *testing.T) {
	assert := assert.New(t)

	var vectors []Vector
	for v := range Exhaustive(alu.OP_ADD, alu.OP_NOT_B) {
		vectors = append(vectors, v)
	}
	assert.Equal(2*256*256, len(vectors))
	assert.Equal("ADD_00_00", vectors[0].Name)
	assert.Equal("ADD_00_01", vectors[1].Name)
	assert.Equal("ADD_01_00", vectors[256].Name)
	assert.Equal("NOT_B_FF_FF", vectors[len(vectors)-1].Name)
	assert.Equal("10010", vectors[len(vectors)-1].Opcode)
	assert.Equal(0, vectors[len(vectors)-1].Result)

	for _, v := range vectors {
		result, flags, err := alu.Execute(v.Opcode, uint(v.A), uint(v.B))
		assert.NoError(err)
		if int(result) != v.Result || flags != v.Flags {
			assert.Fail("mismatch", v.Name)
			break
		}
	}

	count := 0
	for range Exhaustive() {
		count++
		if count == 10 {
			break
		}
	}
	assert.Equal(10, count)

	count = 0
	for range Exhaustive(alu.Opcode(31)) {
		count++
	}
	assert.Equal(0, count)
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	good := Vector{Name: "good", Opcode: "11111", A: 0xff, B: 0, Result: 0x80}
	assert.NoError(good.Validate())

	table := [](struct {
		field  string
		reason error
		v      Vector
	}){
		{"test_name", ErrVectorField, Vector{Opcode: "00000"}},
		{"opcode", ErrVectorField, Vector{Name: "x"}},
		{"opcode", ErrVectorRange, Vector{Name: "x", Opcode: "0000"}},
		{"opcode", ErrVectorRange, Vector{Name: "x", Opcode: "0000x"}},
		{"A", ErrVectorRange, Vector{Name: "x", Opcode: "00000", A: 256}},
		{"A", ErrVectorRange, Vector{Name: "x", Opcode: "00000", A: -1}},
		{"B", ErrVectorRange, Vector{Name: "x", Opcode: "00000", B: 300}},
		{"expected_result", ErrVectorRange, Vector{Name: "x", Opcode: "00000", Result: 1000}},
	}

	for _, entry := range table {
		err := entry.v.Validate()
		assert.ErrorIs(err, entry.reason, entry.field)
		var ei ErrVectorInvalid
		if assert.True(errors.As(err, &ei)) {
			assert.Equal(entry.field, ei.Field)
		}
	}

	vectors := []Vector{good, table[2].v, good, table[4].v}
	count, err := Validate(All(slices.Values(vectors)))
	assert.Equal(4, count)
	assert.ErrorIs(err, ErrVectorRange)
	assert.Equal(2, len(err.(interface{ Unwrap() []error }).Unwrap()))

	count, err = Validate(All(slices.Values([]Vector{good})))
	assert.Equal(1, count)
	assert.NoError(err)

	count, err = Validate(Concat(All(slices.Values([]Vector{good})), Fail(ErrVectorEmpty)))
	assert.Equal(1, count)
	assert.ErrorIs(err, ErrVectorEmpty)
}

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	first := []Vector{{Name: "a"}, {Name: "b"}}
	second := []Vector{{Name: "c"}}

	var names []string
	for v, err := range Concat(All(slices.Values(first)), All(slices.Values(second))) {
		assert.NoError(err)
		names = append(names, v.Name)
	}
	assert.Equal([]string{"a", "b", "c"}, names)

	names = nil
	var errs []error
	for v, err := range Concat(All(slices.Values(first)), Fail(ErrVectorEmpty), All(slices.Values(second))) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		names = append(names, v.Name)
	}
	assert.Equal([]string{"a", "b"}, names)
	assert.Equal([]error{ErrVectorEmpty}, errs)

	names = nil
	for v := range Concat(All(slices.Values(first)), All(slices.Values(second))) {
		names = append(names, v.Name)
		break
	}
	assert.Equal([]string{"a"}, names)
}

func TestOpen(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	json_path := filepath.Join(dir, "add.json")
	star_path := filepath.Join(dir, "sub.star")
	bad_path := filepath.Join(dir, "bad.json")

	assert.NoError(os.WriteFile(json_path, []byte(`[{"test_name": "add", "opcode": "00000", "A": 1, "B": 1, "expected_result": 2}]`), 0o644))
	assert.NoError(os.WriteFile(star_path, []byte(`vector("sub", SUB, 2, 1, 1, carry=True)`+"\n"), 0o644))
	assert.NoError(os.WriteFile(bad_path, []byte(`{"tests": [`), 0o644))

	var vectors []Vector
	for v, err := range OpenAll(json_path, star_path) {
		assert.NoError(err)
		vectors = append(vectors, v)
	}
	if assert.Equal(2, len(vectors)) {
		assert.Equal("add", vectors[0].Name)
		assert.Equal(json_path, vectors[0].Source)
		assert.Equal("sub", vectors[1].Name)
		assert.Equal(star_path, vectors[1].Source)
	}

	vectors = nil
	var errs []error
	for v, err := range OpenAll(json_path, bad_path, star_path) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vectors = append(vectors, v)
	}
	assert.Equal(1, len(vectors))
	if assert.Equal(1, len(errs)) {
		var ef ErrFile
		assert.True(errors.As(errs[0], &ef))
		assert.Equal(bad_path, ef.Path)
		var es ErrVectorSyntax
		assert.True(errors.As(errs[0], &es))
	}

	for _, err := range Open(filepath.Join(dir, "missing.json")) {
		assert.ErrorIs(err, os.ErrNotExist)
	}
}
