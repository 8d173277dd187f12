package vector

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/alu8/alu"
)

// Script runs a starlark vector script, and returns the vectors it declares.
//
// The script declares vectors by calling:
//
//	vector(name, opcode, a, b, result, carry=False, zero=False, overflow=False, negative=False)
//
// Each opcode name (ADD, SUB, INC_A, ...) is predeclared as its 5-bit code,
// and OPCODES is the list of all codes in code order. The builtin
// evaluate(opcode, a, b) returns the reference model's
// (result, carry, zero, overflow, negative) tuple.
//
// src may be a string, []byte or io.Reader; if nil the script is read from
// filename.
func Script(filename string, src any) (vectors []Vector, err error) {
	collect := func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
		var v Vector
		err = starlark.UnpackArgs(fn.Name(), args, kwargs,
			"name", &v.Name,
			"opcode", &v.Opcode,
			"a", &v.A,
			"b", &v.B,
			"result", &v.Result,
			"carry?", &v.Flags.Carry,
			"zero?", &v.Flags.Zero,
			"overflow?", &v.Flags.Overflow,
			"negative?", &v.Flags.Negative,
		)
		if err != nil {
			return
		}
		v.Source = filename
		vectors = append(vectors, v)
		value = starlark.None
		return
	}

	evaluate := func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
		var code string
		var a, b int
		err = starlark.UnpackArgs(fn.Name(), args, kwargs, "opcode", &code, "a", &a, "b", &b)
		if err != nil {
			return
		}
		result, flags, err := alu.Execute(code, uint(a), uint(b))
		if err != nil {
			return
		}
		value = starlark.Tuple{
			starlark.MakeInt(int(result)),
			starlark.Bool(flags.Carry),
			starlark.Bool(flags.Zero),
			starlark.Bool(flags.Overflow),
			starlark.Bool(flags.Negative),
		}
		return
	}

	pred := starlark.StringDict{
		"vector":   starlark.NewBuiltin("vector", collect),
		"evaluate": starlark.NewBuiltin("evaluate", evaluate),
	}

	var codes []starlark.Value
	for op := range alu.Opcodes() {
		pred[op.String()] = starlark.String(op.Code())
		codes = append(codes, starlark.String(op.Code()))
	}
	pred["OPCODES"] = starlark.NewList(codes)

	thread := starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
		Recursion:       true,
	}

	_, err = starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
	if err != nil {
		vectors = nil
		err = ErrScript{Script: filename, Err: err}
		return
	}

	if len(vectors) == 0 {
		err = ErrScript{Script: filename, Err: ErrVectorEmpty}
		return
	}

	return
}
