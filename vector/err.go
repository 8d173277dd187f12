package vector

import (
	"errors"

	"github.com/ezrec/alu8/translate"
)

var f = translate.From

var (
	ErrVectorEmpty = errors.New(f("no test vectors"))
	ErrVectorField = errors.New(f("field missing"))
	ErrVectorRange = errors.New(f("value out of range"))
)

// ErrVectorSyntax is a malformed vector document, or a malformed entry in it.
type ErrVectorSyntax struct {
	Index int // Entry index, or -1 for the document itself.
	Err   error
}

func (err ErrVectorSyntax) Error() string {
	if err.Index < 0 {
		return f("vector syntax: %v", err.Err)
	}
	return f("vector %d syntax: %v", err.Index, err.Err)
}

func (err ErrVectorSyntax) Unwrap() error {
	return err.Err
}

// ErrVectorInvalid is a vector that failed validation.
type ErrVectorInvalid struct {
	Name  string
	Field string
	Err   error
}

func (err ErrVectorInvalid) Error() string {
	return f("vector '%v' %v: %v", err.Name, err.Field, err.Err)
}

func (err ErrVectorInvalid) Unwrap() error {
	return err.Err
}

// ErrScript is an error raised while executing a vector script.
type ErrScript struct {
	Script string
	Err    error
}

func (err ErrScript) Error() string {
	return f("script %v: %v", err.Script, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}

// Is matches any ErrScript, regardless of the script.
func (err ErrScript) Is(target error) (ok bool) {
	_, ok = target.(ErrScript)
	return
}

// ErrFile is an error reading a vector file.
type ErrFile struct {
	Path string
	Err  error
}

func (err ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err ErrFile) Unwrap() error {
	return err.Err
}
