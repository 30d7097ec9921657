package lisp

import (
	"fmt"
	"strings"
)

// Errno classifies evaluation errors.
type Errno uint

// Possible Errno values
const (
	ErrnoInvalid Errno = iota
	ErrnoUndefinedVariable
	ErrnoUndefinedFunction
	ErrnoNotAFunction
	ErrnoInvalidForm
	ErrnoTypeError
	ErrnoArityError
	ErrnoDivisionByZero
	ErrnoEmptyList
	ErrnoUnrecognizedExpression
)

var errnoStrings = []string{
	ErrnoInvalid:                "INVALID",
	ErrnoUndefinedVariable:      "unbound variable",
	ErrnoUndefinedFunction:      "undefined function",
	ErrnoNotAFunction:           "not a function",
	ErrnoInvalidForm:            "invalid form",
	ErrnoTypeError:              "type error",
	ErrnoArityError:             "wrong number of arguments",
	ErrnoDivisionByZero:         "division by zero",
	ErrnoEmptyList:              "empty list",
	ErrnoUnrecognizedExpression: "unrecognized expression",
}

func (n Errno) String() string {
	if int(n) >= len(errnoStrings) {
		return errnoStrings[ErrnoInvalid]
	}
	return errnoStrings[n]
}

// Error is an evaluation error.  Evaluation aborts on the first Error
// produced; callers receive it as an ordinary error result and decide how
// to report it.
type Error struct {
	Errno    Errno
	Name     string // offending variable/function name, when there is one
	Details  string
	Expected int // arity errors
	Got      int // arity errors
}

func (e *Error) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Errno.String())
	if e.Name != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Name)
	}
	if e.Errno == ErrnoArityError {
		fmt.Fprintf(&buf, ": expected %d (got %d)", e.Expected, e.Got)
	}
	if e.Details != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Details)
	}
	return buf.String()
}

func undefinedVariable(name string) *Error {
	return &Error{Errno: ErrnoUndefinedVariable, Name: name}
}

func undefinedFunction(name string) *Error {
	return &Error{Errno: ErrnoUndefinedFunction, Name: name}
}

func notAFunction(name string) *Error {
	return &Error{Errno: ErrnoNotAFunction, Name: name}
}

func invalidFormf(format string, v ...interface{}) *Error {
	return &Error{Errno: ErrnoInvalidForm, Details: fmt.Sprintf(format, v...)}
}

func typeErrorf(format string, v ...interface{}) *Error {
	return &Error{Errno: ErrnoTypeError, Details: fmt.Sprintf(format, v...)}
}

func arityError(name string, expected, got int) *Error {
	return &Error{Errno: ErrnoArityError, Name: name, Expected: expected, Got: got}
}

func divisionByZero() *Error {
	return &Error{Errno: ErrnoDivisionByZero}
}

func emptyListError(name string) *Error {
	return &Error{Errno: ErrnoEmptyList, Name: name}
}

func unrecognizedf(format string, v ...interface{}) *Error {
	return &Error{Errno: ErrnoUnrecognizedExpression, Details: fmt.Sprintf(format, v...)}
}
