package parser

import "strings"

// Errno classifies parse errors.
type Errno uint

// Possible Errno values
const (
	ErrnoInvalid Errno = iota
	ErrnoUnexpectedEOF
	ErrnoMissingCloseParen
	ErrnoTrailingTokens
)

var errnoStrings = []string{
	ErrnoInvalid:           "INVALID",
	ErrnoUnexpectedEOF:     "unexpected end of input",
	ErrnoMissingCloseParen: "missing closing parenthesis",
	ErrnoTrailingTokens:    "trailing tokens after expression",
}

func (n Errno) String() string {
	if int(n) >= len(errnoStrings) {
		return errnoStrings[ErrnoInvalid]
	}
	return errnoStrings[n]
}

// Error is a parse error.  Leftover holds the unconsumed tokens for
// trailing token errors.
type Error struct {
	Errno    Errno
	Leftover []string
}

func (e *Error) Error() string {
	if e.Errno == ErrnoTrailingTokens && len(e.Leftover) > 0 {
		return e.Errno.String() + ": " + strings.Join(e.Leftover, " ")
	}
	return e.Errno.String()
}

func unexpectedEOF() *Error {
	return &Error{Errno: ErrnoUnexpectedEOF}
}

func missingCloseParen() *Error {
	return &Error{Errno: ErrnoMissingCloseParen}
}

func trailingTokens(leftover []string) *Error {
	return &Error{Errno: ErrnoTrailingTokens, Leftover: leftover}
}
