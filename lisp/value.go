package lisp

import (
	"bytes"
	"strconv"
)

// ValueType is the type of a Value.
type ValueType uint

// Possible ValueType values
const (
	VInvalid ValueType = iota
	VNil
	VInt
	VFloat
	VBool
	VSymbol
	VList
	VProc
)

var valueTypeStrings = []string{
	VInvalid: "INVALID",
	VNil:     "nil",
	VInt:     "integer",
	VFloat:   "float",
	VBool:    "boolean",
	VSymbol:  "symbol",
	VList:    "list",
	VProc:    "procedure",
}

func (t ValueType) String() string {
	if int(t) >= len(valueTypeStrings) {
		return valueTypeStrings[VInvalid]
	}
	return valueTypeStrings[t]
}

// Value is the result of evaluating an expression.
type Value struct {
	Type  ValueType
	Int   int64
	Float float64
	Bool  bool
	Sym   string // quoted names and define results
	Cells []Value
	Proc  *Proc
}

// Proc is a procedure value.  It closes over the environment visible at
// its definition site, not the environment of any later caller.  Name is
// empty for anonymous procedures; a named procedure binds Name to itself
// in its call environments, which is what allows recursive definitions
// even though Env predates the binding.
type Proc struct {
	Name   string
	Params []string
	Body   *Expr
	Env    *Env
}

// Nil returns the nil value, also used as the empty list.
func Nil() Value {
	return Value{Type: VNil}
}

// Int returns an integer value.
func Int(x int64) Value {
	return Value{Type: VInt, Int: x}
}

// Float returns a floating point value.
func Float(x float64) Value {
	return Value{Type: VFloat, Float: x}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{Type: VBool, Bool: b}
}

// Symbol returns a symbol value for the name s.
func Symbol(s string) Value {
	return Value{Type: VSymbol, Sym: s}
}

// List returns a list value holding cells.
func List(cells ...Value) Value {
	return Value{Type: VList, Cells: cells}
}

// ProcValue wraps p as a value.
func ProcValue(p *Proc) Value {
	return Value{Type: VProc, Proc: p}
}

// Truthy reports whether v counts as true in a conditional context.
// Everything except false and nil is truthy.
func (v Value) Truthy() bool {
	switch v.Type {
	case VNil:
		return false
	case VBool:
		return v.Bool
	default:
		return true
	}
}

// IsNum reports whether v is an integer or a float.
func (v Value) IsNum() bool {
	return v.Type == VInt || v.Type == VFloat
}

// AsFloat returns the numeric value of v widened to a float.  The caller
// must have checked IsNum.
func (v Value) AsFloat() float64 {
	if v.Type == VInt {
		return float64(v.Int)
	}
	return v.Float
}

func (v Value) isZero() bool {
	switch v.Type {
	case VInt:
		return v.Int == 0
	case VFloat:
		return v.Float == 0
	}
	return false
}

// Equal reports value equality.  Numbers compare across integer/float,
// lists compare elementwise.  Procedure equality is not defined; two
// procedure values never compare equal.
func (v Value) Equal(u Value) bool {
	if v.IsNum() && u.IsNum() {
		if v.Type == VInt && u.Type == VInt {
			return v.Int == u.Int
		}
		return v.AsFloat() == u.AsFloat()
	}
	if v.Type != u.Type {
		return false
	}
	switch v.Type {
	case VNil:
		return true
	case VBool:
		return v.Bool == u.Bool
	case VSymbol:
		return v.Sym == u.Sym
	case VList:
		if len(v.Cells) != len(u.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(u.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.Type {
	case VNil:
		return "()"
	case VInt:
		return strconv.FormatInt(v.Int, 10)
	case VFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case VBool:
		return strconv.FormatBool(v.Bool)
	case VSymbol:
		return v.Sym
	case VList:
		var buf bytes.Buffer
		buf.WriteString("(")
		for i, c := range v.Cells {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(c.String())
		}
		buf.WriteString(")")
		return buf.String()
	case VProc:
		if v.Proc.Name != "" {
			return "#<procedure " + v.Proc.Name + ">"
		}
		return "#<procedure>"
	default:
		return "#<invalid>"
	}
}
