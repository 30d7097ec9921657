package lisp

import (
	"bytes"
	"strconv"
)

// ExprType is the type of an Expr node.
type ExprType uint

// Possible ExprType values
const (
	EInvalid ExprType = iota
	EInt
	EFloat
	EBool
	ESymbol
	EIdent
	EList
)

var exprTypeStrings = []string{
	EInvalid: "INVALID",
	EInt:     "integer",
	EFloat:   "float",
	EBool:    "boolean",
	ESymbol:  "symbol",
	EIdent:   "identifier",
	EList:    "list",
}

func (t ExprType) String() string {
	if int(t) >= len(exprTypeStrings) {
		return exprTypeStrings[EInvalid]
	}
	return exprTypeStrings[t]
}

// Expr is a node in a parsed expression tree.  An Expr is immutable once
// produced by the parser; evaluation reads nodes but never rewrites them.
type Expr struct {
	Type  ExprType
	Int   int64
	Float float64
	Bool  bool
	Op    Op     // reserved symbol, when Type is ESymbol
	Name  string // variable name, when Type is EIdent
	Cells []*Expr
}

// IntExpr returns an integer literal node.
func IntExpr(x int64) *Expr {
	return &Expr{Type: EInt, Int: x}
}

// FloatExpr returns a floating point literal node.
func FloatExpr(x float64) *Expr {
	return &Expr{Type: EFloat, Float: x}
}

// BoolExpr returns a boolean literal node.
func BoolExpr(b bool) *Expr {
	return &Expr{Type: EBool, Bool: b}
}

// SymbolExpr returns a node for the reserved symbol op.
func SymbolExpr(op Op) *Expr {
	return &Expr{Type: ESymbol, Op: op}
}

// Ident returns a variable reference node.
func Ident(name string) *Expr {
	return &Expr{Type: EIdent, Name: name}
}

// ListExpr returns a compound node holding cells.
func ListExpr(cells ...*Expr) *Expr {
	return &Expr{Type: EList, Cells: cells}
}

func (e *Expr) String() string {
	switch e.Type {
	case EInt:
		return strconv.FormatInt(e.Int, 10)
	case EFloat:
		return strconv.FormatFloat(e.Float, 'g', -1, 64)
	case EBool:
		return strconv.FormatBool(e.Bool)
	case ESymbol:
		return e.Op.String()
	case EIdent:
		return e.Name
	case EList:
		var buf bytes.Buffer
		buf.WriteString("(")
		for i, c := range e.Cells {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(c.String())
		}
		buf.WriteString(")")
		return buf.String()
	default:
		return "#<invalid>"
	}
}
