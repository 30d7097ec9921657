package lisp

// Version is the language version reported by the command line tools.
const Version = "0.2.0"

// Op identifies a reserved symbol.  Reserved symbols form a fixed, closed
// set and are compared by value, never by name, once classified.
type Op uint

// Possible Op values
const (
	OpInvalid Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpRem
	OpEq
	OpLT
	OpGT
	OpLEq
	OpGEq
	OpAnd
	OpOr
	OpNot
	OpIf
	OpCond
	OpDefine
	OpLambda
	OpLet
	OpQuote
	OpCAR
	OpCDR
	OpCons
	OpList
)

var opStrings = []string{
	OpInvalid: "INVALID",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpMod:     "mod",
	OpRem:     "rem",
	OpEq:      "=",
	OpLT:      "<",
	OpGT:      ">",
	OpLEq:     "<=",
	OpGEq:     ">=",
	OpAnd:     "and",
	OpOr:      "or",
	OpNot:     "not",
	OpIf:      "if",
	OpCond:    "cond",
	OpDefine:  "define",
	OpLambda:  "lambda",
	OpLet:     "let",
	OpQuote:   "quote",
	OpCAR:     "car",
	OpCDR:     "cdr",
	OpCons:    "cons",
	OpList:    "list",
}

func (op Op) String() string {
	if int(op) >= len(opStrings) {
		return opStrings[OpInvalid]
	}
	return opStrings[op]
}

var opNames = map[string]Op{}

func init() {
	for op, name := range opStrings {
		if Op(op) == OpInvalid {
			continue
		}
		opNames[name] = Op(op)
	}
}

// LookupOp returns the Op reserved for the name tok.  The second return is
// false when tok is not a reserved symbol and should be treated as an
// identifier.
func LookupOp(tok string) (Op, bool) {
	op, ok := opNames[tok]
	return op, ok
}
