/*
Package parser converts source text into lisp expression trees.

	expr    := <atom> | <identifier> | '(' <expr>* ')'
	atom    := <integer> | <float> | 'true' | 'false' | <reserved>
	integer := /-?[0-9]+/
	float   := /-?[0-9]+[.][0-9]+/

Tokens are produced by padding parentheses with spaces and splitting on
whitespace, so any non-paren run of non-space characters is a single
token.  Tokens that are not literals and not members of the fixed
reserved symbol set are identifiers.
*/
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jilv220/ex-lisp/lisp"
)

var (
	intPattern   = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)

// Tokenize splits text into lexical tokens.  It is total: any input,
// including the empty string, yields a (possibly empty) token sequence.
func Tokenize(text string) []string {
	text = strings.ReplaceAll(text, "(", " ( ")
	text = strings.ReplaceAll(text, ")", " ) ")
	return strings.Fields(text)
}

// ParseToken classifies a single non-paren token.  The priority order is
// fixed: integer, float, boolean, reserved symbol, identifier.  Because
// reserved symbols are checked before the identifier fallthrough, a
// variable spelled like an operator cannot be expressed.
func ParseToken(tok string) *lisp.Expr {
	if intPattern.MatchString(tok) {
		x, err := strconv.ParseInt(tok, 10, 64)
		if err == nil {
			return lisp.IntExpr(x)
		}
	}
	if floatPattern.MatchString(tok) {
		f, err := strconv.ParseFloat(tok, 64)
		if err == nil {
			return lisp.FloatExpr(f)
		}
	}
	if tok == "true" || tok == "false" {
		return lisp.BoolExpr(tok == "true")
	}
	if op, ok := lisp.LookupOp(tok); ok {
		return lisp.SymbolExpr(op)
	}
	return lisp.Ident(tok)
}

// Parse parses text into a single expression.  Errors are *Error values
// carrying one of the three parse failure kinds.
func Parse(text string) (*lisp.Expr, error) {
	p := &parser{toks: Tokenize(text)}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if len(p.toks) != 0 {
		return nil, trailingTokens(p.toks)
	}
	return expr, nil
}

// ParseAll parses every expression in text, in order.  Source files and
// piped input hold many top level expressions, which Parse alone would
// reject as trailing tokens.
func ParseAll(text string) ([]*lisp.Expr, error) {
	p := &parser{toks: Tokenize(text)}
	var exprs []*lisp.Expr
	for len(p.toks) != 0 {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

type parser struct {
	toks []string
}

func (p *parser) next() (string, bool) {
	if len(p.toks) == 0 {
		return "", false
	}
	tok := p.toks[0]
	p.toks = p.toks[1:]
	return tok, true
}

func (p *parser) parseExpr() (*lisp.Expr, error) {
	tok, ok := p.next()
	if !ok {
		return nil, unexpectedEOF()
	}
	switch tok {
	case "(":
		return p.parseList()
	case ")":
		// A close paren with no open list cannot start an expression.
		// Report it with everything after it as leftover input.
		leftover := append([]string{")"}, p.toks...)
		return nil, trailingTokens(leftover)
	default:
		return ParseToken(tok), nil
	}
}

func (p *parser) parseList() (*lisp.Expr, error) {
	cells := []*lisp.Expr{}
	for {
		if len(p.toks) == 0 {
			return nil, missingCloseParen()
		}
		if p.toks[0] == ")" {
			p.toks = p.toks[1:]
			return lisp.ListExpr(cells...), nil
		}
		cell, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
}
