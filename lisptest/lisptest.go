// Package lisptest provides a table driven test harness for the
// interpreter.  Each test sequence evaluates source expressions against a
// single threaded environment and compares rendered results, so tests
// read like transcripts of an interactive session.
package lisptest

import (
	"testing"

	"github.com/jilv220/ex-lisp/lisp"
	"github.com/jilv220/ex-lisp/parser"
)

// TestSequence is a sequence of expressions evaluated in order against a
// shared environment.  Result is the rendered value, or the error text
// when evaluation is expected to fail.  A failed expression leaves the
// environment untouched for the following steps, mirroring the REPL.
type TestSequence []struct {
	Expr   string
	Result string
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated
// environment.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env := lisp.NewEnv()
		for j, step := range test.TestSequence {
			expr, err := parser.Parse(step.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			var result string
			v, next, err := lisp.Eval(expr, env)
			if err != nil {
				result = err.Error()
			} else {
				env = next
				result = v.String()
			}
			if result != step.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)",
					i, test.Name, j, step.Result, result)
			}
		}
	}
}
