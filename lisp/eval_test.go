package lisp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jilv220/ex-lisp/lisp"
	"github.com/jilv220/ex-lisp/lisptest"
	"github.com/jilv220/ex-lisp/parser"
)

// evalText is a convenience wrapper for tests that need the raw Eval
// results rather than rendered transcript output.
func evalText(t *testing.T, text string, env *lisp.Env) (lisp.Value, *lisp.Env, error) {
	t.Helper()
	expr, err := parser.Parse(text)
	require.NoError(t, err)
	return lisp.Eval(expr, env)
}

func TestSelfEvaluatingAtoms(t *testing.T) {
	tests := lisptest.TestSuite{
		{"atoms", lisptest.TestSequence{
			{"42", "42"},
			{"-3", "-3"},
			{"2.5", "2.5"},
			{"true", "true"},
			{"false", "false"},
		}},
		{"bad shapes", lisptest.TestSequence{
			{"nope", "unbound variable: nope"},
			{"()", "unrecognized expression: empty application: ()"},
			{"(1 2)", "unrecognized expression: cannot apply integer: 1"},
			{"(true)", "unrecognized expression: cannot apply boolean: true"},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestApplication(t *testing.T) {
	tests := lisptest.TestSuite{
		{"calls", lisptest.TestSequence{
			{"(define (add a b) (+ a b))", "add"},
			{"(add 1 2)", "3"},
			{"(add (add 1 2) (add 3 4))", "10"},
			{"((lambda (f) (f 5 5)) add)", "10"},
			{"(add 1)", "wrong number of arguments: add: expected 2 (got 1)"},
			{"(add 1 2 3)", "wrong number of arguments: add: expected 2 (got 3)"},
			{"((lambda (x) x) 1 2)", "wrong number of arguments: lambda: expected 1 (got 2)"},
		}},
		{"head resolution", lisptest.TestSequence{
			{"(nosuch 1)", "undefined function: nosuch"},
			{"(define z 1)", "z"},
			{"(z 2)", "not a function: z"},
			{"((list 1) 2)", "not a function: (1)"},
			{"(((lambda () (lambda (x) (* x x)))) 6)", "36"},
		}},
		{"parameters shadow captured bindings", lisptest.TestSequence{
			{"(define x 1)", "x"},
			{"((lambda (x) (+ x 10)) 5)", "15"},
			{"x", "1"},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestClosureCapture(t *testing.T) {
	tests := lisptest.TestSuite{
		{"lambdas capture the defining environment", lisptest.TestSequence{
			{"(define x 10)", "x"},
			{"(define addx (lambda (y) (+ x y)))", "addx"},
			{"(addx 5)", "15"},
			{"(define x 99)", "x"},
			{"(addx 5)", "15"},
			{"x", "99"},
		}},
		{"named functions capture at definition time", lisptest.TestSequence{
			{"(define base 100)", "base"},
			{"(define (above n) (+ base n))", "above"},
			{"(define base 0)", "base"},
			{"(above 5)", "105"},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

// Procedure calls must not leak parameter bindings into the caller.  The
// environment handed back is the caller's own pre-call environment.
func TestCallDoesNotLeakBindings(t *testing.T) {
	_, env, err := evalText(t, "(define x 10)", nil)
	require.NoError(t, err)

	v, after, err := evalText(t, "((lambda (y) (+ x y)) 5)", env)
	require.NoError(t, err)
	assert.True(t, v.Equal(lisp.Int(15)))
	assert.Same(t, env, after)

	_, _, err = evalText(t, "y", after)
	var lerr *lisp.Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, lisp.ErrnoUndefinedVariable, lerr.Errno)
	assert.Equal(t, "y", lerr.Name)
}

func TestEvalDeterministic(t *testing.T) {
	expr, err := parser.Parse("(+ (* 2 3) (/ 10 4))")
	require.NoError(t, err)
	first, _, err := lisp.Eval(expr, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v, _, err := lisp.Eval(expr, nil)
		require.NoError(t, err)
		assert.True(t, first.Equal(v))
	}
}

func TestErrorKinds(t *testing.T) {
	for _, test := range []struct {
		text  string
		errno lisp.Errno
	}{
		{"bogus", lisp.ErrnoUndefinedVariable},
		{"(bogus 1)", lisp.ErrnoUndefinedFunction},
		{"(if 1)", lisp.ErrnoInvalidForm},
		{"(+ 1 true)", lisp.ErrnoTypeError},
		{"(mod 10 5 2)", lisp.ErrnoArityError},
		{"(/ 1 0)", lisp.ErrnoDivisionByZero},
		{"(car (list))", lisp.ErrnoEmptyList},
		{"(cons 1 2)", lisp.ErrnoTypeError},
		{"(1 2)", lisp.ErrnoUnrecognizedExpression},
	} {
		_, _, err := evalText(t, test.text, nil)
		var lerr *lisp.Error
		require.ErrorAs(t, err, &lerr, "text %q", test.text)
		assert.Equal(t, test.errno, lerr.Errno, "text %q", test.text)
	}
}

func TestArityErrorFields(t *testing.T) {
	_, _, err := evalText(t, "(mod 10 5 2)", nil)
	var lerr *lisp.Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 2, lerr.Expected)
	assert.Equal(t, 3, lerr.Got)
}
