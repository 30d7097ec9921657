package lisp_test

import (
	"testing"

	"github.com/jilv220/ex-lisp/lisptest"
)

func TestSpecialOp(t *testing.T) {
	tests := lisptest.TestSuite{
		{"if", lisptest.TestSequence{
			{"(if true 1 2)", "1"},
			{"(if false 1 2)", "2"},
			{"(if false 1)", "()"},
			{"(if 0 1 2)", "1"},
			{"(if (list) 1 2)", "1"},
			{"(if (< 2 1) 1 2)", "2"},
			{"(if true 1 (/ 1 0))", "1"},
			{"(if 1)", "invalid form: if expects 2 or 3 arguments (got 1)"},
			{"(if 1 2 3 4)", "invalid form: if expects 2 or 3 arguments (got 4)"},
		}},
		{"cond", lisptest.TestSequence{
			{"(cond)", "()"},
			{"(cond (false 1))", "()"},
			{"(cond (false 1) (else 2))", "2"},
			{"(cond ((< 1 2) 3) (else 1))", "3"},
			{"(cond (true 1) (true 2))", "1"},
			{"(cond (else 1) (true 2))", "invalid form: cond else branch must be final"},
			{"(cond (1))", "invalid form: cond branch is not a pair: (1)"},
		}},
		{"define", lisptest.TestSequence{
			{"(define x 1)", "x"},
			{"x", "1"},
			{"(define x 2)", "x"},
			{"x", "2"},
			{"(define y (+ x 3))", "y"},
			{"y", "5"},
			{"(define (f a) (+ a a))", "f"},
			{"(f 2)", "4"},
			{"f", "#<procedure f>"},
			{"(define 1 2)", "invalid form: cannot define integer: 1"},
			{"(define x)", "invalid form: define expects 2 arguments (got 1)"},
		}},
		{"lambda", lisptest.TestSequence{
			{"(lambda (x) x)", "#<procedure>"},
			{"((lambda (x) x) 7)", "7"},
			{"((lambda (x y) (+ x y)) 3 4)", "7"},
			{"((lambda () 9))", "9"},
			{"(lambda (x 1) x)", "invalid form: formal parameter is not an identifier: 1"},
			{"(lambda (x))", "invalid form: lambda expects 2 arguments (got 1)"},
		}},
		{"let", lisptest.TestSequence{
			{"(let ((x 1)) x)", "1"},
			{"(let ((x 1) (y 2)) (+ x y))", "3"},
			{"(let ((x 1)) (let ((y 2)) (+ x y)))", "3"},
			{"(let ((x 1)) x)", "1"},
			{"x", "unbound variable: x"},
			{"(let (x) x)", "invalid form: let binding is not a pair: x"},
		}},
		{"quote", lisptest.TestSequence{
			{"(quote 5)", "5"},
			{"(quote foo)", "foo"},
			{"(quote +)", "+"},
			{"(quote (1 2 foo))", "(1 2 foo)"},
			{"(quote (quote x))", "(quote x)"},
			{"(quote)", "invalid form: quote expects 1 argument (got 0)"},
			{"(quote 1 2)", "invalid form: quote expects 1 argument (got 2)"},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestEnvironmentThreading(t *testing.T) {
	tests := lisptest.TestSuite{
		{"define threads into later siblings", lisptest.TestSequence{
			{"(list (define x 1) x)", "(x 1)"},
			{"x", "1"},
			{"(+ (car (list (define y 2) y)) 1)", "3"},
			{"y", "2"},
		}},
		{"if threads the test environment", lisptest.TestSequence{
			{"(if (car (list (define t 5) true)) t 0)", "5"},
			{"t", "5"},
		}},
		{"short circuit keeps the environment at the stop point", lisptest.TestSequence{
			{"(and (car (list (define a 1) true)) false (define b 2))", "false"},
			{"a", "1"},
			{"b", "unbound variable: b"},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}

func TestRecursion(t *testing.T) {
	tests := lisptest.TestSuite{
		{"factorial", lisptest.TestSequence{
			{"(define (factorial n) (if (<= n 1) 1 (* n (factorial (- n 1)))))", "factorial"},
			{"(factorial 0)", "1"},
			{"(factorial 1)", "1"},
			{"(factorial 5)", "120"},
			{"(factorial 10)", "3628800"},
		}},
		{"fibonacci", lisptest.TestSequence{
			{"(define (fib n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))", "fib"},
			{"(fib 0)", "0"},
			{"(fib 1)", "1"},
			{"(fib 10)", "55"},
		}},
		{"definition time capture prevents forward references", lisptest.TestSequence{
			{"(define (even? n) (if (= n 0) true (odd? (- n 1))))", "even?"},
			{"(even? 0)", "true"},
			{"(define (odd? n) (if (= n 0) false (even? (- n 1))))", "odd?"},
			{"(even? 2)", "undefined function: odd?"},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}
