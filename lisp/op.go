package lisp

// specialOp evaluates a form whose arguments are not all evaluated up
// front.  It receives the unevaluated argument expressions and the
// current environment and returns the form's value and result
// environment.
type specialOp func(args []*Expr, env *Env) (Value, *Env, error)

var specialOps map[Op]specialOp

// Populated in init to break the initialization cycle between
// specialOps and Eval (the ops call Eval, which consults specialOps).
func init() {
	specialOps = map[Op]specialOp{
		OpIf:     opIf,
		OpCond:   opCond,
		OpDefine: opDefine,
		OpLambda: opLambda,
		OpLet:    opLet,
		OpQuote:  opQuote,
		OpAnd:    opAnd,
		OpOr:     opOr,
	}
}

// (if test then) or (if test then else)
func opIf(args []*Expr, env *Env) (Value, *Env, error) {
	if len(args) != 2 && len(args) != 3 {
		return Nil(), env, invalidFormf("if expects 2 or 3 arguments (got %d)", len(args))
	}
	test, env, err := Eval(args[0], env)
	if err != nil {
		return Nil(), env, err
	}
	if test.Truthy() {
		return Eval(args[1], env)
	}
	if len(args) == 3 {
		return Eval(args[2], env)
	}
	return Nil(), env, nil
}

// (cond (test expr)*) with an optional final (else expr) branch
func opCond(args []*Expr, env *Env) (Value, *Env, error) {
	last := len(args) - 1
	for i, branch := range args {
		if branch.Type != EList || len(branch.Cells) != 2 {
			return Nil(), env, invalidFormf("cond branch is not a pair: %s", branch)
		}
		test := branch.Cells[0]
		if test.Type == EIdent && test.Name == "else" {
			if i != last {
				return Nil(), env, invalidFormf("cond else branch must be final")
			}
			return Eval(branch.Cells[1], env)
		}
		v, next, err := Eval(test, env)
		if err != nil {
			return Nil(), env, err
		}
		env = next
		if v.Truthy() {
			return Eval(branch.Cells[1], env)
		}
	}
	return Nil(), env, nil
}

// (define name expr) or (define (name params...) body)
func opDefine(args []*Expr, env *Env) (Value, *Env, error) {
	if len(args) != 2 {
		return Nil(), env, invalidFormf("define expects 2 arguments (got %d)", len(args))
	}
	switch target := args[0]; target.Type {
	case EIdent:
		v, env, err := Eval(args[1], env)
		if err != nil {
			return Nil(), env, err
		}
		return Symbol(target.Name), env.Bind(target.Name, v), nil
	case EList:
		if len(target.Cells) == 0 || target.Cells[0].Type != EIdent {
			return Nil(), env, invalidFormf("invalid definition form: %s", target)
		}
		name := target.Cells[0].Name
		params, err := formalNames(target.Cells[1:])
		if err != nil {
			return Nil(), env, err
		}
		// The captured environment deliberately predates the binding of
		// name; applyProc inserts the self reference at call time.
		fun := &Proc{Name: name, Params: params, Body: args[1], Env: env}
		return Symbol(name), env.Bind(name, ProcValue(fun)), nil
	default:
		return Nil(), env, invalidFormf("cannot define %s: %s", target.Type, target)
	}
}

// (lambda (params...) body)
func opLambda(args []*Expr, env *Env) (Value, *Env, error) {
	if len(args) != 2 {
		return Nil(), env, invalidFormf("lambda expects 2 arguments (got %d)", len(args))
	}
	if args[0].Type != EList {
		return Nil(), env, invalidFormf("lambda formals are not a list: %s", args[0])
	}
	params, err := formalNames(args[0].Cells)
	if err != nil {
		return Nil(), env, err
	}
	fun := &Proc{Params: params, Body: args[1], Env: env}
	return ProcValue(fun), env, nil
}

func formalNames(cells []*Expr) ([]string, error) {
	params := make([]string, len(cells))
	for i, cell := range cells {
		if cell.Type != EIdent {
			return nil, invalidFormf("formal parameter is not an identifier: %s", cell)
		}
		params[i] = cell.Name
	}
	return params, nil
}

// (let ((name expr)...) body)
func opLet(args []*Expr, env *Env) (Value, *Env, error) {
	if len(args) != 2 {
		return Nil(), env, invalidFormf("let expects 2 arguments (got %d)", len(args))
	}
	bindings := args[0]
	if bindings.Type != EList {
		return Nil(), env, invalidFormf("let bindings are not a list: %s", bindings)
	}
	caller := env
	letenv := env
	for _, bind := range bindings.Cells {
		if bind.Type != EList || len(bind.Cells) != 2 || bind.Cells[0].Type != EIdent {
			return Nil(), caller, invalidFormf("let binding is not a pair: %s", bind)
		}
		v, next, err := Eval(bind.Cells[1], env)
		if err != nil {
			return Nil(), caller, err
		}
		env = next
		letenv = letenv.Bind(bind.Cells[0].Name, v)
	}
	v, _, err := Eval(args[1], letenv)
	return v, caller, err
}

// (quote expr)
func opQuote(args []*Expr, env *Env) (Value, *Env, error) {
	if len(args) != 1 {
		return Nil(), env, invalidFormf("quote expects 1 argument (got %d)", len(args))
	}
	return quoteExpr(args[0]), env, nil
}

func quoteExpr(e *Expr) Value {
	switch e.Type {
	case EInt:
		return Int(e.Int)
	case EFloat:
		return Float(e.Float)
	case EBool:
		return Bool(e.Bool)
	case ESymbol:
		return Symbol(e.Op.String())
	case EIdent:
		return Symbol(e.Name)
	case EList:
		cells := make([]Value, len(e.Cells))
		for i, c := range e.Cells {
			cells[i] = quoteExpr(c)
		}
		return List(cells...)
	default:
		return Nil()
	}
}

// (and expr*) evaluates left to right and stops at the first falsy value.
// With no arguments and is true.
func opAnd(args []*Expr, env *Env) (Value, *Env, error) {
	v := Bool(true)
	for _, e := range args {
		var err error
		v, env, err = Eval(e, env)
		if err != nil {
			return Nil(), env, err
		}
		if !v.Truthy() {
			return v, env, nil
		}
	}
	return v, env, nil
}

// (or expr*) evaluates left to right and stops at the first truthy value.
// With no arguments or is false.
func opOr(args []*Expr, env *Env) (Value, *Env, error) {
	v := Bool(false)
	for _, e := range args {
		var err error
		v, env, err = Eval(e, env)
		if err != nil {
			return Nil(), env, err
		}
		if v.Truthy() {
			return v, env, nil
		}
	}
	return v, env, nil
}
