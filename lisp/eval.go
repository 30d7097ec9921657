package lisp

// Eval evaluates expr against env and returns the resulting value along
// with the environment produced by the evaluation.  A nil env is treated
// as an empty environment.  The returned environment may be env itself
// when nothing was bound; callers decide whether to keep threading it.
//
// Arguments of compound forms are evaluated strictly left to right and
// the environment produced by one argument is the input environment of
// the next, so a define buried in an early argument is visible to its
// later siblings.
func Eval(expr *Expr, env *Env) (Value, *Env, error) {
	if env == nil {
		env = NewEnv()
	}
	switch expr.Type {
	case EInt:
		return Int(expr.Int), env, nil
	case EFloat:
		return Float(expr.Float), env, nil
	case EBool:
		return Bool(expr.Bool), env, nil
	case EIdent:
		v, ok := env.Get(expr.Name)
		if !ok {
			return Nil(), env, undefinedVariable(expr.Name)
		}
		return v, env, nil
	case ESymbol:
		return Nil(), env, unrecognizedf("reserved symbol is not an expression: %s", expr.Op)
	case EList:
		return evalList(expr, env)
	default:
		return Nil(), env, unrecognizedf("%s", expr)
	}
}

func evalList(expr *Expr, env *Env) (Value, *Env, error) {
	if len(expr.Cells) == 0 {
		return Nil(), env, unrecognizedf("empty application: ()")
	}
	head, args := expr.Cells[0], expr.Cells[1:]
	if head.Type == ESymbol {
		if op := specialOps[head.Op]; op != nil {
			return op(args, env)
		}
		if fn := langBuiltins[head.Op]; fn != nil {
			argv, env, err := evalArgs(args, env)
			if err != nil {
				return Nil(), env, err
			}
			v, err := fn(head.Op.String(), argv)
			return v, env, err
		}
		return Nil(), env, unrecognizedf("%s", expr)
	}
	return evalCall(head, args, env)
}

// evalArgs evaluates exprs left to right, threading the environment from
// one argument into the next.
func evalArgs(exprs []*Expr, env *Env) ([]Value, *Env, error) {
	argv := make([]Value, 0, len(exprs))
	for _, e := range exprs {
		v, next, err := Eval(e, env)
		if err != nil {
			return nil, env, err
		}
		argv = append(argv, v)
		env = next
	}
	return argv, env, nil
}

// evalCall applies a procedure.  Arguments are evaluated in the calling
// environment.  The body runs in an environment built from the closure's
// captured environment; bindings made there never escape, so the caller
// gets its own pre-call environment back.
func evalCall(head *Expr, args []*Expr, env *Env) (Value, *Env, error) {
	caller := env
	fun, env, err := resolveProc(head, env)
	if err != nil {
		return Nil(), caller, err
	}
	argv, _, err := evalArgs(args, env)
	if err != nil {
		return Nil(), caller, err
	}
	v, err := applyProc(fun, argv)
	return v, caller, err
}

func resolveProc(head *Expr, env *Env) (*Proc, *Env, error) {
	switch head.Type {
	case EIdent:
		v, ok := env.Get(head.Name)
		if !ok {
			return nil, env, undefinedFunction(head.Name)
		}
		if v.Type != VProc {
			return nil, env, notAFunction(head.Name)
		}
		return v.Proc, env, nil
	case EList:
		v, env, err := Eval(head, env)
		if err != nil {
			return nil, env, err
		}
		if v.Type != VProc {
			return nil, env, notAFunction(v.String())
		}
		return v.Proc, env, nil
	default:
		return nil, env, unrecognizedf("cannot apply %s: %s", head.Type, head)
	}
}

func applyProc(fun *Proc, argv []Value) (Value, error) {
	if len(argv) != len(fun.Params) {
		name := fun.Name
		if name == "" {
			name = "lambda"
		}
		return Nil(), arityError(name, len(fun.Params), len(argv))
	}
	call := fun.Env
	if fun.Name != "" {
		// Self reference is inserted at call time.  The captured
		// environment must not already contain the procedure's own name.
		call = call.Bind(fun.Name, ProcValue(fun))
	}
	for i, param := range fun.Params {
		call = call.Bind(param, argv[i])
	}
	v, _, err := Eval(fun.Body, call)
	return v, err
}
