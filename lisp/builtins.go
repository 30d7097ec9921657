package lisp

import "math"

// builtinFun applies an operator to fully evaluated arguments.  name is
// the operator's source spelling, used in error reports.
type builtinFun func(name string, args []Value) (Value, error)

var langBuiltins = map[Op]builtinFun{
	OpAdd:  builtinAdd,
	OpSub:  builtinSub,
	OpMul:  builtinMul,
	OpDiv:  builtinDiv,
	OpMod:  builtinMod,
	OpRem:  builtinRem,
	OpEq:   builtinEqNum,
	OpLT:   compare(func(a, b float64) bool { return a < b }),
	OpGT:   compare(func(a, b float64) bool { return a > b }),
	OpLEq:  compare(func(a, b float64) bool { return a <= b }),
	OpGEq:  compare(func(a, b float64) bool { return a >= b }),
	OpNot:  builtinNot,
	OpCAR:  builtinCAR,
	OpCDR:  builtinCDR,
	OpCons: builtinCons,
	OpList: builtinList,
}

func checkNums(name string, args []Value) error {
	for _, v := range args {
		if !v.IsNum() {
			return typeErrorf("%s operand is not a number: %s", name, v.Type)
		}
	}
	return nil
}

func anyFloat(args []Value) bool {
	for _, v := range args {
		if v.Type == VFloat {
			return true
		}
	}
	return false
}

func builtinAdd(name string, args []Value) (Value, error) {
	if err := checkNums(name, args); err != nil {
		return Nil(), err
	}
	if anyFloat(args) {
		sum := float64(0)
		for _, v := range args {
			sum += v.AsFloat()
		}
		return Float(sum), nil
	}
	sum := int64(0)
	for _, v := range args {
		sum += v.Int
	}
	return Int(sum), nil
}

func builtinMul(name string, args []Value) (Value, error) {
	if err := checkNums(name, args); err != nil {
		return Nil(), err
	}
	if anyFloat(args) {
		prod := float64(1)
		for _, v := range args {
			prod *= v.AsFloat()
		}
		return Float(prod), nil
	}
	prod := int64(1)
	for _, v := range args {
		prod *= v.Int
	}
	return Int(prod), nil
}

func builtinSub(name string, args []Value) (Value, error) {
	if len(args) == 0 {
		return Nil(), arityError(name, 1, 0)
	}
	if err := checkNums(name, args); err != nil {
		return Nil(), err
	}
	if len(args) == 1 {
		if args[0].Type == VFloat {
			return Float(-args[0].Float), nil
		}
		return Int(-args[0].Int), nil
	}
	if anyFloat(args) {
		acc := args[0].AsFloat()
		for _, v := range args[1:] {
			acc -= v.AsFloat()
		}
		return Float(acc), nil
	}
	acc := args[0].Int
	for _, v := range args[1:] {
		acc -= v.Int
	}
	return Int(acc), nil
}

// builtinDiv folds real division.  Exact integer quotients stay integers;
// everything else widens to a float.  Any zero divisor in the tail aborts
// before the fold reaches it.
func builtinDiv(name string, args []Value) (Value, error) {
	if len(args) == 0 {
		return Nil(), arityError(name, 1, 0)
	}
	if err := checkNums(name, args); err != nil {
		return Nil(), err
	}
	for _, v := range args[1:] {
		if v.isZero() {
			return Nil(), divisionByZero()
		}
	}
	acc := args[0]
	for _, v := range args[1:] {
		if acc.Type == VInt && v.Type == VInt && acc.Int%v.Int == 0 {
			acc = Int(acc.Int / v.Int)
			continue
		}
		acc = Float(acc.AsFloat() / v.AsFloat())
	}
	return acc, nil
}

// builtinMod is floored modulo: the result takes the divisor's sign.
func builtinMod(name string, args []Value) (Value, error) {
	a, b, err := modArgs(name, args)
	if err != nil {
		return Nil(), err
	}
	if a.Type == VInt && b.Type == VInt {
		r := a.Int % b.Int
		if r != 0 && (r < 0) != (b.Int < 0) {
			r += b.Int
		}
		return Int(r), nil
	}
	r := math.Mod(a.AsFloat(), b.AsFloat())
	if r != 0 && (r < 0) != (b.AsFloat() < 0) {
		r += b.AsFloat()
	}
	return Float(r), nil
}

// builtinRem is truncated remainder: the result takes the dividend's sign.
func builtinRem(name string, args []Value) (Value, error) {
	a, b, err := modArgs(name, args)
	if err != nil {
		return Nil(), err
	}
	if a.Type == VInt && b.Type == VInt {
		return Int(a.Int % b.Int), nil
	}
	return Float(math.Mod(a.AsFloat(), b.AsFloat())), nil
}

func modArgs(name string, args []Value) (Value, Value, error) {
	if len(args) != 2 {
		return Nil(), Nil(), arityError(name, 2, len(args))
	}
	if err := checkNums(name, args); err != nil {
		return Nil(), Nil(), err
	}
	if args[1].isZero() {
		return Nil(), Nil(), divisionByZero()
	}
	return args[0], args[1], nil
}

// builtinEqNum holds iff every operand equals the first.
func builtinEqNum(name string, args []Value) (Value, error) {
	if len(args) < 2 {
		return Nil(), arityError(name, 2, len(args))
	}
	if err := checkNums(name, args); err != nil {
		return Nil(), err
	}
	for _, v := range args[1:] {
		if !args[0].Equal(v) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}

// compare builds a chained comparison: the relation must hold for every
// adjacent operand pair, not just the first and last.
func compare(rel func(a, b float64) bool) builtinFun {
	return func(name string, args []Value) (Value, error) {
		if len(args) < 2 {
			return Nil(), arityError(name, 2, len(args))
		}
		if err := checkNums(name, args); err != nil {
			return Nil(), err
		}
		for i := 1; i < len(args); i++ {
			if !rel(args[i-1].AsFloat(), args[i].AsFloat()) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	}
}

func builtinNot(name string, args []Value) (Value, error) {
	if len(args) != 1 {
		return Nil(), arityError(name, 1, len(args))
	}
	return Bool(!args[0].Truthy()), nil
}

func listArg(name string, v Value) ([]Value, error) {
	switch v.Type {
	case VList:
		return v.Cells, nil
	case VNil:
		return nil, nil
	default:
		return nil, typeErrorf("%s operand is not a list: %s", name, v.Type)
	}
}

func builtinCAR(name string, args []Value) (Value, error) {
	if len(args) != 1 {
		return Nil(), arityError(name, 1, len(args))
	}
	cells, err := listArg(name, args[0])
	if err != nil {
		return Nil(), err
	}
	if len(cells) == 0 {
		return Nil(), emptyListError(name)
	}
	return cells[0], nil
}

func builtinCDR(name string, args []Value) (Value, error) {
	if len(args) != 1 {
		return Nil(), arityError(name, 1, len(args))
	}
	cells, err := listArg(name, args[0])
	if err != nil {
		return Nil(), err
	}
	if len(cells) == 0 {
		return Nil(), emptyListError(name)
	}
	return List(cells[1:]...), nil
}

func builtinCons(name string, args []Value) (Value, error) {
	if len(args) != 2 {
		return Nil(), arityError(name, 2, len(args))
	}
	cells, err := listArg(name, args[1])
	if err != nil {
		return Nil(), err
	}
	out := make([]Value, 0, len(cells)+1)
	out = append(out, args[0])
	out = append(out, cells...)
	return List(out...), nil
}

func builtinList(name string, args []Value) (Value, error) {
	return List(args...), nil
}
