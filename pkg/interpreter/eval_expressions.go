package interpreter

import (
	"math"
	"strings"

	"corelang/interpreter-go/pkg/ast"
	"corelang/interpreter-go/pkg/bigint"
	"corelang/interpreter-go/pkg/runtime"
)

// lookup resolves a name against env, falling back to the module frame when
// env is a function frame that doesn't bind it itself. A function frame has
// no parent link (§4.7: assignment inside a function must never rebind an
// outer binding, enforced by Environment.Bind only ever searching its own
// chain), so reads need this explicit second hop instead of a chained one.
func (in *Interpreter) lookup(name string, env *runtime.Environment) (runtime.Value, error) {
	if v, err := env.Get(name); err == nil {
		return v, nil
	}
	if env != in.global {
		if v, err := in.global.Get(name); err == nil {
			return v, nil
		}
	}
	return nil, runtime.ErrUnbound
}

// eval dispatches on the concrete expression node type and returns the
// Value it produces, or the first EvalError encountered. Control signals
// never originate here directly; they can only surface by propagating up
// from a nested call's body (handled in callFunction).
func (in *Interpreter) eval(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		v, err := in.lookup(e.Name, env)
		if err != nil {
			return nil, nameError(e.Name)
		}
		return v, nil
	case *ast.IntLiteral:
		return runtime.IntValue{Val: e.Value}, nil
	case *ast.FloatLiteral:
		return runtime.FloatValue{Val: e.Value}, nil
	case *ast.StrLiteral:
		return runtime.StrValue{Val: e.Value}, nil
	case *ast.BoolLiteral:
		return runtime.Bool(e.Value), nil
	case *ast.NoneLiteral:
		return runtime.None, nil
	case *ast.ParenExpr:
		return in.eval(e.Inner, env)
	case *ast.Testlist:
		return in.evalTestlist(e, env)
	case *ast.OrTest:
		return in.evalOrTest(e, env)
	case *ast.AndTest:
		return in.evalAndTest(e, env)
	case *ast.NotTest:
		v, err := in.eval(e.Operand, env)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(!runtime.Truthy(v)), nil
	case *ast.Comparison:
		return in.evalComparison(e, env)
	case *ast.ArithExpr:
		return in.evalChainedBinary(e.Operands, e.Ops, env)
	case *ast.Term:
		return in.evalChainedBinary(e.Operands, e.Ops, env)
	case *ast.Factor:
		return in.evalFactor(e, env)
	case *ast.Power:
		return in.evalPower(e, env)
	case *ast.AtomExpr:
		return in.evalAtomExpr(e, env)
	case *ast.FormatString:
		return in.evalFormatString(e, env)
	default:
		return nil, internalError("unknown expression node %s", expr.Kind())
	}
}

func (in *Interpreter) evalTestlist(e *ast.Testlist, env *runtime.Environment) (runtime.Value, error) {
	elems := make([]runtime.Value, len(e.Items))
	for i, item := range e.Items {
		v, err := in.eval(item, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &runtime.TupleValue{Elems: elems}, nil
}

func (in *Interpreter) evalOrTest(e *ast.OrTest, env *runtime.Environment) (runtime.Value, error) {
	var last runtime.Value = runtime.False
	for _, operand := range e.Operands {
		v, err := in.eval(operand, env)
		if err != nil {
			return nil, err
		}
		if runtime.Truthy(v) {
			return v, nil
		}
		last = v
	}
	return last, nil
}

func (in *Interpreter) evalAndTest(e *ast.AndTest, env *runtime.Environment) (runtime.Value, error) {
	var last runtime.Value = runtime.True
	for _, operand := range e.Operands {
		v, err := in.eval(operand, env)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(v) {
			return v, nil
		}
		last = v
	}
	return last, nil
}

// evalComparison implements chained comparisons (§4.3): every operand is
// evaluated exactly once up front, then each adjacent pair is compared in
// order with a short-circuit on the first false result.
func (in *Interpreter) evalComparison(e *ast.Comparison, env *runtime.Environment) (runtime.Value, error) {
	operands := make([]runtime.Value, len(e.Operands))
	for i, item := range e.Operands {
		v, err := in.eval(item, env)
		if err != nil {
			return nil, err
		}
		operands[i] = v
	}
	for i, op := range e.Ops {
		ok, err := in.compare(op, operands[i], operands[i+1])
		if err != nil {
			return nil, err
		}
		if !ok {
			return runtime.False, nil
		}
	}
	return runtime.True, nil
}

func (in *Interpreter) evalChainedBinary(operandNodes []ast.Expression, ops []string, env *runtime.Environment) (runtime.Value, error) {
	v, err := in.eval(operandNodes[0], env)
	if err != nil {
		return nil, err
	}
	for i, op := range ops {
		r, err := in.eval(operandNodes[i+1], env)
		if err != nil {
			return nil, err
		}
		v, err = applyBinaryOp(op, v, r)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (in *Interpreter) evalFactor(e *ast.Factor, env *runtime.Environment) (runtime.Value, error) {
	v, err := in.eval(e.Operand, env)
	if err != nil {
		return nil, err
	}
	if e.Op == "+" {
		if !isNumeric(v) {
			return nil, typeError("bad operand type for unary +: %s", v.Kind())
		}
		return v, nil
	}
	switch t := v.(type) {
	case runtime.IntValue:
		return runtime.IntValue{Val: t.Val.Neg()}, nil
	case runtime.FloatValue:
		return runtime.FloatValue{Val: -t.Val}, nil
	case runtime.BoolValue:
		n := int64(0)
		if t.Val {
			n = 1
		}
		return runtime.IntValue{Val: bigint.FromInt64(-n)}, nil
	default:
		return nil, typeError("bad operand type for unary -: %s", v.Kind())
	}
}

func (in *Interpreter) evalPower(e *ast.Power, env *runtime.Environment) (runtime.Value, error) {
	base, err := in.eval(e.Base, env)
	if err != nil {
		return nil, err
	}
	exp, err := in.eval(e.Exponent, env)
	if err != nil {
		return nil, err
	}
	if bi, ok := base.(runtime.IntValue); ok {
		if ei, ok := exp.(runtime.IntValue); ok && ei.Val.Sign() >= 0 {
			return intPow(bi.Val, ei.Val)
		}
	}
	bf, err := floatOf(base)
	if err != nil {
		return nil, err
	}
	ef, err := floatOf(exp)
	if err != nil {
		return nil, err
	}
	return runtime.FloatValue{Val: math.Pow(bf, ef)}, nil
}

func intPow(base bigint.Int, exp bigint.Int) (runtime.Value, error) {
	result := bigint.FromInt64(1)
	one := bigint.FromInt64(1)
	zero := bigint.FromInt64(0)
	for e := exp; e.Cmp(zero) > 0; e = e.Sub(one) {
		result = result.Mul(base)
	}
	return runtime.IntValue{Val: result}, nil
}

//-----------------------------------------------------------------------------
// calls
//-----------------------------------------------------------------------------

func (in *Interpreter) evalAtomExpr(e *ast.AtomExpr, env *runtime.Environment) (runtime.Value, error) {
	if e.Trailer == nil {
		return in.eval(e.Atom, env)
	}
	name, ok := e.Atom.(*ast.Identifier)
	if !ok {
		return nil, internalError("call target must be a name")
	}

	positional := make([]runtime.Value, 0, len(e.Trailer.Args))
	keyword := make(map[string]runtime.Value)
	for _, arg := range e.Trailer.Args {
		v, err := in.eval(arg.Value, env)
		if err != nil {
			return nil, err
		}
		if arg.Name == "" {
			positional = append(positional, v)
		} else {
			keyword[arg.Name] = v
		}
	}

	// User-defined functions shadow builtins of the same name (§4.8).
	if fn, ok := in.functions.Lookup(name.Name); ok {
		return in.callFunction(name.Name, fn, positional, keyword)
	}
	if builtin, ok := builtins[name.Name]; ok {
		return builtin(in, positional)
	}
	return nil, nameError(name.Name)
}

func (in *Interpreter) callFunction(name string, fn *runtime.FunctionDef, positional []runtime.Value, keyword map[string]runtime.Value) (runtime.Value, error) {
	if in.callDepth >= in.maxCallDepth {
		return nil, internalError("maximum call depth exceeded calling '%s'", name)
	}
	if in.traceCalls {
		in.logger.Printf("call %s depth=%d", name, in.callDepth+1)
	}

	// No parent link: §4.7 gives a function its own frame plus read-through
	// access to the module frame, but assignment must stay local to the
	// call (see the Identifier case in eval) rather than rebind a global
	// of the same name the way Environment.Bind does for nested frames.
	frame := runtime.NewEnvironment(nil)
	for i, param := range fn.Params {
		switch {
		case i < len(positional):
			frame.Define(param, positional[i])
		case keyword[param] != nil:
			frame.Define(param, keyword[param])
		default:
			if def, ok := fn.Defaults[param]; ok {
				frame.Define(param, def)
			} else {
				return nil, typeError("%s() missing required argument: '%s'", name, param)
			}
		}
	}

	body, ok := fn.Body.(*ast.Suite)
	if !ok {
		return nil, internalError("function '%s' has no evaluable body", name)
	}

	in.callDepth++
	err := in.execSuite(body, frame)
	in.callDepth--

	if in.traceCalls {
		in.logger.Printf("return %s depth=%d", name, in.callDepth)
	}

	if err == nil {
		return runtime.None, nil
	}
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	return nil, err
}

//-----------------------------------------------------------------------------
// f-strings
//-----------------------------------------------------------------------------

func (in *Interpreter) evalFormatString(e *ast.FormatString, env *runtime.Environment) (runtime.Value, error) {
	var sb strings.Builder
	for _, part := range e.Parts {
		if part.Expr == nil {
			sb.WriteString(part.Literal)
			continue
		}
		v, err := in.eval(part.Expr, env)
		if err != nil {
			return nil, err
		}
		sb.WriteString(runtime.ToStr(v))
	}
	return runtime.StrValue{Val: sb.String()}, nil
}
