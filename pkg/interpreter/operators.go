package interpreter

import (
	"math"
	"strings"

	"corelang/interpreter-go/pkg/bigint"
	"corelang/interpreter-go/pkg/runtime"
)

func isNumeric(v runtime.Value) bool {
	switch v.(type) {
	case runtime.IntValue, runtime.FloatValue, runtime.BoolValue:
		return true
	default:
		return false
	}
}

func floatOf(v runtime.Value) (float64, error) {
	switch t := v.(type) {
	case runtime.FloatValue:
		return t.Val, nil
	case runtime.IntValue:
		return t.Val.Float64(), nil
	case runtime.BoolValue:
		if t.Val {
			return 1.0, nil
		}
		return 0.0, nil
	default:
		return 0, typeError("cannot convert %s to float", v.Kind())
	}
}

func intOf(v runtime.Value) (bigint.Int, bool) {
	switch t := v.(type) {
	case runtime.IntValue:
		return t.Val, true
	case runtime.BoolValue:
		if t.Val {
			return bigint.FromInt64(1), true
		}
		return bigint.FromInt64(0), true
	default:
		return bigint.Int{}, false
	}
}

func isIntLike(v runtime.Value) bool {
	switch v.(type) {
	case runtime.IntValue, runtime.BoolValue:
		return true
	default:
		return false
	}
}

func isFloatLike(v runtime.Value) bool {
	_, ok := v.(runtime.FloatValue)
	return ok
}

func isStr(v runtime.Value) bool {
	_, ok := v.(runtime.StrValue)
	return ok
}

// applyBinaryOp implements §4.5's arithmetic dispatch table. Str and
// numeric kinds never mix except for the explicit Str*Int repetition case;
// every other cross-kind combination that isn't all-numeric is a TypeError.
func applyBinaryOp(op string, a, b runtime.Value) (runtime.Value, error) {
	switch op {
	case "+":
		if isStr(a) && isStr(b) {
			return runtime.StrValue{Val: a.(runtime.StrValue).Val + b.(runtime.StrValue).Val}, nil
		}
		if isIntLike(a) && isIntLike(b) {
			x, _ := intOf(a)
			y, _ := intOf(b)
			return runtime.IntValue{Val: x.Add(y)}, nil
		}
		if isNumeric(a) && isNumeric(b) {
			x, _ := floatOf(a)
			y, _ := floatOf(b)
			return runtime.FloatValue{Val: x + y}, nil
		}
		return nil, typeError("unsupported operand type(s) for +: '%s' and '%s'", a.Kind(), b.Kind())

	case "-":
		if isIntLike(a) && isIntLike(b) {
			x, _ := intOf(a)
			y, _ := intOf(b)
			return runtime.IntValue{Val: x.Sub(y)}, nil
		}
		if isNumeric(a) && isNumeric(b) {
			x, _ := floatOf(a)
			y, _ := floatOf(b)
			return runtime.FloatValue{Val: x - y}, nil
		}
		return nil, typeError("unsupported operand type(s) for -: '%s' and '%s'", a.Kind(), b.Kind())

	case "*":
		if isIntLike(a) && isIntLike(b) {
			x, _ := intOf(a)
			y, _ := intOf(b)
			return runtime.IntValue{Val: x.Mul(y)}, nil
		}
		if isStr(a) && isIntLike(b) {
			n, _ := intOf(b)
			return runtime.StrValue{Val: repeatStr(a.(runtime.StrValue).Val, n)}, nil
		}
		if isIntLike(a) && isStr(b) {
			n, _ := intOf(a)
			return runtime.StrValue{Val: repeatStr(b.(runtime.StrValue).Val, n)}, nil
		}
		if isNumeric(a) && isNumeric(b) {
			x, _ := floatOf(a)
			y, _ := floatOf(b)
			return runtime.FloatValue{Val: x * y}, nil
		}
		return nil, typeError("unsupported operand type(s) for *: '%s' and '%s'", a.Kind(), b.Kind())

	case "/":
		if !isNumeric(a) || !isNumeric(b) {
			return nil, typeError("unsupported operand type(s) for /: '%s' and '%s'", a.Kind(), b.Kind())
		}
		x, _ := floatOf(a)
		y, _ := floatOf(b)
		if y == 0 {
			return nil, divisionByZero()
		}
		return runtime.FloatValue{Val: x / y}, nil

	case "//":
		if isIntLike(a) && isIntLike(b) {
			x, _ := intOf(a)
			y, _ := intOf(b)
			if y.IsZero() {
				return nil, divisionByZero()
			}
			q, err := x.Div(y)
			if err != nil {
				return nil, divisionByZero()
			}
			return runtime.IntValue{Val: q}, nil
		}
		if !isNumeric(a) || !isNumeric(b) {
			return nil, typeError("unsupported operand type(s) for //: '%s' and '%s'", a.Kind(), b.Kind())
		}
		x, _ := floatOf(a)
		y, _ := floatOf(b)
		if y == 0 {
			return nil, divisionByZero()
		}
		return runtime.IntValue{Val: bigint.FromInt64(int64(math.Floor(x / y)))}, nil

	case "%":
		if isIntLike(a) && isIntLike(b) {
			x, _ := intOf(a)
			y, _ := intOf(b)
			if y.IsZero() {
				return nil, divisionByZero()
			}
			r, err := x.Mod(y)
			if err != nil {
				return nil, divisionByZero()
			}
			return runtime.IntValue{Val: r}, nil
		}
		if !isNumeric(a) || !isNumeric(b) {
			return nil, typeError("unsupported operand type(s) for %%: '%s' and '%s'", a.Kind(), b.Kind())
		}
		x, _ := floatOf(a)
		y, _ := floatOf(b)
		if y == 0 {
			return nil, divisionByZero()
		}
		return runtime.FloatValue{Val: math.Mod(x, y)}, nil

	default:
		return nil, internalError("unknown binary operator %q", op)
	}
}

func repeatStr(s string, n bigint.Int) string {
	if n.Sign() <= 0 {
		return ""
	}
	count := n.Int64()
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, int(count))
}

//-----------------------------------------------------------------------------
// comparisons (§4.3)
//-----------------------------------------------------------------------------

// compare evaluates one comparison operator between two already-evaluated
// operands.
func (in *Interpreter) compare(op string, a, b runtime.Value) (bool, error) {
	switch op {
	case "==":
		return valuesEqual(a, b), nil
	case "!=":
		return !valuesEqual(a, b), nil
	default:
		ord, ok := orderCompare(a, b)
		if !ok {
			if in.strictComparisons {
				return false, typeError("unorderable types: %s %s %s", a.Kind(), op, b.Kind())
			}
			return false, nil
		}
		switch op {
		case "<":
			return ord < 0, nil
		case ">":
			return ord > 0, nil
		case "<=":
			return ord <= 0, nil
		case ">=":
			return ord >= 0, nil
		default:
			return false, internalError("unknown comparison operator %q", op)
		}
	}
}

// orderCompare returns (-1|0|1, true) when a and b belong to one of the
// three homogeneous-or-coercible kinds spec §4.3 orders, else (_, false).
func orderCompare(a, b runtime.Value) (int, bool) {
	if isStr(a) && isStr(b) {
		return strings.Compare(a.(runtime.StrValue).Val, b.(runtime.StrValue).Val), true
	}
	if isIntLike(a) && isIntLike(b) {
		x, _ := intOf(a)
		y, _ := intOf(b)
		return x.Cmp(y), true
	}
	if isNumeric(a) && isNumeric(b) {
		x, _ := floatOf(a)
		y, _ := floatOf(b)
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

// valuesEqual implements §4.3's equality rule: numeric kinds (Int/Float/
// Bool) coerce against each other; Str compared against a non-Str, or
// either side None, falls back to tag identity with no coercion and no
// exception.
func valuesEqual(a, b runtime.Value) bool {
	if a.Kind() == runtime.KindNone || b.Kind() == runtime.KindNone {
		return a.Kind() == b.Kind()
	}
	if isStr(a) || isStr(b) {
		if isStr(a) && isStr(b) {
			return a.(runtime.StrValue).Val == b.(runtime.StrValue).Val
		}
		return false
	}
	if isNumeric(a) && isNumeric(b) {
		ord, _ := orderCompare(a, b)
		return ord == 0
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if ta, ok := a.(*runtime.TupleValue); ok {
		tb := b.(*runtime.TupleValue)
		if len(ta.Elems) != len(tb.Elems) {
			return false
		}
		for i := range ta.Elems {
			if !valuesEqual(ta.Elems[i], tb.Elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}
