// Package runtime holds the evaluator's value model and lexical scoping:
// the tagged union of runtime values described in spec §3, plus the
// Environment frame stack and function table that give them scope.
package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"corelang/interpreter-go/pkg/bigint"
)

// Kind identifies a Value's runtime tag.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NoneType"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// Value is satisfied by every runtime value kind.
type Value interface {
	Kind() Kind
}

// NoneValue is the singleton unit value.
type NoneValue struct{}

func (NoneValue) Kind() Kind { return KindNone }

// BoolValue wraps a boolean.
type BoolValue struct{ Val bool }

func (BoolValue) Kind() Kind { return KindBool }

// IntValue wraps an arbitrary-precision signed integer.
type IntValue struct{ Val bigint.Int }

func (IntValue) Kind() Kind { return KindInt }

// FloatValue wraps an IEEE-754 double.
type FloatValue struct{ Val float64 }

func (FloatValue) Kind() Kind { return KindFloat }

// StrValue wraps a UTF-8-agnostic byte string; equality is byte-exact.
type StrValue struct{ Val string }

func (StrValue) Kind() Kind { return KindStr }

// TupleValue is an ordered, shared-by-reference sequence of values,
// produced by multi-value expressions and consumed by unpacking assignment.
type TupleValue struct{ Elems []Value }

func (*TupleValue) Kind() Kind { return KindTuple }

// None and True/False are the canonical singletons most call sites reuse to
// avoid needless allocation.
var (
	None  Value = NoneValue{}
	True  Value = BoolValue{Val: true}
	False Value = BoolValue{Val: false}
)

// Bool converts a Go bool to the canonical BoolValue.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Truthy implements spec §4.2's truthiness rule.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case NoneValue:
		return false
	case BoolValue:
		return t.Val
	case IntValue:
		return !t.Val.IsZero()
	case FloatValue:
		return t.Val != 0
	case StrValue:
		return t.Val != ""
	case *TupleValue:
		return len(t.Elems) > 0
	default:
		return false
	}
}

// CoercionError reports a value that cannot be converted to the requested
// kind; Kind records whether it is InvalidLiteral (malformed numeric text)
// or TypeError (no coercion defined at all), and pkg/interpreter turns it
// into an EvalError of that same kind.
type CoercionError struct {
	Kind string // "TypeError" or "InvalidLiteral"
	Msg  string
}

func (e *CoercionError) Error() string { return e.Msg }

// ToInt implements spec §4.2's toInt(v).
func ToInt(v Value) (Value, error) {
	switch t := v.(type) {
	case IntValue:
		return t, nil
	case FloatValue:
		return IntValue{Val: bigint.FromInt64(int64(t.Val))}, nil
	case BoolValue:
		if t.Val {
			return IntValue{Val: bigint.FromInt64(1)}, nil
		}
		return IntValue{Val: bigint.FromInt64(0)}, nil
	case StrValue:
		n, err := bigint.Parse(t.Val)
		if err != nil {
			return nil, &CoercionError{Kind: "InvalidLiteral", Msg: fmt.Sprintf("invalid literal for int(): %q", t.Val)}
		}
		return IntValue{Val: n}, nil
	default:
		return nil, &CoercionError{Kind: "TypeError", Msg: fmt.Sprintf("cannot convert %s to int", v.Kind())}
	}
}

// ToFloat implements spec §4.2's toFloat(v).
func ToFloat(v Value) (Value, error) {
	switch t := v.(type) {
	case FloatValue:
		return t, nil
	case IntValue:
		return FloatValue{Val: t.Val.Float64()}, nil
	case BoolValue:
		if t.Val {
			return FloatValue{Val: 1.0}, nil
		}
		return FloatValue{Val: 0.0}, nil
	case StrValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(t.Val), 64)
		if err != nil {
			return nil, &CoercionError{Kind: "InvalidLiteral", Msg: fmt.Sprintf("could not convert string to float: %q", t.Val)}
		}
		return FloatValue{Val: f}, nil
	default:
		return nil, &CoercionError{Kind: "TypeError", Msg: fmt.Sprintf("cannot convert %s to float", v.Kind())}
	}
}

// FormatFloat renders a float with exactly six fractional digits,
// fixed-point, per spec §4.2/§6.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// ToStr implements spec §4.2's toStr(v); it never fails.
func ToStr(v Value) string {
	switch t := v.(type) {
	case StrValue:
		return t.Val
	case IntValue:
		return t.Val.String()
	case FloatValue:
		return FormatFloat(t.Val)
	case BoolValue:
		if t.Val {
			return "True"
		}
		return "False"
	case NoneValue:
		return "None"
	case *TupleValue:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = ToStr(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

// ToBool implements spec §4.2's toBool(v); it never fails.
func ToBool(v Value) Value { return Bool(Truthy(v)) }
