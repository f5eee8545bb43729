package runtime

import (
	"testing"

	"corelang/interpreter-go/pkg/bigint"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"none", NoneValue{}, false},
		{"zero int", IntValue{Val: bigint.FromInt64(0)}, false},
		{"nonzero int", IntValue{Val: bigint.FromInt64(1)}, true},
		{"zero float", FloatValue{Val: 0}, false},
		{"empty str", StrValue{Val: ""}, false},
		{"nonempty str", StrValue{Val: "x"}, true},
		{"empty tuple", &TupleValue{}, false},
		{"nonempty tuple", &TupleValue{Elems: []Value{NoneValue{}}}, true},
	}
	for _, tc := range tests {
		if got := Truthy(tc.v); got != tc.want {
			t.Errorf("%s: Truthy = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestToStrFormatsFloatsToSixDigits(t *testing.T) {
	got := ToStr(FloatValue{Val: 3.5})
	if got != "3.500000" {
		t.Errorf("ToStr(3.5) = %q, want 3.500000", got)
	}
}

func TestToStrBooleansAndNone(t *testing.T) {
	if got := ToStr(BoolValue{Val: true}); got != "True" {
		t.Errorf("ToStr(true) = %q", got)
	}
	if got := ToStr(BoolValue{Val: false}); got != "False" {
		t.Errorf("ToStr(false) = %q", got)
	}
	if got := ToStr(NoneValue{}); got != "None" {
		t.Errorf("ToStr(None) = %q", got)
	}
}

func TestToIntFromMalformedString(t *testing.T) {
	_, err := ToInt(StrValue{Val: "abc"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	ce, ok := err.(*CoercionError)
	if !ok || ce.Kind != "InvalidLiteral" {
		t.Fatalf("got %#v, want InvalidLiteral CoercionError", err)
	}
}

func TestToIntTypeError(t *testing.T) {
	_, err := ToInt(&TupleValue{})
	ce, ok := err.(*CoercionError)
	if !ok || ce.Kind != "TypeError" {
		t.Fatalf("got %#v, want TypeError CoercionError", err)
	}
}

func TestIntStringRoundTrip(t *testing.T) {
	n := bigint.FromInt64(-123456789)
	v := ToStr(IntValue{Val: n})
	parsed, err := bigint.Parse(v)
	if err != nil {
		t.Fatalf("Parse(%q): %v", v, err)
	}
	if !parsed.Equal(n) {
		t.Errorf("round trip mismatch: %s != %s", parsed, n)
	}
}
