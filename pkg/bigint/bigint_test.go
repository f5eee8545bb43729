package bigint

import "testing"

func mustParse(t *testing.T, s string) Int {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return v
}

func TestAddSubMul(t *testing.T) {
	tests := []struct {
		a, b, wantAdd, wantSub, wantMul string
	}{
		{"2", "3", "5", "-1", "6"},
		{"-7", "3", "-4", "-10", "-21"},
		{"-7", "-3", "-10", "-4", "21"},
		{"0", "0", "0", "0", "0"},
		{"999999999999999999", "1", "1000000000000000000", "999999999999999998", "999999999999999999"},
	}
	for _, tc := range tests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		if got := a.Add(b).String(); got != tc.wantAdd {
			t.Errorf("%s + %s = %s, want %s", tc.a, tc.b, got, tc.wantAdd)
		}
		if got := a.Sub(b).String(); got != tc.wantSub {
			t.Errorf("%s - %s = %s, want %s", tc.a, tc.b, got, tc.wantSub)
		}
		if got := a.Mul(b).String(); got != tc.wantMul {
			t.Errorf("%s * %s = %s, want %s", tc.a, tc.b, got, tc.wantMul)
		}
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b        string
		wantQ, wantR string
	}{
		{"7", "2", "3", "1"},
		{"-7", "3", "-3", "2"},
		{"7", "-3", "-3", "-2"},
		{"-7", "-3", "2", "-1"},
		{"6", "3", "2", "0"},
		{"-6", "3", "-2", "0"},
	}
	for _, tc := range tests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		q, err := a.Div(b)
		if err != nil {
			t.Fatalf("Div: %v", err)
		}
		r, err := a.Mod(b)
		if err != nil {
			t.Fatalf("Mod: %v", err)
		}
		if q.String() != tc.wantQ || r.String() != tc.wantR {
			t.Errorf("%s // %s, %s %% %s = %s, %s; want %s, %s", tc.a, tc.b, tc.a, tc.b, q, r, tc.wantQ, tc.wantR)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	a := mustParse(t, "5")
	if _, err := a.Div(Zero); err != ErrDivisionByZero {
		t.Fatalf("Div by zero: got %v, want ErrDivisionByZero", err)
	}
	if _, err := a.Mod(Zero); err != ErrDivisionByZero {
		t.Fatalf("Mod by zero: got %v, want ErrDivisionByZero", err)
	}
}

func TestInvalidLiteral(t *testing.T) {
	for _, s := range []string{"", "abc", "12abc", "-", "+", "1.5"} {
		if _, err := Parse(s); err != ErrInvalidLiteral {
			t.Errorf("Parse(%q): got %v, want ErrInvalidLiteral", s, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "-0", "42", "-42", "123456789012345678901234567890"} {
		v := mustParse(t, s)
		back := mustParse(t, v.String())
		if !back.Equal(v) {
			t.Errorf("round trip of %q broke: %s != %s", s, back, v)
		}
	}
}

func TestDivModIdentity(t *testing.T) {
	as := []int64{0, 1, -1, 7, -7, 100, -100, 999999999}
	bs := []int64{1, -1, 2, -2, 3, -3, 7, -7}
	for _, av := range as {
		for _, bv := range bs {
			a, b := FromInt64(av), FromInt64(bv)
			q, r, err := a.DivMod(b)
			if err != nil {
				t.Fatalf("DivMod(%d,%d): %v", av, bv, err)
			}
			if got := q.Mul(b).Add(r); !got.Equal(a) {
				t.Errorf("identity broken for %d // %d: q=%s r=%s, q*b+r=%s != a=%d", av, bv, q, r, got, av)
			}
			if sign := r.Sign(); sign != 0 && sign != b.Sign() {
				t.Errorf("sign(%d %% %d) = %d, want 0 or %d", av, bv, sign, b.Sign())
			}
		}
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"2", "1", 1},
		{"1", "1", 0},
		{"-1", "1", -1},
		{"-1", "-2", 1},
		{"-2", "-1", -1},
	}
	for _, tc := range tests {
		a, b := mustParse(t, tc.a), mustParse(t, tc.b)
		if got := a.Cmp(b); got != tc.want {
			t.Errorf("Cmp(%s,%s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
