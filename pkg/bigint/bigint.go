// Package bigint implements signed arbitrary-precision integers on a
// decimal-string magnitude, including the floor-division and Euclidean-style
// modulo the language's numeric tower requires.
package bigint

import (
	"errors"
	"strings"
)

// ErrDivisionByZero is returned by Div and Mod when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrInvalidLiteral is returned by Parse when the input is not a valid
// (optionally signed) decimal integer.
var ErrInvalidLiteral = errors.New("invalid literal for int")

// Int is a signed arbitrary-precision integer: a sign bit plus a decimal
// magnitude string with no leading zeros (the single digit "0" represents
// zero, and zero is always non-negative).
type Int struct {
	negative bool
	digits   string
}

// Zero is the additive identity.
var Zero = Int{digits: "0"}

// FromInt64 converts a machine integer to an Int.
func FromInt64(n int64) Int {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	if u == 0 {
		return Zero
	}
	var buf [20]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	return Int{negative: neg, digits: string(buf[i:])}
}

// Parse converts a decimal string (optional leading and trailing whitespace,
// optional sign, digits only) to an Int. Anything else is ErrInvalidLiteral.
func Parse(s string) (Int, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Int{}, ErrInvalidLiteral
	}
	neg := false
	switch t[0] {
	case '-':
		neg = true
		t = t[1:]
	case '+':
		t = t[1:]
	}
	if t == "" {
		return Int{}, ErrInvalidLiteral
	}
	for _, c := range t {
		if c < '0' || c > '9' {
			return Int{}, ErrInvalidLiteral
		}
	}
	mag := trimZeros(t)
	if mag == "0" {
		neg = false
	}
	return Int{negative: neg, digits: mag}, nil
}

// String renders the canonical decimal form, with a leading '-' when
// negative.
func (a Int) String() string {
	if a.negative {
		return "-" + a.digits
	}
	return a.digits
}

// IsZero reports whether a is zero.
func (a Int) IsZero() bool { return a.digits == "0" }

// Sign returns -1, 0, or 1.
func (a Int) Sign() int {
	if a.digits == "0" {
		return 0
	}
	if a.negative {
		return -1
	}
	return 1
}

// Int64 narrows a to a machine integer, truncating on overflow. Intended
// only for bounded uses such as string-repeat counts.
func (a Int) Int64() int64 {
	var r int64
	for i := 0; i < len(a.digits); i++ {
		r = r*10 + int64(a.digits[i]-'0')
	}
	if a.negative {
		return -r
	}
	return r
}

// Float64 widens a to an IEEE double, lossy for very large magnitudes.
func (a Int) Float64() float64 {
	var r float64
	for i := 0; i < len(a.digits); i++ {
		r = r*10 + float64(a.digits[i]-'0')
	}
	if a.negative {
		return -r
	}
	return r
}

func trimZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// compareMagnitude orders two unsigned decimal strings: longer wins, else
// lexicographic (digit strings with no leading zeros compare the same way
// lexicographically as numerically).
func compareMagnitude(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func addMagnitude(a, b string) string {
	var out []byte
	carry := 0
	i, j := len(a), len(b)
	for i > 0 || j > 0 || carry > 0 {
		sum := carry
		if i > 0 {
			i--
			sum += int(a[i] - '0')
		}
		if j > 0 {
			j--
			sum += int(b[j] - '0')
		}
		out = append(out, byte('0'+sum%10))
		carry = sum / 10
	}
	reverse(out)
	return trimZeros(string(out))
}

// subMagnitude requires a >= b.
func subMagnitude(a, b string) string {
	var out []byte
	borrow := 0
	i, j := len(a), len(b)
	for i > 0 {
		i--
		d := int(a[i]-'0') - borrow
		if j > 0 {
			j--
			d -= int(b[j] - '0')
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out = append(out, byte('0'+d))
	}
	reverse(out)
	return trimZeros(string(out))
}

func mulMagnitude(a, b string) string {
	if a == "0" || b == "0" {
		return "0"
	}
	acc := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		da := int(a[i] - '0')
		for j := len(b) - 1; j >= 0; j-- {
			db := int(b[j] - '0')
			acc[i+j+1] += da * db
		}
	}
	for k := len(acc) - 1; k > 0; k-- {
		acc[k-1] += acc[k] / 10
		acc[k] %= 10
	}
	start := 0
	for start < len(acc)-1 && acc[start] == 0 {
		start++
	}
	out := make([]byte, len(acc)-start)
	for i, d := range acc[start:] {
		out[i] = byte('0' + d)
	}
	return string(out)
}

// divmodMagnitude performs schoolbook long division, returning quotient and
// remainder with 0 <= remainder < b. b must not be "0".
func divmodMagnitude(a, b string) (quotient, remainder string) {
	if compareMagnitude(a, b) < 0 {
		return "0", a
	}
	var q strings.Builder
	r := "0"
	for i := 0; i < len(a); i++ {
		r = trimZeros(r + string(a[i]))
		digit := 0
		for d := 9; d >= 0; d-- {
			prod := mulMagnitude(b, string(rune('0'+d)))
			if compareMagnitude(r, prod) >= 0 {
				r = subMagnitude(r, prod)
				digit = d
				break
			}
		}
		q.WriteByte(byte('0' + digit))
	}
	return trimZeros(q.String()), trimZeros(r)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Neg returns -a.
func (a Int) Neg() Int {
	if a.digits == "0" {
		return a
	}
	return Int{negative: !a.negative, digits: a.digits}
}

// Add returns a + b.
func (a Int) Add(b Int) Int {
	if a.negative == b.negative {
		return Int{negative: a.negative, digits: addMagnitude(a.digits, b.digits)}
	}
	switch compareMagnitude(a.digits, b.digits) {
	case 0:
		return Zero
	case 1:
		return Int{negative: a.negative, digits: subMagnitude(a.digits, b.digits)}
	default:
		return Int{negative: b.negative, digits: subMagnitude(b.digits, a.digits)}
	}
}

// Sub returns a - b.
func (a Int) Sub(b Int) Int {
	return a.Add(b.Neg())
}

// Mul returns a * b.
func (a Int) Mul(b Int) Int {
	digits := mulMagnitude(a.digits, b.digits)
	if digits == "0" {
		return Zero
	}
	return Int{negative: a.negative != b.negative, digits: digits}
}

// DivMod returns the floor-division quotient and the matching remainder:
// a == q*b + r, with sign(r) in {0, sign(b)}.
func (a Int) DivMod(b Int) (quotient, remainder Int, err error) {
	quotient, err = a.Div(b)
	if err != nil {
		return Int{}, Int{}, err
	}
	// Mod is defined in terms of Div per §4.1: a - (a/b)*b. Computing it
	// this way (rather than reusing the magnitude remainder directly)
	// keeps the sign contract obviously correct: it matches sign(b)
	// because quotient already rounds toward negative infinity.
	remainder = a.Sub(quotient.Mul(b))
	return quotient, remainder, nil
}

// Div returns the floor of a/b (rounding toward negative infinity), e.g.
// (-7).Div(3) == -3.
func (a Int) Div(b Int) (Int, error) {
	if b.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	q, r := divmodMagnitude(a.digits, b.digits)
	negQ := a.negative != b.negative
	if negQ && r != "0" {
		q = addMagnitude(q, "1")
	}
	quotient := Int{negative: negQ, digits: q}
	if quotient.digits == "0" {
		quotient.negative = false
	}
	return quotient, nil
}

// Mod returns the floor modulus of a and b: sign(result) matches sign(b)
// (or the result is zero), and a == a.Div(b)*b + a.Mod(b).
func (a Int) Mod(b Int) (Int, error) {
	_, r, err := a.DivMod(b)
	return r, err
}

// Cmp returns -1, 0, or 1 according to whether a is less than, equal to, or
// greater than b.
func (a Int) Cmp(b Int) int {
	if a.negative != b.negative {
		if a.negative {
			return -1
		}
		return 1
	}
	c := compareMagnitude(a.digits, b.digits)
	if a.negative {
		return -c
	}
	return c
}

// Equal reports whether a and b denote the same value.
func (a Int) Equal(b Int) bool {
	return a.negative == b.negative && a.digits == b.digits
}
