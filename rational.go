package fractions

import (
	"math"
	"strconv"
	"strings"
)

// Rational is an exact fraction with a 32-bit numerator and denominator.
// Values are immutable; every operation returns a new value.
//
// A Rational is always canonical: finite values are fully reduced, the sign
// lives in the numerator, the denominator is positive, and zero is 0/1.
// NaN and the infinities are encoded with a zero denominator, so the zero
// value of the type is NaN. Because canonical equal values are identical,
// results can be compared with == and against the package's named values.
//
// Arithmetic is total. Special values follow the usual absorption rules,
// and a finite result whose reduced numerator or denominator does not fit
// in 32 bits saturates to the infinity with the numerator's sign.
type Rational struct {
	num int32
	den int32
}

// Named values. Every computed Rational equal to one of these is == to it.
var (
	// Zero is the rational 0/1.
	Zero = Rational{0, 1}
	// One is the rational 1/1.
	One = Rational{1, 1}
	// PosInf and NegInf are the infinities. Negation maps them onto each
	// other exactly.
	PosInf = Rational{math.MaxInt32, 0}
	NegInf = Rational{math.MinInt32 + 1, 0}
	// NaN is the not-a-number value, also the zero value of Rational.
	NaN = Rational{0, 0}
	// MaxValue and MinValue are the largest and smallest finite rationals.
	MaxValue = Rational{math.MaxInt32, 1}
	MinValue = Rational{math.MinInt32, 1}
)

// FromInt returns the rational n/1.
func FromInt(n int32) Rational {
	return Rational{n, 1}
}

// FromRatio returns the reduced rational num/den. If den is zero, the
// result collapses by the sign of num: positive to +Infinity, negative to
// -Infinity, and zero to NaN.
func FromRatio(num, den int32) Rational {
	if den == 0 {
		switch {
		case num > 0:
			return PosInf
		case num < 0:
			return NegInf
		}
		return NaN
	}
	return reduce(int64(num), int64(den))
}

// FromMixed returns the rational whole + num/den. The overall sign comes
// from whole, or from num when whole is zero; the signs of the other parts
// are ignored. The parts combine in 64 bits, so large mixed forms saturate
// instead of wrapping: FromMixed(math.MaxInt32, 1, 2) is +Infinity. A zero
// den yields NaN.
func FromMixed(whole, num, den int32) Rational {
	sign := int64(1)
	if whole < 0 || whole == 0 && num < 0 {
		sign = -1
	}
	w, n, d := abs64(int64(whole)), abs64(int64(num)), abs64(int64(den))
	return reduce(sign*(n+w*d), d)
}

// reduce returns the canonical Rational for num/den. It moves the sign to
// the numerator, divides through by the gcd, and applies the saturation
// rules: a zero denominator is NaN, and a reduced component outside the
// 32-bit range becomes the infinity with the numerator's sign. Callers keep
// num and den small enough that the intermediate arithmetic cannot wrap.
func reduce(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd64(num, den)
	num /= g
	den /= g
	switch {
	case den == 0:
		return NaN
	case den > math.MaxInt32:
		if num < 0 {
			return NegInf
		}
		return PosInf
	case num > math.MaxInt32:
		return PosInf
	case num < math.MinInt32:
		return NegInf
	}
	return Rational{int32(num), int32(den)}
}

// gcd64 is the greatest common divisor of |a| and |b|. gcd64(n, 0) is |n|,
// except that gcd64(0, 0) is 1 so that 0/0 reduces to the NaN encoding
// instead of dividing by zero.
func gcd64(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	if a < b {
		a, b = b, a
	}
	if a == 0 {
		return 1
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// IsNaN reports whether x is the not-a-number value.
func (x Rational) IsNaN() bool {
	return x.den == 0 && x.num == 0
}

// IsInf reports whether x is an infinity. If sign is positive, IsInf
// reports whether x is +Infinity; if negative, -Infinity; if zero, either.
func (x Rational) IsInf(sign int) bool {
	if x.den != 0 || x.num == 0 {
		return false
	}
	return sign == 0 || (sign > 0) == (x.num > 0)
}

// Sign returns -1, 0, or +1 according to the sign of x. The sign of NaN
// is 0.
func (x Rational) Sign() int {
	switch {
	case x.num > 0:
		return 1
	case x.num < 0:
		return -1
	}
	return 0
}

// Num returns the numerator of x, which carries the sign.
func (x Rational) Num() int32 {
	return x.num
}

// Den returns the denominator of x: positive for finite values, 0 for NaN
// and the infinities.
func (x Rational) Den() int32 {
	return x.den
}

// Add returns the sum x + y. NaN absorbs, adding infinities of opposite
// signs gives NaN, and otherwise an infinite operand dominates the sum.
func (x Rational) Add(y Rational) Rational {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.den == 0 || y.den == 0 {
		if x.den == 0 && y.den == 0 && x != y {
			return NaN
		}
		if x.den == 0 {
			return x
		}
		return y
	}
	g := gcd64(int64(x.den), int64(y.den))
	xs, ys := int64(x.den)/g, int64(y.den)/g
	return reduce(xs*int64(y.num)+ys*int64(x.num), xs*ys*g)
}

// Neg returns -x. Negation maps the infinities onto each other and leaves
// NaN and Zero fixed. Negating a numerator of math.MinInt32 saturates to
// +Infinity.
func (x Rational) Neg() Rational {
	if x.den == 0 {
		switch {
		case x.num > 0:
			return NegInf
		case x.num < 0:
			return PosInf
		}
		return NaN
	}
	return reduce(-int64(x.num), int64(x.den))
}

// Sub returns the difference x - y, evaluated as x.Add(y.Neg()).
func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

// Mul returns the product x * y. NaN absorbs, multiplying two infinities
// gives NaN regardless of their signs, and multiplying an infinity by a
// finite value gives the infinity with the product's sign, or Zero when
// the finite operand is Zero.
func (x Rational) Mul(y Rational) Rational {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.den == 0 || y.den == 0 {
		if x.den == 0 && y.den == 0 {
			return NaN
		}
		switch x.Sign() * y.Sign() {
		case 1:
			return PosInf
		case -1:
			return NegInf
		}
		return Zero
	}
	xn, xd := int64(x.num), int64(x.den)
	yn, yd := int64(y.num), int64(y.den)
	g := gcd64(xn, yd)
	xn, yd = xn/g, yd/g
	g = gcd64(xd, yn)
	xd, yn = xd/g, yn/g
	return reduce(xn*yn, xd*yd)
}

// Inv returns the reciprocal 1/x. The reciprocal of either infinity is
// Zero, and the reciprocals of Zero and NaN are NaN.
func (x Rational) Inv() Rational {
	if x.den == 0 {
		if x.num == 0 {
			return NaN
		}
		return Zero
	}
	if x.num == 0 {
		return NaN
	}
	return reduce(int64(x.den), int64(x.num))
}

// Div returns the quotient x / y, evaluated as x.Mul(y.Inv()). Dividing by
// Zero yields NaN.
func (x Rational) Div(y Rational) Rational {
	return x.Mul(y.Inv())
}

// Cmp compares x and y, returning -1 if x < y, 0 if x == y, and +1 if
// x > y. +Infinity is greater and -Infinity less than everything else.
// There is no order involving NaN, nor between infinities of the same
// sign; comparing those returns a *CmpError.
func (x Rational) Cmp(y Rational) (int, error) {
	if x.IsNaN() || y.IsNaN() {
		return 0, &CmpError{X: x, Y: y}
	}
	if x.den == 0 || y.den == 0 {
		if x == y {
			return 0, &CmpError{X: x, Y: y}
		}
		if x == PosInf || y == NegInf {
			return 1, nil
		}
		return -1, nil
	}
	l := int64(x.num) * int64(y.den)
	r := int64(y.num) * int64(x.den)
	switch {
	case l < r:
		return -1, nil
	case l > r:
		return 1, nil
	}
	return 0, nil
}

// Int64 returns x truncated toward zero. NaN and the infinities have no
// integer representation and return a *ConvError.
func (x Rational) Int64() (int64, error) {
	if x.den == 0 {
		return 0, &ConvError{X: x, Target: "an integer"}
	}
	return int64(x.num) / int64(x.den), nil
}

// Int32 returns x truncated toward zero and saturated to the int32 range.
// NaN and the infinities return a *ConvError.
func (x Rational) Int32() (int32, error) {
	n, err := x.Int64()
	if err != nil {
		return 0, err
	}
	return int32(clamp(n, math.MinInt32, math.MaxInt32)), nil
}

// Int16 returns x truncated toward zero and saturated to the int16 range.
// NaN and the infinities return a *ConvError.
func (x Rational) Int16() (int16, error) {
	n, err := x.Int64()
	if err != nil {
		return 0, err
	}
	return int16(clamp(n, math.MinInt16, math.MaxInt16)), nil
}

// Int8 returns x truncated toward zero and saturated to the int8 range:
// 401/2 is 127 as an int8 and -401/2 is -128. NaN and the infinities
// return a *ConvError.
func (x Rational) Int8() (int8, error) {
	n, err := x.Int64()
	if err != nil {
		return 0, err
	}
	return int8(clamp(n, math.MinInt8, math.MaxInt8)), nil
}

// clamp saturates n to the range [lo, hi].
func clamp(n, lo, hi int64) int64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Float64 returns the quotient of x as a float64. NaN and the infinities
// convert to the corresponding IEEE values.
func (x Rational) Float64() float64 {
	if x.den == 0 {
		switch {
		case x.num > 0:
			return math.Inf(1)
		case x.num < 0:
			return math.Inf(-1)
		}
		return math.NaN()
	}
	return float64(x.num) / float64(x.den)
}

// Float32 returns the quotient of x as a float32.
func (x Rational) Float32() float32 {
	return float32(x.Float64())
}

// MixedWhole returns the whole part of x as a mixed fraction, truncated
// toward zero: the whole part of -13/5 is -2. NaN and the infinities
// return a *ConvError.
func (x Rational) MixedWhole() (int32, error) {
	if x.den == 0 {
		return 0, &ConvError{X: x, Target: "a mixed fraction"}
	}
	return x.num / x.den, nil
}

// MixedNum returns the fractional-part numerator of x as a mixed fraction.
// It is never negative: the fractional part of -13/5 is 3 over 5. NaN and
// the infinities return a *ConvError.
func (x Rational) MixedNum() (int32, error) {
	if x.den == 0 {
		return 0, &ConvError{X: x, Target: "a mixed fraction"}
	}
	n := x.num % x.den
	if n < 0 {
		n = -n
	}
	return n, nil
}

// RenderMode selects how Text renders a value.
type RenderMode int

const (
	// Ratio renders num/den, or a bare integer when the denominator is 1.
	Ratio RenderMode = iota
	// Mixed renders improper fractions as whole_num/den and everything
	// else as Ratio does.
	Mixed
)

// Text renders x in the given mode. The special values render as "NaN",
// "+Infinity", and "-Infinity" in every mode.
func (x Rational) Text(mode RenderMode) string {
	if x.den == 0 {
		switch {
		case x.num > 0:
			return "+Infinity"
		case x.num < 0:
			return "-Infinity"
		}
		return "NaN"
	}
	if x.den == 1 {
		return strconv.FormatInt(int64(x.num), 10)
	}
	den := strconv.FormatInt(int64(x.den), 10)
	if mode == Mixed && abs64(int64(x.num)) > int64(x.den) {
		w := x.num / x.den
		n := x.num % x.den
		if n < 0 {
			n = -n
		}
		return strconv.FormatInt(int64(w), 10) + "_" + strconv.FormatInt(int64(n), 10) + "/" + den
	}
	return strconv.FormatInt(int64(x.num), 10) + "/" + den
}

// String renders x in Ratio mode. Parsing the result recovers x exactly,
// except for a numerator of math.MinInt32, which renders to a numeral one
// past what a literal may hold.
func (x Rational) String() string {
	return x.Text(Ratio)
}

// Parse converts a fraction literal to a Rational. A literal is an
// optional sign followed by an integer "123", a ratio "123/456", or a
// mixed fraction "123_456/789", where each part is a run of decimal digits
// that fits in an int32. Surrounding whitespace is ignored. The sign
// applies to the whole part when it is present and nonzero, and to the
// numerator otherwise. Any other text returns a *LiteralError.
func Parse(s string) (Rational, error) {
	rest := strings.TrimSpace(s)
	sign := int32(1)
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		if rest[0] == '-' {
			sign = -1
		}
		rest = rest[1:]
	}
	var whole int32
	head, tail, mixed := strings.Cut(rest, "_")
	if mixed {
		w, ok := atoi32(head)
		if !ok {
			return NaN, &LiteralError{Text: s}
		}
		whole, rest = w, tail
	}
	numstr, denstr, ratio := strings.Cut(rest, "/")
	if !ratio {
		// A plain integer. The mixed form requires the fraction part.
		n, ok := atoi32(numstr)
		if !ok || mixed {
			return NaN, &LiteralError{Text: s}
		}
		return FromInt(sign * n), nil
	}
	num, ok := atoi32(numstr)
	if !ok {
		return NaN, &LiteralError{Text: s}
	}
	den, ok := atoi32(denstr)
	if !ok {
		return NaN, &LiteralError{Text: s}
	}
	if !mixed {
		return FromRatio(sign*num, den), nil
	}
	if whole == 0 {
		num *= sign
	} else {
		whole *= sign
	}
	return FromMixed(whole, num, den), nil
}

// atoi32 parses a bare run of decimal digits that fits in an int32. Unlike
// strconv, it rejects signs, so literal parts cannot smuggle in their own.
func atoi32(s string) (int32, bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// CmpError indicates a comparison with no defined order: any comparison
// involving NaN, or between infinities of the same sign.
type CmpError struct {
	// X and Y are the operands of the failed comparison.
	X, Y Rational
}

func (err *CmpError) Error() string {
	return "cannot compare " + err.X.String() + " with " + err.Y.String()
}

// ConvError indicates a conversion with no defined result, such as an
// integer conversion of NaN or an infinity.
type ConvError struct {
	// X is the value that cannot be converted.
	X Rational
	// Target describes the requested representation.
	Target string
}

func (err *ConvError) Error() string {
	return "cannot convert " + err.X.String() + " to " + err.Target
}

// LiteralError indicates text that is not a fraction literal. It
// implements InputError.
type LiteralError struct {
	// Text is the rejected literal.
	Text string
	// Col is the 1-based rune column of the literal in its line, or 0 when
	// the literal was parsed on its own.
	Col int
}

func (err *LiteralError) Error() string {
	if err.Col == 0 {
		return "invalid fraction literal " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, "invalid fraction literal "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Col
}
