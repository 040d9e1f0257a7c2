package fractions

import (
	"math"
	"strconv"
)

// FromFloat64 returns a Rational within delta of v. It walks the
// convergents of the continued fraction of v and takes the first one close
// enough, so the result tends to have far smaller components than the
// exact binary expansion of v would give: FromFloat64(0.333, 1e-3) is 1/3.
//
// NaN, the infinities, and zeroes map to their Rational counterparts
// exactly. If no fraction with 32-bit components lies within delta of v,
// FromFloat64 returns an *ApproxError. It panics if delta is not a
// positive number.
func FromFloat64(v, delta float64) (Rational, error) {
	if math.IsNaN(delta) || delta <= 0 {
		panic("fractions: FromFloat64 with non-positive delta " + strconv.FormatFloat(delta, 'g', -1, 64))
	}
	switch {
	case math.IsNaN(v):
		return NaN, nil
	case math.IsInf(v, 1):
		return PosInf, nil
	case math.IsInf(v, -1):
		return NegInf, nil
	case v == 0:
		return Zero, nil
	}
	x := math.Abs(v)
	// Convergents h/k of the continued fraction of x, accumulated in 64
	// bits: h = a*h1 + h2, k = a*k1 + k2. A float64 runs out of terms long
	// before the iteration cap.
	var (
		h1, h2 = int64(1), int64(0)
		k1, k2 = int64(0), int64(1)
	)
	for i := 0; i < 64; i++ {
		a := math.Floor(x)
		if a > math.MaxInt32 {
			break
		}
		h := int64(a)*h1 + h2
		k := int64(a)*k1 + k2
		if h > math.MaxInt32 || k > math.MaxInt32 {
			break
		}
		if math.Abs(float64(h)/float64(k)-math.Abs(v)) < delta {
			if v < 0 {
				h = -h
			}
			return reduce(h, k), nil
		}
		h1, h2 = h, h1
		k1, k2 = k, k1
		x -= a
		if x == 0 {
			break
		}
		x = 1 / x
	}
	return NaN, &ApproxError{V: v, Delta: delta}
}

// ApproxError indicates that no fraction with 32-bit components lies
// within Delta of V.
type ApproxError struct {
	V, Delta float64
}

func (err *ApproxError) Error() string {
	return "no fraction within " + strconv.FormatFloat(err.Delta, 'g', -1, 64) + " of " + strconv.FormatFloat(err.V, 'g', -1, 64)
}
