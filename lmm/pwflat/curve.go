// Package pwflat provides a piecewise-flat forward curve. A curve over reset
// times t[0] < ... < t[n-1] takes the value f[j] on the interval
// (t[j-1], t[j]] (with t[-1] = 0) and a fixed extrapolation value past
// t[n-1]. It turns a sampled forward curve into discount factors and zero
// rates.
package pwflat

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidCurve indicates construction inputs that do not describe a
// piecewise-flat curve.
var ErrInvalidCurve = errors.New("pwflat: invalid curve")

// Curve is an immutable piecewise-flat forward curve. Queries are pure and
// safe for concurrent use.
type Curve struct {
	t      []float64
	f      []float64
	extrap float64
}

// New builds a curve from reset times, per-interval forwards, and the flat
// rate used beyond the final reset time. Times must be strictly increasing
// and positive; times and forwards must have equal nonzero length.
func New(times, forwards []float64, extrap float64) (*Curve, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: empty term structure", ErrInvalidCurve)
	}
	if len(times) != len(forwards) {
		return nil, fmt.Errorf("%w: %d times but %d forwards", ErrInvalidCurve, len(times), len(forwards))
	}
	prev := 0.0
	for i, ti := range times {
		if ti <= prev {
			return nil, fmt.Errorf("%w: times must be positive and strictly increasing at index %d", ErrInvalidCurve, i)
		}
		prev = ti
	}
	c := &Curve{
		t:      make([]float64, len(times)),
		f:      make([]float64, len(forwards)),
		extrap: extrap,
	}
	copy(c.t, times)
	copy(c.f, forwards)
	return c, nil
}

// Size returns the number of curve intervals.
func (c *Curve) Size() int {
	return len(c.t)
}

// Value returns the forward rate f(u) for u >= 0.
func (c *Curve) Value(u float64) float64 {
	// first j with t[j] >= u, so u lands in (t[j-1], t[j]]
	j := sort.SearchFloat64s(c.t, u)
	if j == len(c.t) {
		return c.extrap
	}
	return c.f[j]
}

// Integral returns the integral of f(s) ds from 0 to u.
func (c *Curve) Integral(u float64) float64 {
	sum := 0.0
	prev := 0.0
	for j := 0; j < len(c.t); j++ {
		if u <= c.t[j] {
			return sum + c.f[j]*(u-prev)
		}
		sum += c.f[j] * (c.t[j] - prev)
		prev = c.t[j]
	}
	return sum + c.extrap*(u-prev)
}

// Discount returns D(u) = exp(-int_0^u f(s) ds).
func (c *Curve) Discount(u float64) float64 {
	return math.Exp(-c.Integral(u))
}

// Spot returns the continuously compounded zero rate to u, Integral(u)/u.
// At u == 0 it returns the initial forward.
func (c *Curve) Spot(u float64) float64 {
	if u == 0 {
		return c.f[0]
	}
	return c.Integral(u) / u
}
