// Package brownian implements the correlated Brownian motion that drives the
// joint evolution of forward rates. The driver advances a d-dimensional path
// exactly (one correlated Gaussian increment per step, no discretization
// error) and exposes the realized values as a snapshot.
package brownian

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrTimeOrder indicates an Advance call with a time earlier than the
// driver's current path time. Paths are only defined for non-decreasing
// time sequences between resets.
var ErrTimeOrder = errors.New("brownian: advance time precedes current path time")

// Driver holds one realized path of d correlated standard Brownian motions.
//
// Not safe for concurrent use: Advance and Reset mutate path state, so a
// driver belongs to exactly one logical simulation path at a time.
type Driver struct {
	dim  int
	l    *mat.TriDense // lower Cholesky factor of the correlation matrix
	time float64
	path *mat.VecDense
	z    *mat.VecDense // scratch for uncorrelated draws
	incr *mat.VecDense // scratch for correlated increments
}

// NewDriver creates a driver for dim components parameterized by corr.
func NewDriver(dim int, corr Correlation) (*Driver, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension must be >= 1, got %d", ErrInvalidCorrelation, dim)
	}
	l, err := corr.cholesky(dim)
	if err != nil {
		return nil, err
	}
	return &Driver{
		dim:  dim,
		l:    l,
		path: mat.NewVecDense(dim, nil),
		z:    mat.NewVecDense(dim, nil),
		incr: mat.NewVecDense(dim, nil),
	}, nil
}

// Dim returns the number of correlated components.
func (d *Driver) Dim() int {
	return d.dim
}

// Time returns the current path time.
func (d *Driver) Time() float64 {
	return d.time
}

// Reset returns the driver to time 0 with a zero realized path. The
// correlation structure is unchanged.
func (d *Driver) Reset() {
	d.time = 0
	d.path.Zero()
}

// Advance moves the path from its current time to u, consuming dim draws
// from src when u is strictly later. B(u) = B(prev) + sqrt(u-prev) * L*z
// where z is a vector of independent standard normals, so each step is an
// exact sample of the correlated increment.
func (d *Driver) Advance(u float64, src NormalSource) error {
	if u < d.time {
		return fmt.Errorf("%w: at %f, asked for %f", ErrTimeOrder, d.time, u)
	}
	dt := u - d.time
	if dt > 0 {
		for i := 0; i < d.dim; i++ {
			d.z.SetVec(i, src.Normal())
		}
		d.incr.MulVec(d.l, d.z)
		d.path.AddScaledVec(d.path, math.Sqrt(dt), d.incr)
	}
	d.time = u
	return nil
}

// Values returns a snapshot of the realized component values at the current
// path time. The returned slice is a copy; later Advance or Reset calls do
// not alter it.
func (d *Driver) Values() []float64 {
	out := make([]float64, d.dim)
	copy(out, d.path.RawVector().Data)
	return out
}
