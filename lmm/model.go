package lmm

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/lmm-sim/lmm-sim/lmm/brownian"
)

// Driver is the correlated Brownian motion consumed by the model. The
// concrete implementation lives in lmm/brownian; tests substitute stubs that
// force realized values.
type Driver interface {
	// Dim returns the number of correlated components.
	Dim() int
	// Reset returns the path to time 0 with zero realized values.
	Reset()
	// Advance moves the path to time u, consuming randomness from src.
	// Meaningful only for non-decreasing u between resets.
	Advance(u float64, src brownian.NormalSource) error
	// Values returns a snapshot of the realized component values at the
	// current path time.
	Values() []float64
}

// Model samples a forward curve at arbitrary future times under the LIBOR
// Market Model. It holds the static term structure — reset times t, futures
// quotes phi, and at-the-money caplet vols sigma, index j covering the
// interval (t[j-1], t[j]] with t[-1] = 0 — and owns one Brownian driver.
//
// Index 0 is the already-fixed cash rate: phi[0] is known today and
// sigma[0] == 0.
//
// Not safe for concurrent use: Advance and Reset mutate the owned driver, so
// one Model instance serves one logical path at a time. Run concurrent paths
// with one Model per worker.
type Model struct {
	t      []float64
	phi    []float64
	sigma  []float64
	driver Driver
}

// NewModel builds a model from market data, constructing and owning a
// correlated Brownian driver parameterized by corr. The three sequences are
// copied; the caller may reuse its slices.
func NewModel(times, futures, vols []float64, corr brownian.Correlation) (*Model, error) {
	if err := validateTermStructure(times, futures, vols); err != nil {
		return nil, err
	}
	drv, err := brownian.NewDriver(len(times), corr)
	if err != nil {
		return nil, err
	}
	return newModel(times, futures, vols, drv), nil
}

// NewModelWithDriver is NewModel with an externally constructed driver. The
// driver must span at least len(times) components and is owned by the model
// from this point on.
func NewModelWithDriver(times, futures, vols []float64, drv Driver) (*Model, error) {
	if err := validateTermStructure(times, futures, vols); err != nil {
		return nil, err
	}
	if drv.Dim() < len(times) {
		return nil, fmt.Errorf("%w: driver spans %d components, need %d", ErrInvalidTermStructure, drv.Dim(), len(times))
	}
	return newModel(times, futures, vols, drv), nil
}

func newModel(times, futures, vols []float64, drv Driver) *Model {
	m := &Model{
		t:      make([]float64, len(times)),
		phi:    make([]float64, len(futures)),
		sigma:  make([]float64, len(vols)),
		driver: drv,
	}
	copy(m.t, times)
	copy(m.phi, futures)
	copy(m.sigma, vols)
	return m
}

func validateTermStructure(times, futures, vols []float64) error {
	if len(times) == 0 {
		return fmt.Errorf("%w: empty term structure", ErrInvalidTermStructure)
	}
	if len(futures) != len(times) || len(vols) != len(times) {
		return fmt.Errorf("%w: %d times, %d futures, %d vols", ErrInvalidTermStructure, len(times), len(futures), len(vols))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return fmt.Errorf("%w: times not strictly increasing at index %d", ErrInvalidTermStructure, i)
		}
	}
	if vols[0] != 0 {
		return fmt.Errorf("%w: sigma[0] must be 0 (index 0 is the fixed cash rate), got %f", ErrInvalidTermStructure, vols[0])
	}
	return nil
}

// Size returns the number of tenor points.
func (m *Model) Size() int {
	return len(m.t)
}

// Reset returns the owned driver to time 0 so a fresh path can be walked.
// Term structure and rate parameters are unchanged.
func (m *Model) Reset() {
	m.driver.Reset()
}

// Advance samples the forward curve at time u, writing forward rates into
// out[j..n-1] where j is the first index with t[j] > u, and returns j.
// Indices below j are already fixed and left untouched.
//
// Each still-random tenor k gets the futures quote implied by geometric
// Brownian dynamics,
//
//	Phi_k(u) = phi[k] * exp(sigma[k]*B_k(u) - sigma[k]^2*u/2),
//
// minus the futures-to-forward convexity correction
// sigma[k]^2*(t[k-1]-u)^2/2 for k > 0 (the k-th future settles at t[k-1]).
//
// Fails with ErrOutOfRange when u >= t[n-1] without touching driver state,
// so a failed call does not corrupt the path. Successive calls must use
// non-decreasing u; out must have length at least n.
func (m *Model) Advance(u float64, out []float64, src brownian.NormalSource) (int, error) {
	n := len(m.t)
	j := sort.Search(n, func(i int) bool { return m.t[i] > u })
	if j == n {
		return 0, fmt.Errorf("%w: u=%f, final reset %f", ErrOutOfRange, u, m.t[n-1])
	}
	if len(out) < n {
		return 0, fmt.Errorf("lmm: output buffer has length %d, need %d", len(out), n)
	}

	if err := m.driver.Advance(u, src); err != nil {
		return 0, fmt.Errorf("advancing driver: %w", err)
	}
	b := m.driver.Values()

	for k := j; k < n; k++ {
		f := m.phi[k] * math.Exp(m.sigma[k]*b[k]-m.sigma[k]*m.sigma[k]*u/2)
		if k > 0 {
			dt := m.t[k-1] - u // k-th future settles at t[k-1]
			f -= m.sigma[k] * m.sigma[k] * dt * dt / 2
		}
		out[k] = f
	}

	logrus.Debugf("[advance u=%.6f] first random tenor j=%d of %d", u, j, n)
	return j, nil
}
