package brownian

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Correlation kinds accepted by Correlation.Kind.
const (
	// KindMatrix selects an explicit correlation matrix.
	KindMatrix = "matrix"

	// KindExponential selects the one-parameter decay
	// rho[i][j] = exp(-beta*|i-j|) over component index distance.
	KindExponential = "exponential"
)

// ErrInvalidCorrelation indicates a correlation specification that cannot
// parameterize a correlated Brownian motion.
var ErrInvalidCorrelation = errors.New("brownian: invalid correlation specification")

// Correlation specifies the pairwise correlation structure of the driver's
// components. Loaded from YAML as part of the market spec.
type Correlation struct {
	Kind   string      `yaml:"kind"`
	Beta   float64     `yaml:"beta,omitempty"`
	Matrix [][]float64 `yaml:"matrix,omitempty"`
}

// Validate checks the specification against dim components. For KindMatrix
// the matrix must be dim x dim, symmetric, with unit diagonal and entries in
// [-1, 1]. For KindExponential beta must be positive (beta == 0 collapses
// every component onto one driver, which is not positive definite).
func (c *Correlation) Validate(dim int) error {
	switch c.Kind {
	case KindExponential:
		if c.Beta <= 0 {
			return fmt.Errorf("%w: exponential decay requires beta > 0, got %f", ErrInvalidCorrelation, c.Beta)
		}
	case KindMatrix:
		if len(c.Matrix) != dim {
			return fmt.Errorf("%w: matrix has %d rows, need %d", ErrInvalidCorrelation, len(c.Matrix), dim)
		}
		for i, row := range c.Matrix {
			if len(row) != dim {
				return fmt.Errorf("%w: row %d has %d entries, need %d", ErrInvalidCorrelation, i, len(row), dim)
			}
			if row[i] != 1 {
				return fmt.Errorf("%w: diagonal entry [%d][%d] must be 1, got %f", ErrInvalidCorrelation, i, i, row[i])
			}
			for j, v := range row {
				if math.Abs(v) > 1 {
					return fmt.Errorf("%w: entry [%d][%d] = %f outside [-1, 1]", ErrInvalidCorrelation, i, j, v)
				}
				if j < i && c.Matrix[j][i] != v {
					return fmt.Errorf("%w: matrix not symmetric at [%d][%d]", ErrInvalidCorrelation, i, j)
				}
			}
		}
	default:
		return fmt.Errorf("%w: unknown kind %q; valid: matrix, exponential", ErrInvalidCorrelation, c.Kind)
	}
	return nil
}

// cholesky validates the spec and returns the lower-triangular Cholesky
// factor of the dim x dim correlation matrix it describes.
func (c *Correlation) cholesky(dim int) (*mat.TriDense, error) {
	if err := c.Validate(dim); err != nil {
		return nil, err
	}

	rho := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			switch c.Kind {
			case KindExponential:
				rho.SetSym(i, j, math.Exp(-c.Beta*float64(j-i)))
			case KindMatrix:
				rho.SetSym(i, j, c.Matrix[i][j])
			}
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(rho); !ok {
		return nil, fmt.Errorf("%w: matrix is not positive definite", ErrInvalidCorrelation)
	}
	l := mat.NewTriDense(dim, mat.Lower, nil)
	chol.LTo(l)
	return l, nil
}
