package brownian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		corr    Correlation
		dim     int
		wantErr bool
	}{
		{
			name: "exponential decay",
			corr: Correlation{Kind: KindExponential, Beta: 0.1},
			dim:  4,
		},
		{
			name:    "exponential requires positive beta",
			corr:    Correlation{Kind: KindExponential, Beta: 0},
			dim:     4,
			wantErr: true,
		},
		{
			name:    "negative beta",
			corr:    Correlation{Kind: KindExponential, Beta: -0.5},
			dim:     4,
			wantErr: true,
		},
		{
			name: "explicit matrix",
			corr: Correlation{Kind: KindMatrix, Matrix: [][]float64{{1, 0.8}, {0.8, 1}}},
			dim:  2,
		},
		{
			name:    "wrong row count",
			corr:    Correlation{Kind: KindMatrix, Matrix: [][]float64{{1, 0.8}, {0.8, 1}}},
			dim:     3,
			wantErr: true,
		},
		{
			name:    "ragged row",
			corr:    Correlation{Kind: KindMatrix, Matrix: [][]float64{{1, 0.8}, {0.8}}},
			dim:     2,
			wantErr: true,
		},
		{
			name:    "non-unit diagonal",
			corr:    Correlation{Kind: KindMatrix, Matrix: [][]float64{{0.9, 0.8}, {0.8, 1}}},
			dim:     2,
			wantErr: true,
		},
		{
			name:    "asymmetric",
			corr:    Correlation{Kind: KindMatrix, Matrix: [][]float64{{1, 0.8}, {0.2, 1}}},
			dim:     2,
			wantErr: true,
		},
		{
			name:    "entry outside [-1,1]",
			corr:    Correlation{Kind: KindMatrix, Matrix: [][]float64{{1, 1.2}, {1.2, 1}}},
			dim:     2,
			wantErr: true,
		},
		{
			name:    "unknown kind",
			corr:    Correlation{Kind: "cholesky"},
			dim:     2,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.corr.Validate(tt.dim)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCorrelation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewDriver_RejectsNonPositiveDefiniteMatrix(t *testing.T) {
	// Symmetric with unit diagonal but indefinite: the quadratic form at
	// (1, -1, 1) is negative.
	corr := Correlation{
		Kind: KindMatrix,
		Matrix: [][]float64{
			{1, 0.9, -0.9},
			{0.9, 1, 0.9},
			{-0.9, 0.9, 1},
		},
	}
	_, err := NewDriver(3, corr)
	assert.ErrorIs(t, err, ErrInvalidCorrelation)
}

func TestNewDriver_RejectsBadDimension(t *testing.T) {
	_, err := NewDriver(0, Correlation{Kind: KindExponential, Beta: 0.1})
	assert.ErrorIs(t, err, ErrInvalidCorrelation)
}
