package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMarketSpec_IsConstructible(t *testing.T) {
	spec := defaultMarketSpec()
	require.NoError(t, spec.Validate())

	model, err := spec.Build()
	require.NoError(t, err)
	assert.Equal(t, len(spec.Times), model.Size())
}

func TestLoadMarketSpec_EmptyPathFallsBack(t *testing.T) {
	spec, err := loadMarketSpec("")
	require.NoError(t, err)
	assert.Equal(t, defaultMarketSpec(), spec)
}

func TestLoadMarketSpec_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
times: [0.5, 1.0]
futures: [0.05, 0.051]
vols: [0.0, 0.2]
correlation:
  kind: exponential
  beta: 0.2
`), 0o644))

	spec, err := loadMarketSpec(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.0}, spec.Times)
}
