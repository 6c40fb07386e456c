package lmm

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lmm-sim/lmm-sim/lmm/brownian"
)

// MarketSpec is the top-level market data configuration.
// Loaded from YAML via LoadMarketSpec(path).
//
// Index j of the parallel sequences covers the interval (times[j-1],
// times[j]] with an implicit times[-1] = 0; index 0 is the current cash rate
// and must carry zero volatility.
type MarketSpec struct {
	Times       []float64            `yaml:"times"`
	Futures     []float64            `yaml:"futures"`
	Vols        []float64            `yaml:"vols"`
	Correlation brownian.Correlation `yaml:"correlation"`
}

// LoadMarketSpec reads and parses a market spec from a YAML file. Unknown
// fields are rejected.
func LoadMarketSpec(path string) (*MarketSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading market spec: %w", err)
	}
	var spec MarketSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing market spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that the spec describes a constructible model: the same
// term-structure preconditions NewModel enforces plus the correlation
// specification. Surfacing these before simulation keeps config mistakes out
// of the path loop.
func (s *MarketSpec) Validate() error {
	if err := validateTermStructure(s.Times, s.Futures, s.Vols); err != nil {
		return err
	}
	return s.Correlation.Validate(len(s.Times))
}

// Build validates the spec and constructs the model it describes.
func (s *MarketSpec) Build() (*Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return NewModel(s.Times, s.Futures, s.Vols, s.Correlation)
}
