package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lmm-sim/lmm-sim/lmm"
	"github.com/lmm-sim/lmm-sim/lmm/pwflat"
)

var (
	// CLI flags for the simulation run
	marketPath string    // Path to market data YAML (empty = built-in sample market)
	seed       int64     // Master seed; per-path seeds are derived from it
	numPaths   int       // Number of independent paths to walk
	obsTimes   []float64 // Observation times per path (non-decreasing, in years)
	logLevel   string    // Log verbosity level
	extrapRate float64   // Flat forward used beyond the final reset time when discounting
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lmm-sim",
	Short: "Monte Carlo forward-curve sampler for the LIBOR Market Model",
}

// simulateCmd walks forward-curve paths using parameters from CLI flags
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Sample forward curves at the requested observation times",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec, err := loadMarketSpec(marketPath)
		if err != nil {
			logrus.Fatalf("Unable to read market spec: %v", err)
		}
		model, err := spec.Build()
		if err != nil {
			logrus.Fatalf("Invalid market spec: %v", err)
		}
		if len(obsTimes) == 0 {
			logrus.Fatalf("At least one observation time required")
		}

		logrus.Infof("Starting simulation with %d tenors, %d paths, seed=%d, observation times=%v",
			model.Size(), numPaths, seed, obsTimes)
		startTime := time.Now()

		rng := lmm.NewPartitionedRNG(lmm.NewSimulationKey(seed))
		curve := make([]float64, model.Size())

		for p := 0; p < numPaths; p++ {
			model.Reset()
			src := rng.ForPath(p)

			// Indices below the first still-random tenor are left alone by
			// Advance; seed them with today's quotes so every snapshot prints
			// a full curve.
			copy(curve, spec.Futures)

			for _, u := range obsTimes {
				j, err := model.Advance(u, curve, src)
				if err != nil {
					logrus.Fatalf("Path %d: advance to %f failed: %v", p, u, err)
				}
				logrus.Infof("[path %03d] u=%.4f first random tenor=%d curve=%v", p, u, j, curve)
			}

			// Discount factors implied by the final snapshot, per the
			// piecewise-flat curve convention.
			fc, err := pwflat.New(spec.Times, curve, extrapRate)
			if err != nil {
				logrus.Fatalf("Path %d: building forward curve: %v", p, err)
			}
			for _, t := range spec.Times {
				logrus.Infof("[path %03d] D(%.4f)=%.8f zero=%.6f", p, t, fc.Discount(t), fc.Spot(t))
			}
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	simulateCmd.Flags().StringVar(&marketPath, "market", "", "Path to market data YAML (default: built-in sample market)")
	simulateCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for path generation")
	simulateCmd.Flags().IntVar(&numPaths, "paths", 1, "Number of independent paths")
	simulateCmd.Flags().Float64SliceVar(&obsTimes, "times", []float64{0.25}, "Comma-separated observation times in years (non-decreasing)")
	simulateCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	simulateCmd.Flags().Float64Var(&extrapRate, "extrap-rate", 0.0, "Flat forward beyond the final reset time when discounting")

	// Attach `simulate` as a subcommand to `root`
	rootCmd.AddCommand(simulateCmd)
}
