// Package analysis reports the empirical accuracy of quadrature rules:
// error samples across partition sizes, summary statistics, and the
// observed order of convergence.
package analysis

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/quadrature/quad"
)

// Sample records a composite estimate at a given partition size, together
// with its absolute error against the exact integral value.
type Sample struct {
	N        int
	Estimate float64
	AbsErr   float64
}

// Convergence integrates f over [a, b] with the given rule at each partition
// size in ns and records the estimate and its absolute error against exact.
// For a smooth f the errors shrink as n grows; the rate is the rule's order.
func Convergence(f quad.Func, a, b, exact float64, rule quad.Rule, ns []int) ([]Sample, error) {

	if len(ns) == 0 {
		return nil, fmt.Errorf("cannot measure Convergence: empty partition sizes: %w", quad.ErrInvalidArgument)
	}

	samples := make([]Sample, len(ns))
	for i, n := range ns {
		estimate, err := quad.Integrate(f, a, b, n, rule)
		if err != nil {
			return nil, err
		}
		samples[i] = Sample{N: n, Estimate: estimate, AbsErr: math.Abs(estimate - exact)}
	}

	return samples, nil
}

// Order estimates the empirical order of convergence from successive
// samples: for each adjacent pair it computes
// log(err_i / err_{i+1}) / log(n_{i+1} / n_i) and returns the mean.
// Pairs where either error has already hit zero are skipped.
func Order(samples []Sample) (float64, error) {

	if len(samples) < 2 {
		return 0, fmt.Errorf("cannot estimate Order: need at least two samples but got %d: %w", len(samples), quad.ErrInvalidArgument)
	}

	ratios := make([]float64, 0, len(samples)-1)
	for i := 0; i < len(samples)-1; i++ {
		e0, e1 := samples[i].AbsErr, samples[i+1].AbsErr
		if e0 == 0 || e1 == 0 {
			continue
		}
		ratios = append(ratios, math.Log(e0/e1)/math.Log(float64(samples[i+1].N)/float64(samples[i].N)))
	}

	if len(ratios) == 0 {
		return 0, fmt.Errorf("cannot estimate Order: every sampled error is zero: %w", quad.ErrInvalidArgument)
	}

	return stats.Mean(ratios)
}

// Summary returns the mean and maximum absolute error over samples.
func Summary(samples []Sample) (mean, max float64, err error) {

	errs := make([]float64, len(samples))
	for i := range samples {
		errs[i] = samples[i].AbsErr
	}

	if mean, err = stats.Mean(errs); err != nil {
		return
	}

	max, err = stats.Max(errs)
	return
}
