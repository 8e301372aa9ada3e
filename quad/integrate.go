package quad

import (
	"fmt"
	"runtime"
	"sync"
)

// Integrate approximates the definite integral of f over [a, b] by
// partitioning the interval into n equal-width sub-intervals and summing the
// rule estimate of each. The partition uses n+1 equally spaced break points;
// the rule is invoked once per adjacent pair.
//
// The result carries no error bound: it is a fixed-order, fixed-partition
// estimator. Swapping a and b negates the result, since every rule scales by
// the signed width (b-a).
func Integrate(f Func, a, b float64, n int, rule Rule) (float64, error) {

	if n < 1 {
		return 0, fmt.Errorf("cannot Integrate: n must be at least 1 but is %d: %w", n, ErrInvalidArgument)
	}

	h := (b - a) / float64(n)

	var sum float64
	for i := 0; i < n; i++ {
		sum += rule(f, a+float64(i)*h, a+float64(i+1)*h)
	}

	return sum, nil
}

// IntegrateParallel is Integrate with the sub-interval evaluations spread
// over up to runtime.NumCPU() goroutines. Each worker strides over its own
// subset of the partition and the per-worker sums are added in worker order,
// so the result is deterministic for a deterministic f. It may still differ
// from Integrate in the least-significant bits, as floating-point summation
// order changes.
//
// f and rule must be safe for concurrent use; pure functions are.
func IntegrateParallel(f Func, a, b float64, n int, rule Rule) (float64, error) {

	if n < 1 {
		return 0, fmt.Errorf("cannot IntegrateParallel: n must be at least 1 but is %d: %w", n, ErrInvalidArgument)
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}

	h := (b - a) / float64(n)

	partial := make([]float64, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			var sum float64
			for i := w; i < n; i += workers {
				sum += rule(f, a+float64(i)*h, a+float64(i+1)*h)
			}
			partial[w] = sum
		}(w)
	}
	wg.Wait()

	var sum float64
	for _, p := range partial {
		sum += p
	}

	return sum, nil
}
