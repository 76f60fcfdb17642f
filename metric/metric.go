package metric

import "math"

// Metric measures the distance between two coordinate vectors of equal length.
// Implementations must be stateless and are assumed to satisfy the metric
// axioms (symmetry, non-negativity, zero iff equal); none of that is checked.
type Metric interface {
	Distance(a, b []float64) float64
}

// Func adapts a plain function into a Metric.
type Func func(a, b []float64) float64

// Distance calls f.
func (f Func) Distance(a, b []float64) float64 { return f(a, b) }

// Euclidean computes the Euclidean (L2) distance.
type Euclidean struct{}

// Distance returns sqrt(sum((a[i]-b[i])²)).
func (Euclidean) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Manhattan computes the Manhattan (L1 / city-block) distance.
type Manhattan struct{}

// Distance returns sum(|a[i]-b[i]|).
func (Manhattan) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// Chebyshev computes the Chebyshev (L-infinity) distance.
type Chebyshev struct{}

// Distance returns max(|a[i]-b[i]|).
func (Chebyshev) Distance(a, b []float64) float64 {
	var maxVal float64
	for i := range a {
		if v := math.Abs(a[i] - b[i]); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}
