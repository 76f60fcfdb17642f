// Package metric provides pluggable distance functions over coordinate vectors.
//
// What
//
//   - Metric: a stateless interface mapping two equal-length coordinate
//     vectors to a non-negative real number.
//   - Euclidean (L2), Manhattan (L1) and Chebyshev (L∞) reference
//     implementations.
//   - Func: an adapter that turns any plain function into a Metric.
//
// Why
//
//   - The Vietoris–Rips edge rule (neighborhood package) only ever calls the
//     metric; it never branches on which metric it is. Swapping the metric
//     changes the geometry of the complex without touching any topology code.
//
// Contract
//
//	Implementations are assumed symmetric, non-negative, and zero iff the
//	arguments are equal. These axioms are not checked: supplying a
//	non-metric produces a well-defined graph but no geometric guarantees.
//	Both arguments must have the same length; callers (the neighborhood
//	builder) validate that before invoking the metric.
//
// Complexity
//
//   - All built-in metrics: O(d) time, O(1) memory, d = vector length.
package metric
