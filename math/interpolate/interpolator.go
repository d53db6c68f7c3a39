/*package interpolate implements polynomial interpolation through a set of
sample points.
*/
package interpolate

// Interpolator is a 1D interpolator. Implementations hold no mutable state
// after construction, so they may be shared between goroutines.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Lagrange{}
)
