package interpolate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Point is a single known sample of the interpolated function.
type Point struct {
	X, Y float64
}

// TraceRow records the intermediate quantities computed for the sample with
// index K during a call to Evaluate.
type TraceRow struct {
	K int
	X, Y float64
	// Basis is L_K evaluated at the query point.
	Basis float64
	// Term is Y * Basis.
	Term float64
	// PartialSum is the sum of Term over rows 0 through K.
	PartialSum float64
}

// Result is the output of Evaluate.
type Result struct {
	Value float64
	Trace []TraceRow
}

// Evaluate computes the value of the interpolating polynomial through points
// at q, along with a trace of every basis value and weighted term.
//
// The points must be non-empty with finite, pairwise distinct x values;
// otherwise ErrNoPoints, a *NonFiniteError, or a *DegenerateInputError is
// returned. points is not modified.
func Evaluate(points []Point, q float64) (*Result, error) {
	if err := CheckPoints(points); err != nil {
		return nil, err
	}

	res := &Result{ Trace: make([]TraceRow, len(points)) }
	sum := 0.0
	for k, p := range points {
		lk := basis(points, k, q)
		term := p.Y * lk
		sum += term

		res.Trace[k] = TraceRow{
			K: k, X: p.X, Y: p.Y,
			Basis: lk, Term: term, PartialSum: sum,
		}
	}
	res.Value = sum

	return res, nil
}

// CheckPoints returns an error if points cannot be interpolated.
func CheckPoints(points []Point) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
			return &NonFiniteError{ I: i, X: p.X }
		}
	}

	// Sorting the indices keeps the reported pair in terms of the caller's
	// ordering.
	idxs := make([]int, len(points))
	for i := range idxs { idxs[i] = i }
	sort.SliceStable(idxs, func(a, b int) bool {
		return points[idxs[a]].X < points[idxs[b]].X
	})

	for n := 1; n < len(idxs); n++ {
		i, j := idxs[n-1], idxs[n]
		if points[i].X == points[j].X {
			if j < i { i, j = j, i }
			return &DegenerateInputError{ I: i, J: j, X: points[i].X }
		}
	}

	return nil
}

// basis returns L_k(x), the product over j != k of
// (x - x[j]) / (x[k] - x[j]).
func basis(points []Point, k int, x float64) float64 {
	lk := 1.0
	xk := points[k].X
	for j := range points {
		if j == k { continue }
		lk *= (x - points[j].X) / (xk - points[j].X)
	}
	return lk
}

// Lagrange is the interpolating polynomial through a fixed set of samples.
type Lagrange struct {
	points []Point
	xs []float64
}

// NewLagrange creates an interpolator through points. The points are copied,
// so the caller may reuse the slice. The same validation as Evaluate is
// performed.
func NewLagrange(points []Point) (*Lagrange, error) {
	if err := CheckPoints(points); err != nil {
		return nil, err
	}

	lag := &Lagrange{
		points: make([]Point, len(points)),
		xs: make([]float64, len(points)),
	}
	copy(lag.points, points)
	for i, p := range points { lag.xs[i] = p.X }

	return lag, nil
}

// Eval returns the interpolated value at x.
func (lag *Lagrange) Eval(x float64) float64 {
	sum := 0.0
	for k, p := range lag.points {
		sum += p.Y * basis(lag.points, k, x)
	}
	return sum
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lag *Lagrange) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 { out = [][]float64{ make([]float64, len(xs)) } }
	for i, x := range xs { out[0][i] = lag.Eval(x) }
	return out[0]
}

// Basis returns the k-th Lagrange basis polynomial evaluated at x.
func (lag *Lagrange) Basis(k int, x float64) float64 {
	return basis(lag.points, k, x)
}

// Points returns a copy of the samples the interpolator passes through.
func (lag *Lagrange) Points() []Point {
	out := make([]Point, len(lag.points))
	copy(out, lag.points)
	return out
}

// Range returns the smallest and largest sample x values.
func (lag *Lagrange) Range() (min, max float64) {
	return floats.Min(lag.xs), floats.Max(lag.xs)
}
