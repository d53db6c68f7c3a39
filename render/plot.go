/*package render draws the samples, interpolating polynomial and estimate of a
single interpolation.
*/
package render

import (
	"fmt"

	"github.com/phil-mansfield/lagrange/io"
	"github.com/phil-mansfield/lagrange/math/interpolate"
)

// Plot writes a plot of lag and the estimate (q, value) to con.PlotFile in
// the format given by con.PlotFormat.
func Plot(
	con *io.LagrangeConfig, lag *interpolate.Lagrange, q, value float64,
) error {
	xs, ys, err := CurveSamples(lag, q, con.PlotSamples)
	if err != nil { return err }
	fig := &figure{
		title: con.PlotTitle,
		curveXs: xs, curveYs: ys,
		points: lag.Points(),
		q: q, value: value,
	}

	switch con.PlotFormat {
	case "png":
		return writePNG(con.PlotFile, fig)
	case "pyplot":
		return writePyplot(con.PlotFile, fig)
	}
	return fmt.Errorf("Unrecognized plot format '%s'.", con.PlotFormat)
}

type figure struct {
	title string
	curveXs, curveYs []float64
	points []interpolate.Point
	q, value float64
}

// CurveSamples evaluates lag at n uniformly spaced points. The range spans
// every sample and q. n must be at least 2.
func CurveSamples(
	lag *interpolate.Lagrange, q float64, n int,
) (xs, ys []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf(
			"At least 2 curve samples are required, but %d were requested.", n,
		)
	}

	lo, hi := lag.Range()
	if q < lo { lo = q }
	if q > hi { hi = q }
	if lo == hi { lo, hi = lo - 1, hi + 1 }

	xs = linspace(lo, hi, n)
	return xs, lag.EvalAll(xs), nil
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n - 1)
	for i := range xs { xs[i] = lo + dx*float64(i) }
	xs[n-1] = hi
	return xs
}
