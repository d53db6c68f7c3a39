package render

import (
	"fmt"
	"os"

	plt "github.com/phil-mansfield/pyplot"
)

// writePyplot generates a matplotlib script for fig and runs it. python and
// matplotlib need to be installed.
func writePyplot(fname string, fig *figure) error {
	pxs := make([]float64, len(fig.points))
	pys := make([]float64, len(fig.points))
	for i, pt := range fig.points { pxs[i], pys[i] = pt.X, pt.Y }

	// A file left over from an earlier run would hide a failed script.
	if err := os.Remove(fname); err != nil && !os.IsNotExist(err) {
		return err
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(fig.curveXs, fig.curveYs, "b", plt.LW(2))
	plt.Plot(pxs, pys, "ok")
	plt.Plot([]float64{fig.q}, []float64{fig.value}, "xr", plt.LW(3))

	plt.Title(fig.title)
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$f(x)$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)

	plt.Execute()
	return checkWritten(fname)
}

// checkWritten returns an error unless fname exists and is non-empty.
// plt.Execute reports script failures only on stdout.
func checkWritten(fname string) error {
	info, err := os.Stat(fname)
	if os.IsNotExist(err) {
		return fmt.Errorf(
			"matplotlib did not write '%s'. Check that python and " +
				"matplotlib are installed.", fname,
		)
	} else if err != nil {
		return err
	} else if info.Size() == 0 {
		return fmt.Errorf("matplotlib wrote an empty file to '%s'.", fname)
	}
	return nil
}
