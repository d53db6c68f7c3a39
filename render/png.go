package render

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	curveColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	estimateColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

func writePNG(fname string, fig *figure) error {
	p := plot.New()
	p.Title.Text = fig.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	curveXYs := make(plotter.XYs, len(fig.curveXs))
	for i := range curveXYs {
		curveXYs[i].X, curveXYs[i].Y = fig.curveXs[i], fig.curveYs[i]
	}
	curve, err := plotter.NewLine(curveXYs)
	if err != nil { return err }
	curve.LineStyle.Width = vg.Points(2)
	curve.LineStyle.Color = curveColor

	pointXYs := make(plotter.XYs, len(fig.points))
	for i, pt := range fig.points {
		pointXYs[i].X, pointXYs[i].Y = pt.X, pt.Y
	}
	points, err := plotter.NewScatter(pointXYs)
	if err != nil { return err }
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)

	est, err := plotter.NewScatter(plotter.XYs{{X: fig.q, Y: fig.value}})
	if err != nil { return err }
	est.GlyphStyle.Shape = draw.CrossGlyph{}
	est.GlyphStyle.Radius = vg.Points(5)
	est.GlyphStyle.Color = estimateColor

	p.Add(curve, points, est)
	p.Legend.Add("Polynomial", curve)
	p.Legend.Add("Samples", points)
	p.Legend.Add("Estimate", est)
	p.Legend.Top = true

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil { return err }

	f, err := os.Create(fname)
	if err != nil { return err }
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
