package k3piplot

import (
	"image/color"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Canvas size shared by all saved plots.
const (
	CanvasWidth  = 6 * vg.Inch
	CanvasHeight = 4 * vg.Inch
)

// NewPlot returns a plot with the package's tick style on both axes.
func NewPlot(title, xLabel, yLabel string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	return p, nil
}

// LineColor returns the line color used for the i-th overlaid histogram.
func LineColor(i int) color.RGBA {
	switch i {
	case 1:
		return color.RGBA{G: 255, A: 255}
	case 2:
		return color.RGBA{B: 255, A: 255}
	case 3:
		return color.RGBA{R: 255, B: 127, G: 127, A: 255}
	}
	return color.RGBA{A: 255}
}

// DrawH1D draws a single histogram with a stats summary and saves it.
func DrawH1D(hist *hbook.H1D, title, xLabel, path string) error {
	p, err := NewPlot(title, xLabel, "")
	if err != nil {
		return err
	}

	h := hplot.NewH1D(hist)
	h.FillColor = nil
	h.LineStyle.Color = LineColor(0)
	h.LineStyle.Width = vg.Points(2)
	h.Infos.Style = hplot.HInfoSummary
	p.Add(h)

	return p.Save(CanvasWidth, CanvasHeight, path)
}

// DrawSuperimposed draws two histograms on a shared canvas with a legend
// and saves the comparison.
func DrawSuperimposed(h1 *hbook.H1D, label1 string, h2 *hbook.H1D, label2 string, title, path string) error {
	p, err := NewPlot(title, "", "")
	if err != nil {
		return err
	}

	colors := []color.RGBA{
		{B: 255, A: 255},
		{R: 255, A: 255},
	}
	labels := []string{label1, label2}
	for i, hist := range []*hbook.H1D{h1, h2} {
		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = colors[i]
		h.LineStyle.Width = vg.Points(2)
		h.Infos.Style = hplot.HInfoNone
		p.Add(h)
		p.Legend.Add(labels[i], thumbLine(h.LineStyle))
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return p.Save(CanvasWidth, CanvasHeight, path)
}

// SameBinning returns the binning of h, so that derived histograms can
// share its range.
func SameBinning(h *hbook.H1D) (n int, xmin, xmax float64) {
	return h.Len(), h.XMin(), h.XMax()
}

func thumbLine(sty draw.LineStyle) plot.Thumbnailer {
	return &plotter.Line{LineStyle: sty}
}
