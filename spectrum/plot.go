package spectrum

import (
	"fmt"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"image/color"
	"strconv"
)

// SavePlot writes the histogram of s as a bar chart. The image format is chosen
// by the extension of file (.png, .pdf, .svg, ...).
func SavePlot(s Spectrum, file string) error {
	if len(s.Histogram) < 2 {
		return ErrEmptySpectrum
	}

	values := make(plotter.Values, len(s.Histogram)-1)
	labels := make([]string, len(values))
	for i := range values {
		values[i] = float64(s.Histogram[i+1])
		labels[i] = strconv.Itoa(i + 1)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 50, G: 90, B: 170, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	pl := plot.New()
	pl.Add(bars)
	pl.NominalX(labels...)
	pl.Title.Text = fmt.Sprintf("%d-mer spectrum (%d windows, %d distinct)", s.K, s.Windows, s.Distinct)
	pl.Title.TextStyle.Font.Size = 14
	pl.X.Label.Text = "Occurrences"
	pl.Y.Label.Text = "Distinct canonical k-mers"

	return pl.Save(20*vg.Centimeter, 12*vg.Centimeter, file)
}
