package seq_modeller

import (
	"bytes"
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const plotBins = 50

// LengthPlotSVG draws the final length distribution of every batch as one
// line per base_id, on bins shared by all batches.
func LengthPlotSVG(r *Result) ([]byte, error) {
	minLen, maxLen := -1, -1
	for _, b := range r.Batches {
		for _, s := range b.Sequences {
			if minLen < 0 || len(s) < minLen {
				minLen = len(s)
			}
			if len(s) > maxLen {
				maxLen = len(s)
			}
		}
	}
	if minLen < 0 {
		return nil, errors.New("no sequences to plot")
	}

	p := plot.New()
	p.Title.Text = "Sequence Length Distribution"
	p.X.Label.Text = "Length"
	p.Y.Label.Text = "Sequence Count"

	binWidth := float64(maxLen-minLen+1) / float64(plotBins)
	for i, b := range r.Batches {
		if len(b.Sequences) == 0 {
			continue
		}
		counts := make([]float64, plotBins)
		for _, s := range b.Sequences {
			bin := int(float64(len(s)-minLen) / binWidth)
			if bin >= plotBins {
				bin = plotBins - 1
			}
			counts[bin]++
		}

		points := make(plotter.XYs, plotBins)
		for j := range points {
			points[j].X = float64(minLen) + binWidth*float64(j) + binWidth/2
			points[j].Y = counts[j]
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(b.BaseID, line)
	}
	p.Legend.Top = true

	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return nil, err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
