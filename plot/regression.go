package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/redhooksw/sheetstats/stats"
)

// RegressionScatter builds a scatter chart of the (x, y) observations with
// the fitted regression line overlaid. A constant knownX reports
// ErrZeroVariance; empty or mismatched sequences fail as the stats functions
// do.
func RegressionScatter(name string, knownY, knownX []float64) (*charts.Scatter, error) {
	varx, err := stats.VarP(knownX)
	if err != nil {
		return nil, err
	}
	if varx == 0 {
		return nil, fmt.Errorf("%w: variance of knownX", stats.ErrZeroVariance)
	}

	b, err := stats.Slope(knownY, knownX)
	if err != nil {
		return nil, err
	}
	a, err := stats.Intercept(knownY, knownX)
	if err != nil {
		return nil, err
	}

	points := make([]opts.ScatterData, 0, len(knownX))
	for i := range knownX {
		points = append(points, opts.ScatterData{
			Value:      []interface{}{knownX[i], knownY[i]},
			SymbolSize: 8,
		})
	}

	minX, maxX := knownX[0], knownX[0]
	for _, x := range knownX[1:] {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    name,
			Subtitle: fmt.Sprintf("y = %.4f + %.4fx", a, b),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y"}),
	)
	scatter.AddSeries("observed", points)

	line := charts.NewLine()
	line.AddSeries("fitted", []opts.LineData{
		{Value: []interface{}{minX, a + b*minX}},
		{Value: []interface{}{maxX, a + b*maxX}},
	})
	scatter.Overlap(line)

	return scatter, nil
}

// RenderHTML writes the regression chart for knownY against knownX to w as a
// self-contained HTML page.
func RenderHTML(w io.Writer, name string, knownY, knownX []float64) error {
	chart, err := RegressionScatter(name, knownY, knownX)
	if err != nil {
		return err
	}
	return chart.Render(w)
}
