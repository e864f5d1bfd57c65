// Package main demonstrates spreadsheet-compatible statistics and linear
// regression over sample data.
package main

import (
	"fmt"
	"os"

	"github.com/redhooksw/sheetstats/plot"
	"github.com/redhooksw/sheetstats/sheet"
	"github.com/redhooksw/sheetstats/stats"
)

func main() {
	// Monthly ad spend (x) and revenue (y), both in thousands. When a CSV
	// path is given, its first two named columns replace the sample data:
	//   demo data.csv x_column y_column
	x := sheet.NewNamed("spend", []float64{1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5})
	y := sheet.NewNamed("revenue", []float64{2.1, 3.4, 3.9, 5.2, 6.0, 7.1, 7.8, 9.3})

	if len(os.Args) == 4 {
		var err error
		if x, err = sheet.LoadCSVColumn(os.Args[1], os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", os.Args[2], err)
			os.Exit(1)
		}
		if y, err = sheet.LoadCSVColumn(os.Args[1], os.Args[3]); err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", os.Args[3], err)
			os.Exit(1)
		}
	}

	fmt.Println("=== Descriptive Statistics ===")
	describe(x)
	describe(y)

	fmt.Println("=== Correlation ===")
	r, err := stats.Correl(y.Values, x.Values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "correl: %v\n", err)
		os.Exit(1)
	}
	r2, _ := stats.RSq(y.Values, x.Values)
	fmt.Printf("  correl(%s, %s) = %.6f\n", y.Name, x.Name, r)
	fmt.Printf("  rsq               = %.6f\n\n", r2)

	fmt.Println("=== Linear Regression ===")
	b, err := stats.Slope(y.Values, x.Values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slope: %v\n", err)
		os.Exit(1)
	}
	a, _ := stats.Intercept(y.Values, x.Values)
	fmt.Printf("  %s = %.4f + %.4f * %s\n", y.Name, a, b, x.Name)

	nextX := x.Max() + 1
	forecast, err := stats.Forecast(nextX, y.Values, x.Values)
	if err != nil {
		fmt.Fprintf(os.Stderr, "forecast: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  forecast at %s=%.2f: %.4f\n\n", x.Name, nextX, forecast)

	out, err := os.Create("regression.html")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create chart: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	title := fmt.Sprintf("%s vs %s", y.Name, x.Name)
	if err := plot.RenderHTML(out, title, y.Values, x.Values); err != nil {
		fmt.Fprintf(os.Stderr, "render chart: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Wrote regression.html")
}

func describe(c *sheet.Column) {
	mean, err := c.Mean()
	if err != nil {
		fmt.Fprintf(os.Stderr, "describe %s: %v\n", c.Name, err)
		os.Exit(1)
	}
	sd, _ := c.StDev()
	sdp, _ := c.StDevP()
	v, _ := c.Var()
	ad, _ := c.AvgDev()

	fmt.Printf("  %s (n=%d)\n", c.Name, c.Len())
	fmt.Printf("    mean=%.4f median=%.4f min=%.4f max=%.4f\n", mean, c.Median(), c.Min(), c.Max())
	fmt.Printf("    var=%.4f stdev=%.4f stdevp=%.4f avgdev=%.4f\n\n", v, sd, sdp, ad)
}
