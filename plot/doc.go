// Package plot renders scatter charts of paired observations with their
// fitted regression line, as self-contained HTML pages.
//
//	var out bytes.Buffer
//	err := plot.RenderHTML(&out, "sales vs spend", knownY, knownX)
package plot
