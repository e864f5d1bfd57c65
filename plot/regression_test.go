package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhooksw/sheetstats/stats"
)

func TestRegressionScatter(t *testing.T) {
	t.Parallel()

	chart, err := RegressionScatter("demo", []float64{2, 4, 6}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.NotNil(t, chart)
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := RenderHTML(&out, "demo", []float64{2, 4, 6}, []float64{1, 2, 3})
	require.NoError(t, err)

	html := out.String()
	assert.Contains(t, html, "observed")
	assert.Contains(t, html, "fitted")
	assert.Contains(t, html, "demo")
}

func TestRegressionScatter_Errors(t *testing.T) {
	t.Parallel()

	_, err := RegressionScatter("demo", nil, nil)
	require.ErrorIs(t, err, stats.ErrEmptyInput)

	_, err = RegressionScatter("demo", []float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, stats.ErrLengthMismatch)

	_, err = RegressionScatter("demo", []float64{1, 2, 3}, []float64{5, 5, 5})
	require.ErrorIs(t, err, stats.ErrZeroVariance)
}
