// export.go
package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// exportFilename builds "{base}-{timestamp}.png", base being the dataset
// name without extension and the timestamp RFC 3339 with ':' and '.'
// replaced so the name stays filesystem-safe.
func exportFilename(datasetName string, now time.Time) string {
	base := strings.TrimSuffix(datasetName, filepath.Ext(datasetName))
	if base == "" {
		base = "chart"
	}
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(now.Format(time.RFC3339))
	return fmt.Sprintf("%s-%s.png", base, stamp)
}

// renderPNG draws the series with go-chart for the download. This is the
// raster counterpart of the interactive view; pointless (empty) series are
// skipped rather than failing the whole export.
func renderPNG(series []Series) ([]byte, error) {
	ch := chart.Chart{
		Width:  1024,
		Height: 576,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
	}
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
		})
	}
	if len(ch.Series) == 0 {
		return nil, fmt.Errorf("no plottable series")
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
