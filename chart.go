// chart.go
package main

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// buildLineChart assembles the interactive ECharts view of the series.
// Both axes are value-typed, so every point carries its own (x, y) pair
// instead of sharing a category axis; series of different lengths plot
// independently.
func buildLineChart(title string, series []Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "28",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "6%",
			Right:  "4%",
			Bottom: "14%",
			Top:    "70",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "92vh",
		}),
	)
	for _, s := range series {
		data := make([]opts.LineData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.LineData{Value: []interface{}{p.X, p.Y}}
		}
		line.AddSeries(s.Label, data,
			charts.WithLineChartOpts(opts.LineChart{
				ShowSymbol: opts.Bool(true),
			}),
		)
	}
	return line
}

func renderLineChart(w io.Writer, title string, series []Series) error {
	return buildLineChart(title, series).Render(w)
}
