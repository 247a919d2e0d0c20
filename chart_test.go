package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildLineChartSeriesCount(t *testing.T) {
	series := []Series{
		{Label: "a", Points: []Point{{1, 2}, {3, 4}}},
		{Label: "b / 10", Points: []Point{{1, 5}}},
	}
	line := buildLineChart("data.csv", series)
	if got := len(line.MultiSeries); got != 2 {
		t.Fatalf("chart has %d series, want 2", got)
	}
}

func TestRenderLineChartContainsLabels(t *testing.T) {
	series := []Series{
		{Label: "rate / 100", Points: []Point{{1, 2}, {2, 3}}},
		{Label: "count", Points: []Point{{1, 7}}},
	}
	var buf bytes.Buffer
	if err := renderLineChart(&buf, "data.csv", series); err != nil {
		t.Fatalf("renderLineChart: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"rate / 100", "count", "data.csv", "echarts"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered chart is missing %q", want)
		}
	}
}
