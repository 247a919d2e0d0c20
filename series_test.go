package main

import (
	"errors"
	"strings"
	"testing"
)

func testDataset(t *testing.T, csv string) *Dataset {
	t.Helper()
	ds, err := processCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("processCSV: %v", err)
	}
	return ds
}

func unitSelection(x string, ys ...string) Selection {
	sel := Selection{XField: x, XScale: ScaleNone, YFields: ys, Scales: map[string]ScaleFactor{}}
	for _, y := range ys {
		sel.Scales[y] = ScaleNone
	}
	return sel
}

func TestBuildSeriesRoundTrip(t *testing.T) {
	ds := testDataset(t, "x,y\n1,10\n2,20\n3,30\n")
	series, err := BuildSeries(ds, unitSelection("x", "y"))
	if err != nil {
		t.Fatalf("BuildSeries: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("got %d series, want 1", len(series))
	}
	s := series[0]
	if s.Label != "y" {
		t.Fatalf("factor 1 label = %q, want field name", s.Label)
	}
	want := []Point{{1, 10}, {2, 20}, {3, 30}}
	if len(s.Points) != len(want) {
		t.Fatalf("got %d points, want %d", len(s.Points), len(want))
	}
	for i, p := range s.Points {
		if p != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestBuildSeriesSkipsRowsPerSeries(t *testing.T) {
	ds := testDataset(t, "x,y,z\n1,a,3\n2,5,4\n")
	series, err := BuildSeries(ds, unitSelection("x", "y", "z"))
	if err != nil {
		t.Fatalf("BuildSeries: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("got %d series, want 2", len(series))
	}
	// The text cell drops row 0 from y's series only.
	if len(series[0].Points) != 1 || series[0].Points[0] != (Point{2, 5}) {
		t.Errorf("series y = %+v, want exactly (2,5)", series[0].Points)
	}
	if len(series[1].Points) != 2 {
		t.Errorf("series z lost rows it should keep: %+v", series[1].Points)
	}
}

func TestBuildSeriesNonNumericXDropsRow(t *testing.T) {
	ds := testDataset(t, "x,y\nnope,10\n2,20\n")
	series, err := BuildSeries(ds, unitSelection("x", "y"))
	if err != nil {
		t.Fatalf("BuildSeries: %v", err)
	}
	if len(series[0].Points) != 1 || series[0].Points[0] != (Point{2, 20}) {
		t.Fatalf("non-numeric X should drop the row: %+v", series[0].Points)
	}
}

func TestBuildSeriesNoXField(t *testing.T) {
	ds := testDataset(t, "x,y\n1,2\n")
	_, err := BuildSeries(ds, unitSelection("", "y"))
	if !errors.Is(err, ErrNoXAxis) {
		t.Fatalf("err = %v, want ErrNoXAxis", err)
	}
}

func TestBuildSeriesUnknownFields(t *testing.T) {
	ds := testDataset(t, "x,y\n1,2\n")
	if _, err := BuildSeries(ds, unitSelection("ghost", "y")); err == nil {
		t.Error("expected error for unknown X field")
	}
	if _, err := BuildSeries(ds, unitSelection("x", "ghost")); err == nil {
		t.Error("expected error for unknown Y field")
	}
}

func TestBuildSeriesAppliesFactors(t *testing.T) {
	ds := testDataset(t, "x,y\n10,200\n20,400\n")
	sel := Selection{
		XField:  "x",
		XScale:  Scale10th,
		YFields: []string{"y"},
		Scales:  map[string]ScaleFactor{"y": Scale100th},
	}
	series, err := BuildSeries(ds, sel)
	if err != nil {
		t.Fatalf("BuildSeries: %v", err)
	}
	s := series[0]
	if s.Label != "y / 100" {
		t.Errorf("label = %q, want %q", s.Label, "y / 100")
	}
	want := []Point{{1, 2}, {2, 4}}
	for i, p := range s.Points {
		if p != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestBuildSeriesRaggedRows(t *testing.T) {
	ds := testDataset(t, "x,y\n1\n2,20\n")
	series, err := BuildSeries(ds, unitSelection("x", "y"))
	if err != nil {
		t.Fatalf("BuildSeries: %v", err)
	}
	if len(series[0].Points) != 1 {
		t.Fatalf("short row should be skipped, got %+v", series[0].Points)
	}
}
