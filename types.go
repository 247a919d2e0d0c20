// types.go
package main

import (
	"math"
	"time"
)

// Cell is one parsed value: numeric when its raw text parses cleanly as a
// float, text otherwise. Typing is per cell, never per column, so a column
// mixing numbers and text keeps each cell's own reading.
type Cell struct {
	Raw     string
	Num     float64
	Numeric bool
}

// Dataset is the in-memory table parsed from the last upload. Field names
// come from the header row; later rows are not validated against them.
type Dataset struct {
	Name       string
	Fields     []string
	Rows       [][]Cell
	UploadTime time.Time
	FileSize   int64
}

func (d *Dataset) fieldIndex(name string) int {
	for i, f := range d.Fields {
		if f == name {
			return i
		}
	}
	return -1
}

// MaxAbs returns the largest absolute value among the field's numeric
// cells, 0 when the field has none.
func (d *Dataset) MaxAbs(field string) float64 {
	col := d.fieldIndex(field)
	if col < 0 {
		return 0
	}
	maxAbs := 0.0
	for _, row := range d.Rows {
		if col >= len(row) || !row[col].Numeric {
			continue
		}
		if a := math.Abs(row[col].Num); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}

// Selection is the user's current axis choice: one X field (empty string
// means none chosen yet), the Y fields in display order, and a scale
// factor per field.
type Selection struct {
	XField  string
	XScale  ScaleFactor
	YFields []string
	Scales  map[string]ScaleFactor
}

func (s Selection) scaleFor(field string) ScaleFactor {
	if f, ok := s.Scales[field]; ok {
		return f
	}
	return ScaleNone
}

type Point struct {
	X float64
	Y float64
}

// Series is one plotted line: its display label and the scaled points, in
// dataset row order. Series are derived on Generate and never stored past
// the next rebuild or upload.
type Series struct {
	Label  string
	Points []Point
}

type UploadPage struct {
	Error string
}

type FieldsPage struct {
	FileName  string
	FileSize  int64
	RowCount  int
	Summaries []FieldSummary
	Selection Selection
	Factors   []ScaleFactor
	HasSeries bool
	Error     string
}

type ChartPage struct {
	FileName string
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
