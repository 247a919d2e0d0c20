// calculations.go
package main

import "math"

// FieldSummary describes the numeric content of one field: how many cells
// parsed as numbers, their spread, and the max |value| the scaling
// heuristic keys off. Shown on the selection form so the default factor is
// explainable.
type FieldSummary struct {
	Name    string      `json:"name"`
	Count   int         `json:"count"`
	Min     float64     `json:"min"`
	Max     float64     `json:"max"`
	Mean    float64     `json:"mean"`
	MaxAbs  float64     `json:"maxAbs"`
	Default ScaleFactor `json:"defaultScale"`
}

func summarizeFields(ds *Dataset) []FieldSummary {
	out := make([]FieldSummary, len(ds.Fields))
	for i, name := range ds.Fields {
		out[i] = summarizeField(ds, i, name)
	}
	return out
}

func summarizeField(ds *Dataset, col int, name string) FieldSummary {
	sum := FieldSummary{Name: name}
	total := 0.0
	for _, row := range ds.Rows {
		if col >= len(row) || !row[col].Numeric {
			continue
		}
		v := row[col].Num
		if sum.Count == 0 {
			sum.Min, sum.Max = v, v
		} else {
			if v < sum.Min {
				sum.Min = v
			}
			if v > sum.Max {
				sum.Max = v
			}
		}
		if a := math.Abs(v); a > sum.MaxAbs {
			sum.MaxAbs = a
		}
		total += v
		sum.Count++
	}
	if sum.Count > 0 {
		sum.Mean = total / float64(sum.Count)
	}
	sum.Default = DefaultScale(sum.MaxAbs, name)
	return sum
}
