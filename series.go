// series.go
package main

import (
	"errors"
	"fmt"
)

// ErrNoXAxis is returned when series are requested before an X axis field
// has been chosen.
var ErrNoXAxis = errors.New("no X axis field selected")

// BuildSeries derives one Series per selected Y field, in selection order.
// A row contributes a point only when both its X and Y cells are numeric;
// rows are dropped per series, so series over the same dataset may end up
// with different lengths. Points carry the scale factors already applied.
func BuildSeries(ds *Dataset, sel Selection) ([]Series, error) {
	if sel.XField == "" {
		return nil, ErrNoXAxis
	}
	xi := ds.fieldIndex(sel.XField)
	if xi < 0 {
		return nil, fmt.Errorf("unknown X field %q", sel.XField)
	}
	series := make([]Series, 0, len(sel.YFields))
	for _, field := range sel.YFields {
		yi := ds.fieldIndex(field)
		if yi < 0 {
			return nil, fmt.Errorf("unknown Y field %q", field)
		}
		yScale := sel.scaleFor(field)
		s := Series{Label: field + yScale.Suffix()}
		for _, row := range ds.Rows {
			if xi >= len(row) || yi >= len(row) {
				continue
			}
			xc, yc := row[xi], row[yi]
			if !xc.Numeric || !yc.Numeric {
				continue
			}
			s.Points = append(s.Points, Point{
				X: xc.Num * float64(sel.XScale),
				Y: yc.Num * float64(yScale),
			})
		}
		series = append(series, s)
	}
	return series, nil
}
