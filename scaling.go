// scaling.go
package main

import (
	"fmt"
	"strconv"
	"strings"
)

// ScaleFactor is a multiplier applied to a field's raw values before
// plotting. Only the values listed in ScaleFactors are valid.
type ScaleFactor float64

const (
	Scale1000th ScaleFactor = 0.001
	Scale100th  ScaleFactor = 0.01
	Scale10th   ScaleFactor = 0.1
	ScaleNone   ScaleFactor = 1
	Scale10x    ScaleFactor = 10
	Scale100x   ScaleFactor = 100
	Scale1000x  ScaleFactor = 1000
)

// ScaleFactors lists every selectable factor, smallest first.
var ScaleFactors = []ScaleFactor{
	Scale1000th, Scale100th, Scale10th, ScaleNone, Scale10x, Scale100x, Scale1000x,
}

func (f ScaleFactor) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Suffix returns the label decoration for a series scaled by f: nothing at
// factor 1, the divisor for shrinking factors (" / 100" for 0.01) and the
// multiplier for magnifying ones (" x 10" for 10).
func (f ScaleFactor) Suffix() string {
	switch {
	case f == ScaleNone:
		return ""
	case f < ScaleNone:
		return fmt.Sprintf(" / %g", 1/float64(f))
	default:
		return fmt.Sprintf(" x %g", float64(f))
	}
}

// ParseScaleFactor reads a form or config value and rejects anything
// outside the enumerated set.
func ParseScaleFactor(s string) (ScaleFactor, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return ScaleNone, fmt.Errorf("invalid scale factor %q", s)
	}
	return scaleFactorOf(v)
}

func scaleFactorOf(v float64) (ScaleFactor, error) {
	for _, f := range ScaleFactors {
		if ScaleFactor(v) == f {
			return f, nil
		}
	}
	return ScaleNone, fmt.Errorf("scale factor %g not in the allowed set", v)
}

// scaleBucket maps an inclusive lower bound on a field's max |value| to the
// default factor for that magnitude.
type scaleBucket struct {
	AtLeast float64
	Factor  ScaleFactor
}

// defaultScaleBuckets is the built-in magnitude table, largest bound first.
// The intent is that value * factor lands roughly in single-digit display
// range. Overridable from the config file.
var defaultScaleBuckets = []scaleBucket{
	{AtLeast: 1000, Factor: Scale1000th},
	{AtLeast: 100, Factor: Scale100th},
	{AtLeast: 50, Factor: Scale100th},
	{AtLeast: 10, Factor: Scale10th},
}

// scaleBuckets is the active table; loadConfig may replace it.
var scaleBuckets = defaultScaleBuckets

// DefaultScale picks the seed factor for a field from its observed max
// |value| and its name. Percent-like fields always read as hundredths, and
// an all-zero (or non-numeric) field stays at 1.
func DefaultScale(maxAbs float64, fieldName string) ScaleFactor {
	name := strings.ToLower(fieldName)
	if strings.Contains(name, "percent") || strings.Contains(name, "%") {
		return Scale100th
	}
	if maxAbs == 0 {
		return ScaleNone
	}
	return bucketScale(maxAbs, scaleBuckets)
}

func bucketScale(maxAbs float64, buckets []scaleBucket) ScaleFactor {
	for _, b := range buckets {
		if maxAbs >= b.AtLeast {
			return b.Factor
		}
	}
	return ScaleNone
}
