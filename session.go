// session.go
package main

import (
	"errors"
	"fmt"
	"sync"
)

// ViewState is which presentation the UI is showing. Transitions are
// user-triggered only.
type ViewState int

const (
	ViewForm ViewState = iota
	ViewChart
	ViewFullScreen
)

func (v ViewState) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewChart:
		return "chart"
	case ViewFullScreen:
		return "fullscreen"
	default:
		return fmt.Sprintf("ViewState(%d)", int(v))
	}
}

// ErrNoDataset is returned by selection and generate calls before any file
// has been uploaded.
var ErrNoDataset = errors.New("no dataset uploaded")

// Session is the one in-memory working set: the last uploaded dataset, the
// user's current selection, the last built series and the active view. All
// mutation goes through methods so the Form → Chart → FullScreen machine
// stays explicit. The mutex is there because net/http serves concurrently
// even though the tool is single-user.
type Session struct {
	mu        sync.Mutex
	dataset   *Dataset
	selection Selection
	series    []Series
	view      ViewState
}

func NewSession() *Session {
	return &Session{selection: Selection{XScale: ScaleNone}}
}

// Upload replaces the dataset wholesale, seeds every field's default scale
// factor from its observed max |value|, and drops any previous selection,
// series and view state.
func (s *Session) Upload(ds *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	sel := Selection{
		XScale: ScaleNone,
		Scales: make(map[string]ScaleFactor, len(ds.Fields)),
	}
	for _, f := range ds.Fields {
		sel.Scales[f] = DefaultScale(ds.MaxAbs(f), f)
	}
	s.selection = sel
	s.series = nil
	s.view = ViewForm
}

func (s *Session) HasDataset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset != nil
}

func (s *Session) Dataset() *Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset
}

// Selection returns a copy; callers cannot mutate session state through it.
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.clone()
}

func (sel Selection) clone() Selection {
	out := sel
	out.YFields = append([]string(nil), sel.YFields...)
	out.Scales = make(map[string]ScaleFactor, len(sel.Scales))
	for k, v := range sel.Scales {
		out.Scales[k] = v
	}
	return out
}

// Series returns a copy; like Selection, callers cannot reach session state
// through it.
func (s *Session) Series() []Series {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.series == nil {
		return nil
	}
	out := make([]Series, len(s.series))
	for i, sr := range s.series {
		out[i] = Series{Label: sr.Label, Points: append([]Point(nil), sr.Points...)}
	}
	return out
}

func (s *Session) View() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SelectX sets the X axis field and its scale factor. An empty field name
// clears the X selection back to the "none chosen" sentinel.
func (s *Session) SelectX(field string, factor ScaleFactor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dataset == nil {
		return ErrNoDataset
	}
	if field != "" && s.dataset.fieldIndex(field) < 0 {
		return fmt.Errorf("unknown field %q", field)
	}
	s.selection.XField = field
	s.selection.XScale = factor
	return nil
}

// SetYFields replaces the Y field set, keeping submission order.
func (s *Session) SetYFields(fields []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dataset == nil {
		return ErrNoDataset
	}
	for _, f := range fields {
		if s.dataset.fieldIndex(f) < 0 {
			return fmt.Errorf("unknown field %q", f)
		}
	}
	s.selection.YFields = append([]string(nil), fields...)
	return nil
}

// SetFactor overrides one field's scale factor.
func (s *Session) SetFactor(field string, factor ScaleFactor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dataset == nil {
		return ErrNoDataset
	}
	if s.dataset.fieldIndex(field) < 0 {
		return fmt.Errorf("unknown field %q", field)
	}
	s.selection.Scales[field] = factor
	return nil
}

// Generate builds the series from the current selection and switches to the
// chart view. When validation fails (no X axis, unknown field) the session
// is left exactly as it was: previous series and view survive.
func (s *Session) Generate() ([]Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dataset == nil {
		return nil, ErrNoDataset
	}
	series, err := BuildSeries(s.dataset, s.selection)
	if err != nil {
		return nil, err
	}
	s.series = series
	s.view = ViewChart
	return series, nil
}

// ShowForm returns to the selection form. The last built series are kept
// until the next Generate or Upload replaces them.
func (s *Session) ShowForm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewForm
}

// ShowChart re-enters the chart view; a no-op unless series exist.
func (s *Session) ShowChart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.series != nil && s.view != ViewFullScreen {
		s.view = ViewChart
	}
}

func (s *Session) EnterFullScreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == ViewChart {
		s.view = ViewFullScreen
	}
}

func (s *Session) ExitFullScreen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == ViewFullScreen {
		s.view = ViewChart
	}
}
