package oura

import (
	"errors"
	"fmt"
	"net/url"

	"cloud.google.com/go/civil"
)

// DefaultWindowDays is how far before the end date an open start bound reaches.
const DefaultWindowDays = 7

// DateRange scopes sleep, readiness and activity queries. Either bound may be
// nil; Resolve fills the gaps. A nil *DateRange sends no date parameters at
// all and leaves the window to the API.
type DateRange struct {
	// First summary date to fetch (inclusive). Defaults to End minus seven days.
	Start *civil.Date

	// Last summary date to fetch (inclusive). Defaults to today.
	End *civil.Date
}

// ParseDateRange builds a DateRange from two YYYY-MM-DD strings. An empty
// string leaves that bound open.
func ParseDateRange(start, end string) (*DateRange, error) {
	dr := &DateRange{}

	var err error
	if dr.Start, err = parseBound("start", start); err != nil {
		return nil, err
	}
	if dr.End, err = parseBound("end", end); err != nil {
		return nil, err
	}

	return dr, nil
}

func parseBound(param, s string) (*civil.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil, &URLError{Param: param, Value: s, Err: err}
	}
	return &d, nil
}

// Resolve returns concrete bounds: a missing end becomes today and a missing
// start becomes the resolved end minus DefaultWindowDays. An inverted range is
// returned as is.
func (r *DateRange) Resolve(today civil.Date) (start, end civil.Date) {
	end = today
	if r != nil && r.End != nil {
		end = *r.End
	}

	start = end.AddDays(-DefaultWindowDays)
	if r != nil && r.Start != nil {
		start = *r.Start
	}

	return start, end
}

// Validate reports whether the resolved start falls after the resolved end.
// The client never calls it; the API decides how to treat inverted ranges.
func (r *DateRange) Validate(today civil.Date) error {
	start, end := r.Resolve(today)
	if start.After(end) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvertedRange, start, end)
	}
	return nil
}

// ErrInvertedRange is returned by DateRange.Validate.
var ErrInvertedRange = errors.New("oura: inverted date range")

// encode sets the start and end query parameters in YYYY-MM-DD form.
func (r *DateRange) encode(q url.Values, today civil.Date) {
	start, end := r.Resolve(today)
	q.Set("start", start.String())
	q.Set("end", end.String())
}
