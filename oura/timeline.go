package oura

// Timeline is a vendor-encoded interval series with one character per
// interval, such as the five-minute hypnogram ("4422233211...") or the
// activity class string. The characters are kept opaque.
type Timeline string

// Len returns the number of intervals in the timeline.
func (t Timeline) Len() int {
	return len(t)
}

// Intervals splits the timeline into its per-interval codes.
func (t Timeline) Intervals() []byte {
	return []byte(t)
}
