package oura

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
)

// BedtimeStatus describes whether an ideal bedtime could be computed.
type BedtimeStatus string

// BedtimeStatusAvailable means the bedtime window is populated.
const BedtimeStatusAvailable BedtimeStatus = "IDEAL_BEDTIME_AVAILABLE"

// BedtimeResponse is the wrapper object returned by /v1/bedtime.
type BedtimeResponse struct {
	IdealBedtimes []IdealBedtime `json:"ideal_bedtimes"`
}

// IdealBedtime is the recommended bedtime window for one night.
type IdealBedtime struct {
	Date          civil.Date    `json:"date"`
	BedtimeWindow BedtimeWindow `json:"bedtime_window"`
	Status        BedtimeStatus `json:"status"`
}

// BedtimeWindow bounds the recommended bedtime in seconds relative to
// midnight; negative values fall on the previous day. Start and End are
// independently null when the API cannot compute them.
type BedtimeWindow struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}

// StartOffset returns Start as a duration and whether it is set.
func (w BedtimeWindow) StartOffset() (time.Duration, bool) {
	return offset(w.Start)
}

// EndOffset returns End as a duration and whether it is set.
func (w BedtimeWindow) EndOffset() (time.Duration, bool) {
	return offset(w.End)
}

func offset(sec *int) (time.Duration, bool) {
	if sec == nil {
		return 0, false
	}
	return time.Duration(*sec) * time.Second, true
}

// Bedtime fetches the ideal bedtime windows.
func (c *Client) Bedtime(ctx context.Context) ([]IdealBedtime, error) {
	resp, err := fetchAs[BedtimeResponse](ctx, c, ResourceBedtime, nil)
	if err != nil {
		return nil, err
	}
	return resp.IdealBedtimes, nil
}
