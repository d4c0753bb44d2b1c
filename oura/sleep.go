package oura

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
)

// SleepResponse is the wrapper object returned by /v1/sleep.
type SleepResponse struct {
	Sleep []SleepPeriod `json:"sleep"`
}

// SleepPeriod summarizes one sleep period. Durations are in seconds.
type SleepPeriod struct {
	SummaryDate  civil.Date `json:"summary_date"`
	PeriodID     int        `json:"period_id"`
	IsLongest    int        `json:"is_longest"` // 1 for the main sleep of the day
	Timezone     int        `json:"timezone"`   // minutes from UTC
	BedtimeStart time.Time  `json:"bedtime_start"`
	BedtimeEnd   time.Time  `json:"bedtime_end"`

	Score             int `json:"score"`
	ScoreTotal        int `json:"score_total"`
	ScoreDisturbances int `json:"score_disturbances"`
	ScoreEfficiency   int `json:"score_efficiency"`
	ScoreLatency      int `json:"score_latency"`
	ScoreREM          int `json:"score_rem"`
	ScoreDeep         int `json:"score_deep"`
	ScoreAlignment    int `json:"score_alignment"`

	Total        int `json:"total"`
	Duration     int `json:"duration"`
	Awake        int `json:"awake"`
	Light        int `json:"light"`
	REM          int `json:"rem"`
	Deep         int `json:"deep"`
	OnsetLatency int `json:"onset_latency"`
	Restless     int `json:"restless"`   // percent
	Efficiency   int `json:"efficiency"` // percent
	MidpointTime int `json:"midpoint_time"`

	HRLowest         int     `json:"hr_lowest"`
	HRAverage        float64 `json:"hr_average"`
	RMSSD            int     `json:"rmssd"`
	BreathAverage    float64 `json:"breath_average"`
	TemperatureDelta float64 `json:"temperature_delta"`

	// Five-minute sleep stages: 1 deep, 2 light, 3 REM, 4 awake.
	Hypnogram5Min Timeline `json:"hypnogram_5min"`
	HR5Min        []int    `json:"hr_5min"`
	RMSSD5Min     []int    `json:"rmssd_5min"`
}

// Sleep fetches sleep periods. A nil range lets the API choose the window.
func (c *Client) Sleep(ctx context.Context, dr *DateRange) ([]SleepPeriod, error) {
	resp, err := fetchAs[SleepResponse](ctx, c, ResourceSleep, dr)
	if err != nil {
		return nil, err
	}
	return resp.Sleep, nil
}
