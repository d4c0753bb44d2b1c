package oura

import (
	"context"

	"cloud.google.com/go/civil"
)

// ReadinessResponse is the wrapper object returned by /v1/readiness.
type ReadinessResponse struct {
	Readiness []ReadinessPeriod `json:"readiness"`
}

// ReadinessPeriod is the readiness score computed after one sleep period,
// together with the contributors that make it up.
type ReadinessPeriod struct {
	SummaryDate          civil.Date `json:"summary_date"`
	PeriodID             int        `json:"period_id"`
	Score                int        `json:"score"`
	ScorePreviousNight   int        `json:"score_previous_night"`
	ScoreSleepBalance    int        `json:"score_sleep_balance"`
	ScorePreviousDay     int        `json:"score_previous_day"`
	ScoreActivityBalance int        `json:"score_activity_balance"`
	ScoreRestingHR       int        `json:"score_resting_hr"`
	ScoreHRVBalance      int        `json:"score_hrv_balance"`
	ScoreRecoveryIndex   int        `json:"score_recovery_index"`
	ScoreTemperature     int        `json:"score_temperature"`
}

// Readiness fetches readiness periods. A nil range lets the API choose the window.
func (c *Client) Readiness(ctx context.Context, dr *DateRange) ([]ReadinessPeriod, error) {
	resp, err := fetchAs[ReadinessResponse](ctx, c, ResourceReadiness, dr)
	if err != nil {
		return nil, err
	}
	return resp.Readiness, nil
}
