package oura

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
)

// ActivityResponse is the wrapper object returned by /v1/activity.
type ActivityResponse struct {
	Activity []ActivityPeriod `json:"activity"`
}

// ActivityPeriod summarizes one activity day, which runs from 4 AM local
// time to 4 AM the next day. Durations are in minutes.
type ActivityPeriod struct {
	SummaryDate civil.Date `json:"summary_date"`
	DayStart    time.Time  `json:"day_start"`
	DayEnd      time.Time  `json:"day_end"`
	Timezone    int        `json:"timezone"` // minutes from UTC

	Score                  int `json:"score"`
	ScoreStayActive        int `json:"score_stay_active"`
	ScoreMoveEveryHour     int `json:"score_move_every_hour"`
	ScoreMeetDailyTargets  int `json:"score_meet_daily_targets"`
	ScoreTrainingFrequency int `json:"score_training_frequency"`
	ScoreTrainingVolume    int `json:"score_training_volume"`
	ScoreRecoveryTime      int `json:"score_recovery_time"`

	DailyMovement    int `json:"daily_movement"` // meters
	NonWear          int `json:"non_wear"`
	Rest             int `json:"rest"`
	Inactive         int `json:"inactive"`
	InactivityAlerts int `json:"inactivity_alerts"`
	Low              int `json:"low"`
	Medium           int `json:"medium"`
	High             int `json:"high"`
	Steps            int `json:"steps"`
	CalTotal         int `json:"cal_total"`
	CalActive        int `json:"cal_active"`

	METMinInactive int `json:"met_min_inactive"`
	METMinLow      int `json:"met_min_low"`
	// Left out of the response on days without high intensity activity.
	METMinMediumPlus int `json:"met_min_medium_plus,omitempty"`
	METMinMedium     int `json:"met_min_medium"`
	METMinHigh       int `json:"met_min_high"`

	AverageMET float64 `json:"average_met"`

	// Five-minute activity classes: 0 non-wear, 1 rest, 2 inactive, 3 low,
	// 4 medium, 5 high.
	Class5Min Timeline  `json:"class_5min"`
	MET1Min   []float64 `json:"met_1min"`
}

// Activity fetches activity days. A nil range lets the API choose the window.
func (c *Client) Activity(ctx context.Context, dr *DateRange) ([]ActivityPeriod, error) {
	resp, err := fetchAs[ActivityResponse](ctx, c, ResourceActivity, dr)
	if err != nil {
		return nil, err
	}
	return resp.Activity, nil
}
