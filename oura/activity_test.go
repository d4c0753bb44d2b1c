package oura

import (
	"context"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Activity(t *testing.T) {
	ts := newMockServer(t)
	defer ts.Close()

	client := newMockClient(ts)

	periods, err := client.Activity(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, periods, 1)

	p := periods[0]
	eest := time.FixedZone("", 3*60*60)

	assert.Equal(t, civil.Date{Year: 2016, Month: time.September, Day: 3}, p.SummaryDate)
	assert.True(t, p.DayStart.Equal(time.Date(2016, time.September, 3, 4, 0, 0, 0, eest)), "day_start: %v", p.DayStart)
	assert.True(t, p.DayEnd.Equal(time.Date(2016, time.September, 4, 3, 59, 59, 0, eest)), "day_end: %v", p.DayEnd)
	assert.Equal(t, 180, p.Timezone)

	assert.Equal(t, 87, p.Score)
	assert.Equal(t, 90, p.ScoreStayActive)
	assert.Equal(t, 100, p.ScoreMoveEveryHour)
	assert.Equal(t, 60, p.ScoreMeetDailyTargets)
	assert.Equal(t, 96, p.ScoreTrainingFrequency)
	assert.Equal(t, 95, p.ScoreTrainingVolume)
	assert.Equal(t, 100, p.ScoreRecoveryTime)

	assert.Equal(t, 7806, p.DailyMovement)
	assert.Equal(t, 313, p.NonWear)
	assert.Equal(t, 426, p.Rest)
	assert.Equal(t, 429, p.Inactive)
	assert.Equal(t, 0, p.InactivityAlerts)
	assert.Equal(t, 224, p.Low)
	assert.Equal(t, 49, p.Medium)
	assert.Equal(t, 0, p.High)
	assert.Equal(t, 9206, p.Steps)
	assert.Equal(t, 2540, p.CalTotal)
	assert.Equal(t, 416, p.CalActive)

	assert.Equal(t, 9, p.METMinInactive)
	assert.Equal(t, 167, p.METMinLow)
	assert.Equal(t, 159, p.METMinMediumPlus)
	assert.Equal(t, 159, p.METMinMedium)
	assert.Equal(t, 0, p.METMinHigh)
	assert.Equal(t, 1.4375, p.AverageMET)

	assert.Equal(t, 288, p.Class5Min.Len())
	assert.Equal(t, []float64{0.9, 0.9, 0.9, 1.1, 3.2, 1.0, 0.9}, p.MET1Min)
}

func TestClient_Activity_MetMinMediumPlusAbsent(t *testing.T) {
	body := strings.Replace(activityJSON, `"met_min_medium_plus": 159,`, "", 1)
	require.NotContains(t, body, "met_min_medium_plus")

	ts := serveOnce(t, 200, body)
	defer ts.Close()

	client := NewClient(testToken, WithBaseURL(ts.URL))

	periods, err := client.Activity(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, periods, 1)

	assert.Equal(t, 0, periods[0].METMinMediumPlus)
	assert.Equal(t, 159, periods[0].METMinMedium)
}

func TestClient_Activity_OtherMetFieldRequired(t *testing.T) {
	body := strings.Replace(activityJSON, `"met_min_high": 0,`, "", 1)

	ts := serveOnce(t, 200, body)
	defer ts.Close()

	client := NewClient(testToken, WithBaseURL(ts.URL))

	_, err := client.Activity(context.Background(), nil)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "activity[0].met_min_high", missing.Path)
}
