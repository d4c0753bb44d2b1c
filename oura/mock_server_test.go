package oura

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testToken = "abc123"

const userInfoJSON = `{
	"age": 27,
	"weight": 80.5,
	"height": 180,
	"gender": "male",
	"email": "john.doe@the.domain"
}`

const sleepJSON = `{
	"sleep": [
		{
			"summary_date": "2016-10-11",
			"period_id": 0,
			"is_longest": 1,
			"timezone": 120,
			"bedtime_start": "2016-10-11T23:11:04+02:00",
			"bedtime_end": "2016-10-12T07:21:04+02:00",
			"score": 70,
			"score_total": 57,
			"score_disturbances": 83,
			"score_efficiency": 99,
			"score_latency": 88,
			"score_rem": 97,
			"score_deep": 59,
			"score_alignment": 31,
			"total": 20310,
			"duration": 29400,
			"awake": 9090,
			"light": 10260,
			"rem": 7140,
			"deep": 2910,
			"onset_latency": 480,
			"restless": 39,
			"efficiency": 69,
			"midpoint_time": 13080,
			"hr_lowest": 49,
			"hr_average": 56.375,
			"rmssd": 54,
			"breath_average": 13.125,
			"temperature_delta": -0.06,
			"hypnogram_5min": "443432222211222333321112222222222111133333322221112233333333332232222334",
			"hr_5min": [52, 51, 50, 50, 49, 50, 51],
			"rmssd_5min": [61, 58, 55, 54, 60, 62, 57]
		}
	]
}`

const readinessJSON = `{
	"readiness": [
		{
			"summary_date": "2016-09-03",
			"period_id": 0,
			"score": 62,
			"score_previous_night": 5,
			"score_sleep_balance": 75,
			"score_previous_day": 61,
			"score_activity_balance": 77,
			"score_resting_hr": 98,
			"score_hrv_balance": 90,
			"score_recovery_index": 45,
			"score_temperature": 86
		}
	]
}`

const activityJSON = `{
	"activity": [
		{
			"summary_date": "2016-09-03",
			"day_start": "2016-09-03T04:00:00+03:00",
			"day_end": "2016-09-04T03:59:59+03:00",
			"timezone": 180,
			"score": 87,
			"score_stay_active": 90,
			"score_move_every_hour": 100,
			"score_meet_daily_targets": 60,
			"score_training_frequency": 96,
			"score_training_volume": 95,
			"score_recovery_time": 100,
			"daily_movement": 7806,
			"non_wear": 313,
			"rest": 426,
			"inactive": 429,
			"inactivity_alerts": 0,
			"low": 224,
			"medium": 49,
			"high": 0,
			"steps": 9206,
			"cal_total": 2540,
			"cal_active": 416,
			"met_min_inactive": 9,
			"met_min_low": 167,
			"met_min_medium_plus": 159,
			"met_min_medium": 159,
			"met_min_high": 0,
			"average_met": 1.4375,
			"class_5min": "111221111111111111111111111111111111111111111123332232222333332332222222000000000000000000000000000000000000000000000000000000023333444433222222222222232233344443222222222123000323333223222233333233333333000222222223323323322221222222222312112111122211111112221232122321111111111111111111",
			"met_1min": [0.9, 0.9, 0.9, 1.1, 3.2, 1.0, 0.9]
		}
	]
}`

const bedtimeJSON = `{
	"ideal_bedtimes": [
		{
			"date": "2020-03-17",
			"bedtime_window": {"start": -3600, "end": 0},
			"status": "IDEAL_BEDTIME_AVAILABLE"
		},
		{
			"date": "2020-03-18",
			"bedtime_window": {"start": null, "end": null},
			"status": "LOW_SLEEP_SCORES"
		}
	]
}`

// newMockServer creates an httptest.Server answering the five Oura v1
// resources with literal vendor-shaped payloads. Requests without the test
// token are rejected with 401.
func newMockServer(t testing.TB) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	fixture := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("expected GET, got %s", r.Method)
			}
			if r.URL.Query().Get(tokenParam) != testToken {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"status": 401, "title": "Unauthorized"}`))
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(body))
		}
	}

	mux.HandleFunc("/v1/userinfo", fixture(userInfoJSON))
	mux.HandleFunc("/v1/sleep", fixture(sleepJSON))
	mux.HandleFunc("/v1/readiness", fixture(readinessJSON))
	mux.HandleFunc("/v1/activity", fixture(activityJSON))
	mux.HandleFunc("/v1/bedtime", fixture(bedtimeJSON))

	return httptest.NewServer(mux)
}

// newMockClient builds a client pointed at ts with a fixed clock.
func newMockClient(ts *httptest.Server, opts ...Option) *Client {
	defaultOpts := []Option{
		WithBaseURL(ts.URL),
		WithClock(func() time.Time {
			return time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
		}),
	}
	defaultOpts = append(defaultOpts, opts...)
	return NewClient(testToken, defaultOpts...)
}

// serveOnce returns a server that answers every request with status and body.
func serveOnce(t testing.TB, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}
