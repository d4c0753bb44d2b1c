package main

import (
	"cmp"
	"context"
	"os"
	"os/signal"
	"slices"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/arvarik/oura-go/internal/config"
	"github.com/arvarik/oura-go/oura"
)

// This example syncs the last two weeks of every date-scoped resource.
// A small worker pool shares one paced client so a nightly job never
// bursts more than a couple of requests at the API.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	client := oura.NewClient(cfg.AccessToken,
		oura.WithBaseURL(cfg.BaseURL),
		oura.WithTimeout(cfg.Timeout),
		oura.WithRateLimit(rate.Every(500*time.Millisecond), 2),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	today := civil.DateOf(time.Now())
	start := today.AddDays(-14)
	dr := &oura.DateRange{Start: &start, End: &today}

	for _, res := range syncAll(ctx, client, dr, 3) {
		if res.err != nil {
			log.Error().Err(res.err).Str("resource", string(res.resource)).Msg("sync failed")
			continue
		}
		log.Info().
			Str("resource", string(res.resource)).
			Int("records", res.records).
			Float64("avg_score", res.avgScore).
			Msg("synced")
	}
}

type syncResult struct {
	resource oura.Resource
	records  int
	avgScore float64
	err      error
}

// syncAll fetches every date-scoped resource with a bounded number of
// workers. Results come back sorted by resource name.
func syncAll(ctx context.Context, client *oura.Client, dr *oura.DateRange, workers int) []syncResult {
	var jobs []oura.Resource
	for _, r := range oura.Resources() {
		if r.AcceptsDateRange() {
			jobs = append(jobs, r)
		}
	}

	jobQueue := make(chan oura.Resource)
	results := make(chan syncResult, len(jobs))

	var wg sync.WaitGroup
	for range max(workers, 1) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobQueue {
				results <- syncOne(ctx, client, r, dr)
			}
		}()
	}

	for _, r := range jobs {
		jobQueue <- r
	}
	close(jobQueue)
	wg.Wait()
	close(results)

	out := make([]syncResult, 0, len(jobs))
	for res := range results {
		out = append(out, res)
	}
	slices.SortFunc(out, func(a, b syncResult) int {
		return cmp.Compare(a.resource, b.resource)
	})
	return out
}

func syncOne(ctx context.Context, client *oura.Client, r oura.Resource, dr *oura.DateRange) syncResult {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	v, err := client.Fetch(ctx, r, dr)
	if err != nil {
		return syncResult{resource: r, err: err}
	}

	var scores []int
	switch resp := v.(type) {
	case *oura.SleepResponse:
		for _, p := range resp.Sleep {
			scores = append(scores, p.Score)
		}
	case *oura.ReadinessResponse:
		for _, p := range resp.Readiness {
			scores = append(scores, p.Score)
		}
	case *oura.ActivityResponse:
		for _, p := range resp.Activity {
			scores = append(scores, p.Score)
		}
	}

	res := syncResult{resource: r, records: len(scores)}
	if len(scores) > 0 {
		total := 0
		for _, s := range scores {
			total += s
		}
		res.avgScore = float64(total) / float64(len(scores))
	}
	return res
}
