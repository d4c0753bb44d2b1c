package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/arvarik/oura-go/internal/config"
	"github.com/arvarik/oura-go/oura"
)

// errUsage marks command-line mistakes; usage has already been printed.
var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// run fetches one resource and prints it as indented JSON on stdout.
// Diagnostics go to stderr through the logger.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("oura", flag.ContinueOnError)
	fs.SetOutput(stderr)
	start := fs.String("start", "", "<YYYY-MM-DD> Start date. Defaults to one week before the end date.")
	end := fs.String("end", "", "<YYYY-MM-DD> End date. Defaults to today.")
	timeout := fs.Duration("timeout", 0, "Per-request timeout. Overrides OURA_TIMEOUT.")
	debug := fs.Bool("debug", false, "Enable debug logging. Same as OURA_DEBUG=true.")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: oura [flags] <resource>")
		fmt.Fprintln(stderr, "       oura resources")
		fmt.Fprintln(stderr, "\nResources:", joinResources())
		fmt.Fprintln(stderr, "\nEnvironment:")
		fmt.Fprintln(stderr, "  OURA_ACCESS_TOKEN  Personal access token (required)")
		fmt.Fprintln(stderr, "  OURA_BASE_URL      API base URL (default https://api.ouraring.com)")
		fmt.Fprintln(stderr, "  OURA_TIMEOUT       Per-request timeout (default 30s)")
		fmt.Fprintln(stderr, "  OURA_DEBUG         Enable debug logging")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	if fs.Arg(0) == "resources" {
		return listResources(stdout)
	}

	r, err := oura.ParseResource(fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Msg("cannot fetch")
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}
	if *debug || cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}

	var dr *oura.DateRange
	if *start != "" || *end != "" {
		if !r.AcceptsDateRange() {
			logger.Warn().Str("resource", string(r)).Msg("resource is not date scoped, ignoring --start/--end")
		} else if dr, err = oura.ParseDateRange(*start, *end); err != nil {
			logger.Error().Err(err).Msg("invalid date range")
			return err
		}
	}

	client := oura.NewClient(cfg.AccessToken,
		oura.WithBaseURL(cfg.BaseURL),
		oura.WithTimeout(cfg.Timeout),
	)

	evt := logger.Debug().Str("resource", string(r)).Str("base_url", cfg.BaseURL)
	if dr != nil {
		s, e := dr.Resolve(civil.DateOf(time.Now()))
		evt = evt.Stringer("start", s).Stringer("end", e)
	}
	evt.Msg("fetching")

	began := time.Now()
	resp, err := client.Fetch(ctx, r, dr)
	if err != nil {
		logFetchError(logger, r, err)
		return err
	}
	logger.Debug().Str("resource", string(r)).Dur("elapsed", time.Since(began)).Msg("fetched")

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// logFetchError logs err with the fields of its concrete kind.
func logFetchError(logger zerolog.Logger, r oura.Resource, err error) {
	evt := logger.Error().Str("resource", string(r))

	var (
		statusErr *oura.HTTPStatusError
		decodeErr *oura.DecodeError
		netErr    *oura.NetworkError
		urlErr    *oura.URLError
	)
	switch {
	case errors.As(err, &statusErr):
		evt = evt.Int("status", statusErr.StatusCode).Bytes("body", statusErr.Body)
		if errors.Is(err, oura.ErrUnauthorized) {
			evt = evt.Str("hint", "check OURA_ACCESS_TOKEN and its scopes")
		}
		evt.Msg("api returned an error")
	case errors.As(err, &decodeErr):
		evt.Err(decodeErr.Err).Msg("unexpected response payload")
	case errors.As(err, &netErr):
		evt.Err(netErr.Err).Bool("timeout", netErr.Timeout()).Str("url", netErr.URL).Msg("request failed")
	case errors.As(err, &urlErr):
		evt.Err(err).Msg("cannot build request")
	default:
		evt.Err(err).Msg("fetch failed")
	}
}

func listResources(w io.Writer) error {
	for _, r := range oura.Resources() {
		scopes := make([]string, 0, len(r.RequiredScopes()))
		for _, s := range r.RequiredScopes() {
			scopes = append(scopes, string(s))
		}
		dated := ""
		if r.AcceptsDateRange() {
			dated = " [--start] [--end]"
		}
		if _, err := fmt.Fprintf(w, "%-10s scopes: %s%s\n", r, strings.Join(scopes, ","), dated); err != nil {
			return err
		}
	}
	return nil
}

func joinResources() string {
	names := make([]string, 0, len(oura.Resources()))
	for _, r := range oura.Resources() {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
