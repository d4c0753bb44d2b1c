// Package oura provides a typed Go client for the Oura Ring v1 REST API.
//
// The client authenticates with a personal access token passed as the
// access_token query parameter, issues exactly one GET per call, and decodes
// the response strictly against the documented schema of each resource.
//
// # Quick Start
//
//	client := oura.NewClient("your_personal_access_token")
//
//	info, err := client.UserInfo(ctx)
//
// # Date Ranges
//
// Sleep, readiness and activity accept an optional date range. A nil range
// lets the API pick its default window; a non-nil range with missing bounds
// is resolved to the last seven days ending today:
//
//	start := civil.Date{Year: 2024, Month: time.March, Day: 1}
//	periods, err := client.Sleep(ctx, &oura.DateRange{Start: &start})
//
// # Errors
//
// Every failure is one of *URLError, *NetworkError, *HTTPStatusError or
// *DecodeError; use errors.As to inspect them:
//
//	var statusErr *oura.HTTPStatusError
//	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
//	    // token expired
//	}
package oura
