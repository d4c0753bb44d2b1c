package oura

import (
	"context"
	"fmt"
	"slices"
)

// Resource names one Oura API data category.
type Resource string

const (
	ResourceUserInfo  Resource = "userinfo"
	ResourceSleep     Resource = "sleep"
	ResourceReadiness Resource = "readiness"
	ResourceActivity  Resource = "activity"
	ResourceBedtime   Resource = "bedtime"
)

// endpoint describes how to request and decode one resource.
type endpoint struct {
	path   string
	dated  bool       // accepts start/end query parameters
	schema func() any // returns a fresh decode target
	scopes []Scope
}

var endpoints = map[Resource]endpoint{
	ResourceUserInfo: {
		path:   "/v1/userinfo",
		schema: func() any { return new(UserInfo) },
		scopes: []Scope{ScopeEmail, ScopePersonal},
	},
	ResourceSleep: {
		path:   "/v1/sleep",
		dated:  true,
		schema: func() any { return new(SleepResponse) },
		scopes: []Scope{ScopeDaily},
	},
	ResourceReadiness: {
		path:   "/v1/readiness",
		dated:  true,
		schema: func() any { return new(ReadinessResponse) },
		scopes: []Scope{ScopeDaily},
	},
	ResourceActivity: {
		path:   "/v1/activity",
		dated:  true,
		schema: func() any { return new(ActivityResponse) },
		scopes: []Scope{ScopeDaily},
	},
	ResourceBedtime: {
		path:   "/v1/bedtime",
		schema: func() any { return new(BedtimeResponse) },
		scopes: []Scope{ScopeDaily},
	},
}

// Resources lists every resource the client knows, sorted by name.
func Resources() []Resource {
	out := make([]Resource, 0, len(endpoints))
	for r := range endpoints {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// ParseResource maps a resource name such as "sleep" to its Resource.
func ParseResource(name string) (Resource, error) {
	r := Resource(name)
	if _, ok := endpoints[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownResource, name)
	}
	return r, nil
}

// AcceptsDateRange reports whether r is scoped by start and end dates.
func (r Resource) AcceptsDateRange() bool {
	return endpoints[r].dated
}

// RequiredScopes returns the OAuth2 scopes a token needs to read r.
func (r Resource) RequiredScopes() []Scope {
	return slices.Clone(endpoints[r].scopes)
}

// Fetch requests resource r and returns a pointer to its decoded response:
// *UserInfo, *SleepResponse, *ReadinessResponse, *ActivityResponse or
// *BedtimeResponse. dr is ignored for resources that are not date scoped.
func (c *Client) Fetch(ctx context.Context, r Resource, dr *DateRange) (any, error) {
	ep, ok := endpoints[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResource, r)
	}

	u, err := c.requestURL(ep, dr)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	out := ep.schema()
	if err := decodeStrict(body, out); err != nil {
		return nil, &DecodeError{Resource: r, Err: err}
	}

	return out, nil
}

// fetchAs is Fetch with the decode target asserted to *T.
func fetchAs[T any](ctx context.Context, c *Client, r Resource, dr *DateRange) (*T, error) {
	v, err := c.Fetch(ctx, r, dr)
	if err != nil {
		return nil, err
	}
	out, ok := v.(*T)
	if !ok {
		return nil, fmt.Errorf("oura: %s decodes to %T, not %T", r, v, out)
	}
	return out, nil
}
