package oura

// Scope represents an OAuth2 scope a token needs to read specific Oura API resources.
type Scope string

const (
	// ScopeEmail allows reading the user's email address.
	ScopeEmail Scope = "email"

	// ScopePersonal allows reading the user's age, weight, height and gender.
	ScopePersonal Scope = "personal"

	// ScopeDaily allows reading daily sleep, activity and readiness summaries.
	ScopeDaily Scope = "daily"
)
