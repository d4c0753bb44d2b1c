package oura

import "context"

// UserInfo is the personal profile of the token's owner.
type UserInfo struct {
	Age    int     `json:"age"`
	Weight float64 `json:"weight"` // kilograms
	Height int     `json:"height"` // centimeters
	Gender string  `json:"gender"`
	Email  string  `json:"email"`
}

// UserInfo fetches the authenticated user's profile.
func (c *Client) UserInfo(ctx context.Context) (*UserInfo, error) {
	return fetchAs[UserInfo](ctx, c, ResourceUserInfo, nil)
}
