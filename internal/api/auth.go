// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"net/http"

	"github.com/toeirei/rentmaster/internal/model"
)

// AuthResponse is the raw shape the server returns from login and register.
// The token may arrive under either of two field names, and the profile is
// nested under a role-specific key; the auth flow normalizes this once and
// nothing downstream re-inspects it.
type AuthResponse struct {
	Message       string             `json:"message"`
	AccessToken   string             `json:"access_token"`
	Token         string             `json:"token"`
	TokenType     string             `json:"token_type"`
	Tenant        *model.UserProfile `json:"tenant"`
	HouseOwner    *model.UserProfile `json:"house_owner"`
	Administrator *model.UserProfile `json:"administrator"`
}

// Credentials is the login payload. Administrators log in with a username,
// the other roles with an email address.
type Credentials struct {
	EmailAddress string `json:"email_address,omitempty"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password"`
}

// Registration is the register payload for tenants and house owners.
type Registration struct {
	FullName     string `json:"full_name,omitempty"`
	OwnerName    string `json:"owner_name,omitempty"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
	MobileNumber string `json:"mobile_number,omitempty"`
	Address      string `json:"address,omitempty"`
}

// Login authenticates against the role's login path. It is an
// unauthenticated call; no Authorization header is attached while no
// session exists.
func (c *Client) Login(ctx context.Context, role model.Role, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/" + role.PathSegment() + "/login",
		Body:   creds,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account for the role. The administrator gate lives
// in the auth flow, not here; the server is the final authority anyway.
func (c *Client) Register(ctx context.Context, role model.Role, reg Registration) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/" + role.PathSegment() + "/register",
		Body:   reg,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the server that the session's token should be revoked.
// The response body (if any) is ignored.
func (c *Client) Logout(ctx context.Context, role model.Role) error {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/" + role.PathSegment() + "/logout",
	}, nil)
}
