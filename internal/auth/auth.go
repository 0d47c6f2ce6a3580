// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package auth implements the authentication flow: login, registration and
// logout. It is the only code path that establishes or clears the session
// store, which keeps session state single-writer. The server's loose
// response shape (two possible token fields, a role-keyed profile) is
// normalized here and nowhere else.
package auth

import (
	"context"
	"errors"

	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/logging"
	"github.com/toeirei/rentmaster/internal/model"
	"github.com/toeirei/rentmaster/internal/session"
)

// ErrAdminRegistration is returned when registration is attempted for the
// administrator role. The gate is client-side policy for UX; the server is
// the authority and rejects it as well.
var ErrAdminRegistration = errors.New("administrator registration is not allowed")

// ErrNoSessionData is returned when a login response omits both the token
// and the profile.
var ErrNoSessionData = errors.New("login response carried no token or profile")

// History receives a record of local auth actions. Satisfied by the
// internal/db store; optional.
type History interface {
	LogAction(role, action, details string) error
}

// Flow wires the gateway and the session store together.
type Flow struct {
	api      *api.Client
	sessions *session.Store
	history  History
}

// New returns an authentication flow over the given gateway and store.
// history may be nil.
func New(client *api.Client, sessions *session.Store, history History) *Flow {
	return &Flow{api: client, sessions: sessions, history: history}
}

// Login authenticates the given role and establishes the session. The
// response token may be named access_token or token; the profile sits under
// whichever role key the server chose.
func (f *Flow) Login(ctx context.Context, role model.Role, creds api.Credentials) error {
	resp, err := f.api.Login(ctx, role, creds)
	if err != nil {
		return err
	}

	token, profile := resolve(resp)
	if token == "" || profile == nil {
		return ErrNoSessionData
	}

	if err := f.sessions.Establish(role, profile, token); err != nil {
		return err
	}
	f.log(role, "LOGIN", profile.DisplayName())
	return nil
}

// Register creates an account and establishes the session, exactly like
// login. The administrator role is rejected before any network call.
func (f *Flow) Register(ctx context.Context, role model.Role, reg api.Registration) error {
	if role == model.RoleAdministrator {
		return ErrAdminRegistration
	}

	resp, err := f.api.Register(ctx, role, reg)
	if err != nil {
		return err
	}

	token, profile := resolve(resp)
	if token == "" || profile == nil {
		return ErrNoSessionData
	}

	if err := f.sessions.Establish(role, profile, token); err != nil {
		return err
	}
	f.log(role, "REGISTER", profile.DisplayName())
	return nil
}

// Logout notifies the server on a best-effort basis and unconditionally
// clears the local session. A network failure must never leave the client
// logged in.
func (f *Flow) Logout(ctx context.Context) {
	role := f.sessions.Role()
	if role != "" {
		if err := f.api.Logout(ctx, role); err != nil {
			logging.Warnf("logout: server notification failed: %v", err)
		}
	}
	f.sessions.Clear()
	f.log(role, "LOGOUT", "")
}

// resolve normalizes the server's auth response into the internal session
// shape: pick whichever token field is set, and whichever role-keyed
// profile is present.
func resolve(resp *api.AuthResponse) (string, *model.UserProfile) {
	token := resp.AccessToken
	if token == "" {
		token = resp.Token
	}

	var profile *model.UserProfile
	switch {
	case resp.Tenant != nil:
		profile = resp.Tenant
	case resp.HouseOwner != nil:
		profile = resp.HouseOwner
	case resp.Administrator != nil:
		profile = resp.Administrator
	}
	return token, profile
}

func (f *Flow) log(role model.Role, action, details string) {
	if f.history == nil {
		return
	}
	if err := f.history.LogAction(string(role), action, details); err != nil {
		logging.Debugf("auth: could not record %s in history: %v", action, err)
	}
}
