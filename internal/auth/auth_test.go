// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/model"
	"github.com/toeirei/rentmaster/internal/session"
)

type recordingHistory struct {
	actions []string
}

func (r *recordingHistory) LogAction(role, action, details string) error {
	r.actions = append(r.actions, action)
	return nil
}

func newFlow(t *testing.T, handler http.HandlerFunc) (*Flow, *session.Store, *recordingHistory, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessions := session.NewStore(nil)
	history := &recordingHistory{}
	client := api.New(server.URL, sessions)
	return New(client, sessions, history), sessions, history, server
}

func TestLoginEstablishesSession(t *testing.T) {
	flow, sessions, history, _ := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tenant/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok-1", "tenant": {"id": 1, "full_name": "Ada Tenant"}}`))
	})

	err := flow.Login(context.Background(), model.RoleTenant, api.Credentials{EmailAddress: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !sessions.IsAuthenticated() || sessions.Token() != "tok-1" {
		t.Fatalf("session not established: token=%q", sessions.Token())
	}
	if sessions.Role() != model.RoleTenant {
		t.Fatalf("role = %q", sessions.Role())
	}
	if len(history.actions) != 1 || history.actions[0] != "LOGIN" {
		t.Fatalf("history = %v", history.actions)
	}
}

func TestLoginAcceptsAlternateTokenField(t *testing.T) {
	flow, sessions, _, _ := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token": "tok-alt", "administrator": {"id": 3, "username": "root"}}`))
	})

	err := flow.Login(context.Background(), model.RoleAdministrator, api.Credentials{Username: "root", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sessions.Token() != "tok-alt" {
		t.Fatalf("token = %q", sessions.Token())
	}
	if p := sessions.Profile(); p == nil || p.Username != "root" {
		t.Fatalf("profile = %+v", p)
	}
}

func TestLoginRejectsIncompleteResponse(t *testing.T) {
	flow, sessions, _, _ := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	})

	err := flow.Login(context.Background(), model.RoleTenant, api.Credentials{EmailAddress: "a@b.c", Password: "pw"})
	if !errors.Is(err, ErrNoSessionData) {
		t.Fatalf("expected ErrNoSessionData, got %v", err)
	}
	if sessions.IsAuthenticated() {
		t.Fatalf("session established from incomplete response")
	}
}

func TestLoginSurfacesServerError(t *testing.T) {
	flow, sessions, _, _ := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Invalid credentials"}`))
	})

	err := flow.Login(context.Background(), model.RoleTenant, api.Credentials{EmailAddress: "a@b.c", Password: "bad"})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 *api.Error, got %v", err)
	}
	if sessions.IsAuthenticated() {
		t.Fatalf("session established from failed login")
	}
}

func TestRegisterAdminBlockedBeforeNetwork(t *testing.T) {
	calls := 0
	flow, sessions, history, _ := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	err := flow.Register(context.Background(), model.RoleAdministrator, api.Registration{EmailAddress: "a@b.c", Password: "pw"})
	if !errors.Is(err, ErrAdminRegistration) {
		t.Fatalf("expected ErrAdminRegistration, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("admin registration reached the network (%d calls)", calls)
	}
	if sessions.IsAuthenticated() || len(history.actions) != 0 {
		t.Fatalf("state changed by a rejected registration")
	}
}

func TestRegisterEstablishesSession(t *testing.T) {
	flow, sessions, history, _ := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/house-owner/register" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok-r", "house_owner": {"id": 2, "owner_name": "Olive"}}`))
	})

	err := flow.Register(context.Background(), model.RoleHouseOwner, api.Registration{
		OwnerName:    "Olive",
		EmailAddress: "olive@example.com",
		Password:     "pw",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if sessions.Role() != model.RoleHouseOwner || sessions.Token() != "tok-r" {
		t.Fatalf("session = role %q token %q", sessions.Role(), sessions.Token())
	}
	if len(history.actions) != 1 || history.actions[0] != "REGISTER" {
		t.Fatalf("history = %v", history.actions)
	}
}

func TestLogoutClearsDespiteServerFailure(t *testing.T) {
	flow, sessions, history, _ := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tenant/login" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token": "tok", "tenant": {"id": 1}}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	if err := flow.Login(context.Background(), model.RoleTenant, api.Credentials{EmailAddress: "a@b.c", Password: "pw"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	flow.Logout(context.Background())
	if sessions.IsAuthenticated() {
		t.Fatalf("session survived logout with failing server")
	}
	if len(history.actions) != 2 || history.actions[1] != "LOGOUT" {
		t.Fatalf("history = %v", history.actions)
	}
}

func TestLogoutUnauthenticatedIsQuiet(t *testing.T) {
	calls := 0
	flow, sessions, _, _ := newFlow(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	flow.Logout(context.Background())
	if calls != 0 {
		t.Fatalf("logout without a session reached the network")
	}
	if sessions.IsAuthenticated() {
		t.Fatalf("session appeared from nowhere")
	}
}
