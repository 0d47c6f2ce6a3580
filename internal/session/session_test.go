// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"errors"
	"testing"

	"github.com/toeirei/rentmaster/internal/model"
)

// fakeBackend records session writes in memory.
type fakeBackend struct {
	role, profile, token string
	saveErr              error
	deleted              int
}

func (f *fakeBackend) SaveSession(role, profile, token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.role, f.profile, f.token = role, profile, token
	return nil
}

func (f *fakeBackend) LoadSession() (string, string, string, error) {
	return f.role, f.profile, f.token, nil
}

func (f *fakeBackend) DeleteSession() error {
	f.deleted++
	f.role, f.profile, f.token = "", "", ""
	return nil
}

func profile() *model.UserProfile {
	return &model.UserProfile{ID: 1, FullName: "Ada Tenant", EmailAddress: "ada@example.com"}
}

func TestEstablishRequiresAllParts(t *testing.T) {
	s := NewStore(nil)

	cases := []struct {
		role    model.Role
		profile *model.UserProfile
		token   string
	}{
		{"", profile(), "tok"},
		{model.RoleTenant, nil, "tok"},
		{model.RoleTenant, profile(), ""},
		{"guest", profile(), "tok"},
	}
	for _, c := range cases {
		if err := s.Establish(c.role, c.profile, c.token); !errors.Is(err, ErrIncomplete) {
			t.Fatalf("Establish(%q, %v, %q) = %v, want ErrIncomplete", c.role, c.profile, c.token, err)
		}
		if s.IsAuthenticated() {
			t.Fatalf("store became authenticated from a rejected Establish")
		}
	}
}

func TestEstablishAndClear(t *testing.T) {
	backend := &fakeBackend{}
	s := NewStore(backend)

	if err := s.Establish(model.RoleTenant, profile(), "tok-1"); err != nil {
		t.Fatalf("Establish: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Fatalf("expected authenticated store")
	}
	if s.Token() != "tok-1" || s.Role() != model.RoleTenant {
		t.Fatalf("unexpected state: token=%q role=%q", s.Token(), s.Role())
	}
	if backend.token != "tok-1" || backend.role != string(model.RoleTenant) {
		t.Fatalf("session was not persisted: %+v", backend)
	}

	s.Clear()
	if s.IsAuthenticated() || s.Token() != "" || s.Role() != "" || s.Profile() != nil {
		t.Fatalf("store not empty after Clear")
	}
	if backend.deleted != 1 {
		t.Fatalf("persisted session not removed")
	}

	// Clearing an empty store is a no-op, not a failure.
	s.Clear()
}

func TestEstablishSurvivesPersistFailure(t *testing.T) {
	backend := &fakeBackend{saveErr: errors.New("disk full")}
	s := NewStore(backend)

	if err := s.Establish(model.RoleHouseOwner, profile(), "tok-2"); err != nil {
		t.Fatalf("Establish should succeed despite persist failure, got %v", err)
	}
	if !s.IsAuthenticated() {
		t.Fatalf("in-memory session lost on persist failure")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	backend := &fakeBackend{}
	first := NewStore(backend)
	if err := first.Establish(model.RoleHouseOwner, &model.UserProfile{ID: 2, OwnerName: "Olive"}, "tok-3"); err != nil {
		t.Fatalf("Establish: %v", err)
	}

	second := NewStore(backend)
	if err := second.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !second.IsAuthenticated() {
		t.Fatalf("restored store not authenticated")
	}
	if second.Role() != model.RoleHouseOwner || second.Token() != "tok-3" {
		t.Fatalf("restored wrong state: role=%q token=%q", second.Role(), second.Token())
	}
	p := second.Profile()
	if p == nil || p.OwnerName != "Olive" {
		t.Fatalf("restored wrong profile: %+v", p)
	}
}

func TestRestoreEmptyBackend(t *testing.T) {
	s := NewStore(&fakeBackend{})
	if err := s.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if s.IsAuthenticated() {
		t.Fatalf("empty backend restored an authenticated session")
	}
}

func TestRestoreDiscardsMalformedState(t *testing.T) {
	cases := []fakeBackend{
		{role: "tenant", profile: "{not json", token: "tok"},
		{role: "tenant", profile: `{"id":1}`, token: ""},
		{role: "", profile: `{"id":1}`, token: "tok"},
		{role: "guest", profile: `{"id":1}`, token: "tok"},
	}
	for i := range cases {
		backend := cases[i]
		s := NewStore(&backend)
		if err := s.Restore(); err != nil {
			t.Fatalf("case %d: Restore returned error: %v", i, err)
		}
		if s.IsAuthenticated() {
			t.Fatalf("case %d: malformed state restored as a session", i)
		}
		if backend.deleted != 1 {
			t.Fatalf("case %d: stale rows not removed", i)
		}
	}
}

func TestProfileReturnsCopy(t *testing.T) {
	s := NewStore(nil)
	if err := s.Establish(model.RoleTenant, profile(), "tok"); err != nil {
		t.Fatalf("Establish: %v", err)
	}
	p := s.Profile()
	p.FullName = "Mallory"
	if s.Profile().FullName != "Ada Tenant" {
		t.Fatalf("Profile returned a reference to internal state")
	}
}
