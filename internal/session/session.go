// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package session owns the authenticated identity of the running client:
// the role, the role-shaped profile, and the bearer token. All reads of
// "am I logged in / who am I / what role" go through the Store.
//
// The store is either fully empty or fully populated; no caller can ever
// observe a partially authenticated state. Mutation happens only through
// Establish and Clear, and only the authentication flow is supposed to call
// those.
package session

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/toeirei/rentmaster/internal/logging"
	"github.com/toeirei/rentmaster/internal/model"
)

// ErrIncomplete is returned by Establish when any of role, profile or token
// is missing. Callers must not establish partial sessions.
var ErrIncomplete = errors.New("session: establish requires role, profile and token")

// Backend persists the session across process restarts. The profile travels
// as its JSON text so the backend stays shape-agnostic. Implemented by the
// internal/db store.
type Backend interface {
	SaveSession(role, profile, token string) error
	LoadSession() (role, profile, token string, err error)
	DeleteSession() error
}

// Store is the single authoritative holder of the current session. It is
// safe for concurrent reads; TUI data fetches run on goroutines.
type Store struct {
	mu      sync.RWMutex
	role    model.Role
	profile *model.UserProfile
	token   string

	backend Backend
}

// NewStore returns an empty, unauthenticated store. backend may be nil, in
// which case the session lives only in memory (used by tests).
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Restore loads a persisted session once at startup. A missing session is
// not an error; the store just stays unauthenticated. Malformed persisted
// data (an undecodable profile, an incomplete row set, an unknown role) is
// treated as absent: it is logged, the stale rows are removed, and startup
// proceeds.
func (s *Store) Restore() error {
	if s.backend == nil {
		return nil
	}

	roleStr, profileStr, token, err := s.backend.LoadSession()
	if err != nil {
		return err
	}
	if roleStr == "" && profileStr == "" && token == "" {
		return nil
	}

	role := model.Role(roleStr)
	var profile model.UserProfile
	decodeErr := json.Unmarshal([]byte(profileStr), &profile)

	if roleStr == "" || token == "" || !role.Valid() || decodeErr != nil {
		logging.Warnf("session: discarding malformed persisted session")
		_ = s.backend.DeleteSession()
		return nil
	}

	s.mu.Lock()
	s.role = role
	s.profile = &profile
	s.token = token
	s.mu.Unlock()
	return nil
}

// Establish atomically populates the session and persists it. It fails
// without touching the current state if any of the three parts is missing.
func (s *Store) Establish(role model.Role, profile *model.UserProfile, token string) error {
	if !role.Valid() || profile == nil || token == "" {
		return ErrIncomplete
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
	s.profile = profile
	s.token = token

	if s.backend != nil {
		if err := s.backend.SaveSession(string(role), string(profileJSON), token); err != nil {
			// In-memory state is already consistent; a failed persist only
			// costs the session after a restart.
			logging.Warnf("session: could not persist session: %v", err)
		}
	}
	return nil
}

// Clear atomically empties the session and removes the persisted copy.
// It is idempotent: clearing an empty store is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = ""
	s.profile = nil
	s.token = ""

	if s.backend != nil {
		if err := s.backend.DeleteSession(); err != nil {
			logging.Warnf("session: could not remove persisted session: %v", err)
		}
	}
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Role returns the current role, or "" when unauthenticated.
func (s *Store) Role() model.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// Profile returns a copy of the current profile, or nil when unauthenticated.
func (s *Store) Profile() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// IsAuthenticated reports whether a session is established.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
