// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"testing"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	s, err := NewStoreFromDSN("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("NewStoreFromDSN: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	role, profile, token, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession on empty store: %v", err)
	}
	if role != "" || profile != "" || token != "" {
		t.Fatalf("empty store returned values: %q %q %q", role, profile, token)
	}

	if err := s.SaveSession("tenant", `{"id":1}`, "tok-1"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	role, profile, token, err = s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if role != "tenant" || profile != `{"id":1}` || token != "tok-1" {
		t.Fatalf("round trip lost data: %q %q %q", role, profile, token)
	}
}

func TestSaveSessionReplacesPrevious(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveSession("tenant", `{"id":1}`, "tok-1"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := s.SaveSession("house_owner", `{"id":2}`, "tok-2"); err != nil {
		t.Fatalf("SaveSession (second): %v", err)
	}

	role, profile, token, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if role != "house_owner" || profile != `{"id":2}` || token != "tok-2" {
		t.Fatalf("second save did not replace first: %q %q %q", role, profile, token)
	}
}

func TestDeleteSession(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveSession("tenant", `{"id":1}`, "tok"); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := s.DeleteSession(); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	role, profile, token, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if role != "" || profile != "" || token != "" {
		t.Fatalf("session survived delete: %q %q %q", role, profile, token)
	}

	// Deleting an absent session is a no-op.
	if err := s.DeleteSession(); err != nil {
		t.Fatalf("DeleteSession (empty): %v", err)
	}
}

func TestHistory(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.GetHistory(10)
	if err != nil {
		t.Fatalf("GetHistory on empty store: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("empty store has history: %+v", entries)
	}

	for _, action := range []string{"LOGIN", "HOUSE_CREATE", "LOGOUT"} {
		if err := s.LogAction("tenant", action, "details"); err != nil {
			t.Fatalf("LogAction(%s): %v", action, err)
		}
	}

	entries, err = s.GetHistory(2)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("limit not applied: %d entries", len(entries))
	}
	// Newest first.
	if entries[0].Action != "LOGOUT" || entries[1].Action != "HOUSE_CREATE" {
		t.Fatalf("wrong order: %s, %s", entries[0].Action, entries[1].Action)
	}
	if entries[0].Role != "tenant" || entries[0].Timestamp == "" {
		t.Fatalf("entry incomplete: %+v", entries[0])
	}
}

func TestInitDBAndWrappers(t *testing.T) {
	prev := store
	t.Cleanup(func() { store = prev })

	if err := InitDB("sqlite", ":memory:"); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	if !IsInitialized() {
		t.Fatalf("IsInitialized = false after InitDB")
	}

	if err := SaveSession("tenant", `{"id":1}`, "tok"); err != nil {
		t.Fatalf("SaveSession wrapper: %v", err)
	}
	role, _, token, err := LoadSession()
	if err != nil || role != "tenant" || token != "tok" {
		t.Fatalf("LoadSession wrapper: %q %q %v", role, token, err)
	}
	if err := DeleteSession(); err != nil {
		t.Fatalf("DeleteSession wrapper: %v", err)
	}
	if err := LogAction("tenant", "LOGIN", ""); err != nil {
		t.Fatalf("LogAction wrapper: %v", err)
	}
	entries, err := GetHistory(5)
	if err != nil || len(entries) != 1 {
		t.Fatalf("GetHistory wrapper: %v, %d entries", err, len(entries))
	}
	_ = Get().Close()
}

func TestUnsupportedDBType(t *testing.T) {
	if _, err := NewStoreFromDSN("oracle", "dsn"); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
