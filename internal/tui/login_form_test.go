// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/auth"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
	"github.com/toeirei/rentmaster/internal/session"
)

// newFormDeps wires a form against a test server. The session lives only in
// memory.
func newFormDeps(t *testing.T, handler http.Handler) Deps {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sessions := session.NewStore(nil)
	client := api.New(srv.URL, sessions)
	return Deps{
		API:      client,
		Sessions: sessions,
		Auth:     auth.New(client, sessions, nil),
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoginFormRegisterSubmits(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"tenant": map[string]any{
				"id":            1,
				"full_name":     "Ada Example",
				"email_address": "ada@example.com",
			},
		})
	})
	deps := newFormDeps(t, handler)

	m := newLoginFormModel(deps)
	m.Update(key("right")) // mode tabs focused initially; switch to register

	if m.mode != modeRegister {
		t.Fatalf("mode = %v, want register", m.mode)
	}
	if len(m.inputs) != 5 {
		t.Fatalf("register face has %d inputs, want 5", len(m.inputs))
	}
	if len(m.roles()) != 2 {
		t.Fatalf("register role picker offers %d roles, want 2", len(m.roles()))
	}

	m.inputs[regName].SetValue("Ada Example")
	m.inputs[regEmail].SetValue("ada@example.com")
	m.inputs[regMobile].SetValue("555-0100")
	m.inputs[regAddress].SetValue("1 Main St")
	m.inputs[regPassword].SetValue("secret")

	m.focusIndex = m.submitIndex()
	cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatalf("enter on submit returned no command, err=%v", m.err)
	}
	msg := cmd()
	done, ok := msg.(authDoneMsg)
	if !ok {
		t.Fatalf("command returned %T, want authDoneMsg", msg)
	}
	if done.err != nil {
		t.Fatalf("register failed: %v", done.err)
	}

	if gotPath != "/tenant/register" {
		t.Fatalf("request path = %q, want /tenant/register", gotPath)
	}
	if gotBody["full_name"] != "Ada Example" {
		t.Fatalf("full_name = %v", gotBody["full_name"])
	}
	if gotBody["mobile_number"] != "555-0100" {
		t.Fatalf("mobile_number = %v", gotBody["mobile_number"])
	}
	if !deps.Sessions.IsAuthenticated() {
		t.Fatalf("session not established after registration")
	}
}

func TestLoginFormRegisterOwnerUsesOwnerName(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-456",
			"house_owner": map[string]any{
				"id":         2,
				"owner_name": "Acme Rentals",
			},
		})
	})
	deps := newFormDeps(t, handler)

	m := newLoginFormModel(deps)
	m.Update(key("right")) // switch to register
	m.focusIndex = 1
	m.Update(key("right")) // cycle role picker to house_owner

	if m.role() != model.RoleHouseOwner {
		t.Fatalf("role = %v, want house_owner", m.role())
	}
	if m.inputs[regName].Prompt != i18n.T("tui.register.prompt.owner_name") {
		t.Fatalf("name prompt = %q, want owner name prompt", m.inputs[regName].Prompt)
	}

	m.inputs[regName].SetValue("Acme Rentals")
	m.inputs[regEmail].SetValue("acme@example.com")
	m.inputs[regPassword].SetValue("secret")

	m.focusIndex = m.submitIndex()
	cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatalf("enter on submit returned no command, err=%v", m.err)
	}
	if done := cmd().(authDoneMsg); done.err != nil {
		t.Fatalf("register failed: %v", done.err)
	}
	if gotPath != "/house-owner/register" {
		t.Fatalf("request path = %q, want /house-owner/register", gotPath)
	}
	if gotBody["owner_name"] != "Acme Rentals" {
		t.Fatalf("owner_name = %v", gotBody["owner_name"])
	}
	if _, ok := gotBody["full_name"]; ok {
		t.Fatalf("owner registration must not carry full_name")
	}
}

func TestLoginFormRegisterValidatesBeforeNetwork(t *testing.T) {
	calls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	deps := newFormDeps(t, handler)

	m := newLoginFormModel(deps)
	m.Update(key("right")) // switch to register
	m.focusIndex = m.submitIndex()

	if cmd := m.Update(key("enter")); cmd != nil {
		t.Fatalf("incomplete registration produced a command")
	}
	if m.err == nil {
		t.Fatalf("expected a validation error")
	}
	if calls != 0 {
		t.Fatalf("incomplete registration reached the network (%d calls)", calls)
	}
}

func TestLoginFormModeToggleClampsRole(t *testing.T) {
	deps := newFormDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	m := newLoginFormModel(deps)
	m.focusIndex = 1
	m.Update(key("left")) // cycle login picker backwards onto administrator
	if m.role() != model.RoleAdministrator {
		t.Fatalf("role = %v, want administrator", m.role())
	}

	m.focusIndex = 0
	m.Update(key("right")) // administrator has no register slot
	if m.mode != modeRegister {
		t.Fatalf("mode = %v, want register", m.mode)
	}
	if m.role() == model.RoleAdministrator {
		t.Fatalf("register picker still offers administrator")
	}
}

func TestLoginFormPromptsComeFromCatalog(t *testing.T) {
	i18n.SetLang("en")
	deps := newFormDeps(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	m := newLoginFormModel(deps)
	if m.inputs[0].Prompt == "tui.login.prompt.email" {
		t.Fatalf("email prompt fell back to its message ID; missing catalog entry")
	}
	if m.inputs[1].Prompt == "tui.login.prompt.password" {
		t.Fatalf("password prompt fell back to its message ID; missing catalog entry")
	}

	m.focusIndex = 1
	m.Update(key("left")) // administrator
	if m.inputs[0].Prompt != i18n.T("tui.login.prompt.username") {
		t.Fatalf("administrator identifier prompt = %q", m.inputs[0].Prompt)
	}
	if m.inputs[0].Prompt == "tui.login.prompt.username" {
		t.Fatalf("username prompt fell back to its message ID; missing catalog entry")
	}
}
