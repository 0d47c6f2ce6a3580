// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
)

// authFormMode selects which face of the form is active.
type authFormMode int

const (
	modeLogin authFormMode = iota
	modeRegister
)

// roles in the order the picker cycles through them. Registration excludes
// administrators; their accounts are provisioned server-side.
var loginRoles = []model.Role{model.RoleTenant, model.RoleHouseOwner, model.RoleAdministrator}
var registerRoles = []model.Role{model.RoleTenant, model.RoleHouseOwner}

// Register-mode input indices.
const (
	regName = iota
	regEmail
	regMobile
	regAddress
	regPassword
)

// loginFormModel is the combined login/registration form: a mode tab row, a
// role picker, and the mode's inputs. Login takes an identifier (email, or
// username for administrators) and a password; registration adds the
// profile fields the server expects for new tenants and owners.
type loginFormModel struct {
	deps       Deps
	mode       authFormMode
	roleIdx    int
	focusIndex int // 0: mode tabs, 1: role picker, 2..: inputs, last: submit
	inputs     []textinput.Model
	err        error
	busy       bool
}

func newLoginFormModel(deps Deps) *loginFormModel {
	m := &loginFormModel{deps: deps, mode: modeLogin}
	m.buildInputs()
	return m
}

func (m *loginFormModel) roles() []model.Role {
	if m.mode == modeRegister {
		return registerRoles
	}
	return loginRoles
}

func (m *loginFormModel) role() model.Role {
	return m.roles()[m.roleIdx]
}

// submitIndex is the focus position of the submit row.
func (m *loginFormModel) submitIndex() int {
	return len(m.inputs) + 2
}

// buildInputs (re)creates the inputs for the active mode. Switching modes
// discards whatever was typed; the two faces share no fields positionally.
func (m *loginFormModel) buildInputs() {
	n := 2
	if m.mode == modeRegister {
		n = 5
	}
	m.inputs = make([]textinput.Model, n)
	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 64
		t.Width = 40
		m.inputs[i] = t
	}

	if m.mode == modeRegister {
		m.inputs[regEmail].Prompt = i18n.T("tui.login.prompt.email")
		m.inputs[regEmail].Placeholder = "tenant@example.com"
		m.inputs[regMobile].Prompt = i18n.T("tui.register.prompt.mobile")
		m.inputs[regAddress].Prompt = i18n.T("tui.register.prompt.address")
		m.inputs[regAddress].CharLimit = 128
		m.inputs[regPassword].Prompt = i18n.T("tui.login.prompt.password")
		m.inputs[regPassword].EchoMode = textinput.EchoPassword
		m.inputs[regPassword].EchoCharacter = '*'
	} else {
		m.inputs[1].Prompt = i18n.T("tui.login.prompt.password")
		m.inputs[1].EchoMode = textinput.EchoPassword
		m.inputs[1].EchoCharacter = '*'
	}
	m.syncPrompts()
}

// syncPrompts adjusts the role-dependent prompts: the login identifier is a
// username for administrators, and the registration name field is the owner
// name for house owners.
func (m *loginFormModel) syncPrompts() {
	if m.mode == modeRegister {
		if m.role() == model.RoleHouseOwner {
			m.inputs[regName].Prompt = i18n.T("tui.register.prompt.owner_name")
		} else {
			m.inputs[regName].Prompt = i18n.T("tui.register.prompt.full_name")
		}
		return
	}
	if m.role() == model.RoleAdministrator {
		m.inputs[0].Prompt = i18n.T("tui.login.prompt.username")
		m.inputs[0].Placeholder = "admin"
	} else {
		m.inputs[0].Prompt = i18n.T("tui.login.prompt.email")
		m.inputs[0].Placeholder = "tenant@example.com"
	}
}

func (m *loginFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// authDoneMsg carries the outcome of the login or register command.
type authDoneMsg struct {
	err error
}

// validate checks the mode's required fields before any network call.
func (m *loginFormModel) validate() error {
	if m.mode == modeRegister {
		if m.inputs[regName].Value() == "" ||
			m.inputs[regEmail].Value() == "" ||
			m.inputs[regPassword].Value() == "" {
			return errMissingFields{}
		}
		return nil
	}
	if m.inputs[0].Value() == "" || m.inputs[1].Value() == "" {
		return errMissingCredentials{}
	}
	return nil
}

func (m *loginFormModel) submit() tea.Cmd {
	role := m.role()
	deps := m.deps

	if m.mode == modeRegister {
		reg := api.Registration{
			EmailAddress: m.inputs[regEmail].Value(),
			Password:     m.inputs[regPassword].Value(),
			MobileNumber: m.inputs[regMobile].Value(),
			Address:      m.inputs[regAddress].Value(),
		}
		if role == model.RoleHouseOwner {
			reg.OwnerName = m.inputs[regName].Value()
		} else {
			reg.FullName = m.inputs[regName].Value()
		}
		return func() tea.Msg {
			return authDoneMsg{err: deps.Auth.Register(context.Background(), role, reg)}
		}
	}

	creds := api.Credentials{Password: m.inputs[1].Value()}
	if role == model.RoleAdministrator {
		creds.Username = m.inputs[0].Value()
	} else {
		creds.EmailAddress = m.inputs[0].Value()
	}
	return func() tea.Msg {
		return authDoneMsg{err: deps.Auth.Login(context.Background(), role, creds)}
	}
}

func (m *loginFormModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		return func() tea.Msg { return sessionChangedMsg{} }

	case tea.KeyMsg:
		if m.busy {
			return nil
		}
		switch msg.String() {
		case "esc":
			return func() tea.Msg { return backToMenuMsg{} }

		case "left", "right":
			switch m.focusIndex {
			case 0:
				if m.mode == modeLogin {
					m.mode = modeRegister
				} else {
					m.mode = modeLogin
				}
				// The register picker has no administrator slot.
				if m.roleIdx >= len(m.roles()) {
					m.roleIdx = 0
				}
				m.err = nil
				m.buildInputs()
				return nil
			case 1:
				roles := m.roles()
				if msg.String() == "right" {
					m.roleIdx = (m.roleIdx + 1) % len(roles)
				} else {
					m.roleIdx = (m.roleIdx + len(roles) - 1) % len(roles)
				}
				m.syncPrompts()
				return nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Submit when enter is pressed on the submit row.
			if s == "enter" && m.focusIndex == m.submitIndex() {
				if err := m.validate(); err != nil {
					m.err = err
					return nil
				}
				m.busy = true
				m.err = nil
				return m.submit()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex < 0 {
				m.focusIndex = m.submitIndex()
			} else if m.focusIndex > m.submitIndex() {
				m.focusIndex = 0
			}

			cmds := make([]tea.Cmd, 0, len(m.inputs))
			for i := range m.inputs {
				if i+2 == m.focusIndex {
					cmds = append(cmds, m.inputs[i].Focus())
					m.inputs[i].TextStyle = focusedStyle
				} else {
					m.inputs[i].Blur()
					m.inputs[i].TextStyle = itemStyle
				}
			}
			return tea.Batch(cmds...)
		}
	}

	// Pass everything else to the focused input.
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// errMissingCredentials is a local sentinel for the empty login form.
type errMissingCredentials struct{}

func (errMissingCredentials) Error() string {
	return i18n.T("tui.login.missing_credentials")
}

// errMissingFields is a local sentinel for an incomplete registration.
type errMissingFields struct{}

func (errMissingFields) Error() string {
	return i18n.T("tui.register.missing_fields")
}

func (m *loginFormModel) View() string {
	title := i18n.T("tui.login.title")
	if m.mode == modeRegister {
		title = i18n.T("tui.register.title")
	}
	s := titleStyle.Render(title) + "\n\n"

	tabs := ""
	for i, label := range []string{i18n.T("tui.login.mode.login"), i18n.T("tui.login.mode.register")} {
		if authFormMode(i) == m.mode {
			label = selectedItemStyle.Render("[" + label + "]")
		} else {
			label = helpStyle.Render(" " + label + " ")
		}
		tabs += label + " "
	}
	if m.focusIndex == 0 {
		tabs = focusedStyle.Render("> ") + tabs
	} else {
		tabs = "  " + tabs
	}
	s += tabs + "\n"

	roleLine := i18n.T("tui.login.prompt.role")
	for i, r := range m.roles() {
		label := string(r)
		if i == m.roleIdx {
			label = selectedItemStyle.Render("[" + label + "]")
		} else {
			label = helpStyle.Render(" " + label + " ")
		}
		roleLine += label + " "
	}
	if m.focusIndex == 1 {
		roleLine = focusedStyle.Render("> ") + roleLine
	} else {
		roleLine = "  " + roleLine
	}
	s += roleLine + "\n"

	for i := range m.inputs {
		prefix := "  "
		if m.focusIndex == i+2 {
			prefix = focusedStyle.Render("> ")
		}
		s += prefix + m.inputs[i].View() + "\n"
	}

	submit := i18n.T("tui.login.submit")
	busy := i18n.T("tui.login.busy")
	if m.mode == modeRegister {
		submit = i18n.T("tui.register.submit")
		busy = i18n.T("tui.register.busy")
	}
	if m.focusIndex == m.submitIndex() {
		submit = selectedItemStyle.Render("[ " + submit + " ]")
	} else {
		submit = helpStyle.Render("[ " + submit + " ]")
	}
	s += "\n" + submit + "\n"

	if m.busy {
		s += "\n" + helpStyle.Render(busy) + "\n"
	}
	if m.err != nil {
		s += "\n" + errorStyle.Render(m.err.Error()) + "\n"
	}

	s += "\n" + helpStyle.Render(i18n.T("tui.help.form"))
	return s
}
