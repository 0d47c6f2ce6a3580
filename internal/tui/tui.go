// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for Rentmaster.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui // import "github.com/toeirei/rentmaster/internal/tui"

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rentmaster/buildvars"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/auth"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
	"github.com/toeirei/rentmaster/internal/session"
)

// Deps carries the wired application services into the TUI. The TUI never
// constructs these itself; the CLI owns their lifecycle.
type Deps struct {
	API      *api.Client
	Sessions *session.Store
	Auth     *auth.Flow
}

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main dashboard and navigation menu.
	menuView viewState = iota
	loginView
	housesView
	houseFormView
	bookingsView
	bookingFormView
	paymentsView
	feedbackFormView
	adminView
)

// statusMsg sets the transient status line on the menu view.
type statusMsg struct {
	text  string
	isErr bool
}

// sessionChangedMsg signals that a login or logout completed and the menu
// must be rebuilt for the (possibly different) role.
type sessionChangedMsg struct{}

// backToMenuMsg returns from a sub-view to the main menu.
type backToMenuMsg struct{}

// bookHouseMsg jumps from the houses list to the booking form for a house.
type bookHouseMsg struct {
	house model.House
}

// menuItem is one navigable entry on the dashboard.
type menuItem struct {
	label string
	state viewState
	// action, when set, runs instead of switching views (e.g. logout).
	action func(m *mainModel) tea.Cmd
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active
// sub-model.
type mainModel struct {
	deps  Deps
	state viewState

	items  []menuItem
	cursor int

	login        *loginFormModel
	houses       *housesModel
	houseForm    *houseFormModel
	bookings     *bookingsModel
	bookingForm  *bookingFormModel
	payments     *paymentsModel
	feedbackForm *feedbackFormModel
	admin        *adminModel

	status      string
	statusIsErr bool
	width       int
	height      int
}

func newMainModel(deps Deps) mainModel {
	m := mainModel{deps: deps, state: menuView}
	m.items = buildMenu(deps.Sessions)
	return m
}

// buildMenu assembles the role-scoped dashboard entries. Every role sees
// the public house listing; the rest depends on who is logged in.
func buildMenu(sessions *session.Store) []menuItem {
	items := []menuItem{
		{label: i18n.T("tui.menu.browse_houses"), state: housesView},
	}

	switch sessions.Role() {
	case model.RoleTenant:
		items = append(items,
			menuItem{label: i18n.T("tui.menu.my_bookings"), state: bookingsView},
			menuItem{label: i18n.T("tui.menu.my_payments"), state: paymentsView},
			menuItem{label: i18n.T("tui.menu.leave_feedback"), state: feedbackFormView},
		)
	case model.RoleHouseOwner:
		items = append(items,
			menuItem{label: i18n.T("tui.menu.add_house"), state: houseFormView},
			menuItem{label: i18n.T("tui.menu.owner_bookings"), state: bookingsView},
			menuItem{label: i18n.T("tui.menu.owner_payments"), state: paymentsView},
		)
	case model.RoleAdministrator:
		items = append(items,
			menuItem{label: i18n.T("tui.menu.admin_overview"), state: adminView},
		)
	}

	if sessions.IsAuthenticated() {
		items = append(items, menuItem{
			label: i18n.T("tui.menu.logout"),
			action: func(m *mainModel) tea.Cmd {
				return logoutCmd(m.deps)
			},
		})
	} else {
		items = append(items, menuItem{label: i18n.T("tui.menu.login"), state: loginView})
	}
	return items
}

// logoutCmd runs the best-effort logout off the UI goroutine.
func logoutCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		deps.Auth.Logout(context.Background())
		return sessionChangedMsg{}
	}
}

func (m mainModel) Init() tea.Cmd {
	return nil
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case statusMsg:
		m.status = msg.text
		m.statusIsErr = msg.isErr
		m.state = menuView
		m.items = buildMenu(m.deps.Sessions)
		m.cursor = 0
		return m, nil

	case sessionChangedMsg:
		m.state = menuView
		m.items = buildMenu(m.deps.Sessions)
		m.cursor = 0
		if m.deps.Sessions.IsAuthenticated() {
			m.status = i18n.T("tui.status.logged_in", m.deps.Sessions.Profile().DisplayName())
		} else {
			m.status = i18n.T("tui.status.logged_out")
		}
		m.statusIsErr = false
		return m, nil

	case backToMenuMsg:
		m.state = menuView
		return m, nil

	case bookHouseMsg:
		m.bookingForm = newBookingFormModel(m.deps, msg.house)
		m.state = bookingFormView
		return m, m.bookingForm.Init()
	}

	if m.state == menuView {
		return m.updateMenu(msg)
	}
	return m.updateSubView(msg)
}

// updateMenu handles navigation on the dashboard.
func (m mainModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		item := m.items[m.cursor]
		m.status = ""
		if item.action != nil {
			return m, item.action(&m)
		}
		return m.enter(item.state)
	}
	return m, nil
}

// enter switches to a sub-view, constructing a fresh model for it.
func (m mainModel) enter(state viewState) (tea.Model, tea.Cmd) {
	m.state = state
	switch state {
	case loginView:
		m.login = newLoginFormModel(m.deps)
		return m, m.login.Init()
	case housesView:
		m.houses = newHousesModel(m.deps)
		return m, m.houses.Init()
	case houseFormView:
		m.houseForm = newHouseFormModel(m.deps)
		return m, m.houseForm.Init()
	case bookingsView:
		m.bookings = newBookingsModel(m.deps)
		return m, m.bookings.Init()
	case paymentsView:
		m.payments = newPaymentsModel(m.deps)
		return m, m.payments.Init()
	case feedbackFormView:
		m.feedbackForm = newFeedbackFormModel(m.deps)
		return m, m.feedbackForm.Init()
	case adminView:
		m.admin = newAdminModel(m.deps)
		return m, m.admin.Init()
	}
	m.state = menuView
	return m, nil
}

// updateSubView delegates to the active sub-model.
func (m mainModel) updateSubView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case loginView:
		cmd = m.login.Update(msg)
	case housesView:
		cmd = m.houses.Update(msg)
	case houseFormView:
		cmd = m.houseForm.Update(msg)
	case bookingsView:
		cmd = m.bookings.Update(msg)
	case bookingFormView:
		cmd = m.bookingForm.Update(msg)
	case paymentsView:
		cmd = m.payments.Update(msg)
	case feedbackFormView:
		cmd = m.feedbackForm.Update(msg)
	case adminView:
		cmd = m.admin.Update(msg)
	}
	return m, cmd
}

func (m mainModel) View() string {
	if m.state != menuView {
		var body string
		switch m.state {
		case loginView:
			body = m.login.View()
		case housesView:
			body = m.houses.View()
		case houseFormView:
			body = m.houseForm.View()
		case bookingsView:
			body = m.bookings.View()
		case bookingFormView:
			body = m.bookingForm.View()
		case paymentsView:
			body = m.payments.View()
		case feedbackFormView:
			body = m.feedbackForm.View()
		case adminView:
			body = m.admin.View()
		}
		return docStyle.Render(body)
	}

	title := i18n.T("tui.title")
	if len(buildvars.Version) > 0 {
		title += " " + buildvars.Version
	}
	s := mainTitleStyle.Render(title) + "\n"
	s += m.sessionLine() + "\n\n"

	for i, item := range m.items {
		cursor := "  "
		line := itemStyle.Render(item.label)
		if i == m.cursor {
			cursor = "> "
			line = selectedItemStyle.Render(item.label)
		}
		s += cursor + line + "\n"
	}

	if m.status != "" {
		style := successStyle
		if m.statusIsErr {
			style = errorStyle
		}
		s += "\n" + style.Render(m.status) + "\n"
	}

	s += "\n" + helpStyle.Render(i18n.T("tui.help.menu"))
	return docStyle.Render(s)
}

// sessionLine renders who is logged in, if anyone.
func (m mainModel) sessionLine() string {
	if !m.deps.Sessions.IsAuthenticated() {
		return helpStyle.Render(i18n.T("tui.session.anonymous"))
	}
	profile := m.deps.Sessions.Profile()
	role := m.deps.Sessions.Role()
	return helpStyle.Render(i18n.T("tui.session.identity", profile.DisplayName(), string(role)))
}

// Run starts the interactive TUI and blocks until the user quits.
func Run(deps Deps) {
	p := tea.NewProgram(newMainModel(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
