// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
)

// Aggregate counts arrive one message per collection so a slow endpoint
// never blocks the rest of the dashboard.

type adminHousesMsg struct {
	houses []model.House
	err    error
}

type adminBookingsMsg struct {
	bookings []model.Booking
	err      error
}

type adminPaymentsMsg struct {
	payments []model.Payment
	err      error
}

type adminFeedbackMsg struct {
	feedback []model.Feedback
	err      error
}

type adminUsersMsg struct {
	tenants []model.UserProfile
	owners  []model.UserProfile
	err     error
}

// adminModel is the administrator's overview dashboard: counts per
// aggregate and a pending-bookings highlight.
type adminModel struct {
	deps Deps

	houses   []model.House
	bookings []model.Booking
	payments []model.Payment
	feedback []model.Feedback
	tenants  []model.UserProfile
	owners   []model.UserProfile

	pendingLoads int
	err          error
}

func newAdminModel(deps Deps) *adminModel {
	return &adminModel{deps: deps}
}

func (m *adminModel) Init() tea.Cmd {
	deps := m.deps
	m.pendingLoads = 5
	return tea.Batch(
		func() tea.Msg {
			houses, err := deps.API.AdminHouses(context.Background())
			return adminHousesMsg{houses: houses, err: err}
		},
		func() tea.Msg {
			bookings, err := deps.API.AdminBookings(context.Background())
			return adminBookingsMsg{bookings: bookings, err: err}
		},
		func() tea.Msg {
			payments, err := deps.API.AdminPayments(context.Background())
			return adminPaymentsMsg{payments: payments, err: err}
		},
		func() tea.Msg {
			feedback, err := deps.API.AdminFeedback(context.Background())
			return adminFeedbackMsg{feedback: feedback, err: err}
		},
		func() tea.Msg {
			tenants, err := deps.API.AdminTenants(context.Background())
			if err != nil {
				return adminUsersMsg{err: err}
			}
			owners, err := deps.API.AdminHouseOwners(context.Background())
			return adminUsersMsg{tenants: tenants, owners: owners, err: err}
		},
	)
}

func (m *adminModel) loaded(err error) {
	m.pendingLoads--
	if err != nil && m.err == nil {
		m.err = err
	}
}

func (m *adminModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case adminHousesMsg:
		m.houses = msg.houses
		m.loaded(msg.err)
	case adminBookingsMsg:
		m.bookings = msg.bookings
		m.loaded(msg.err)
	case adminPaymentsMsg:
		m.payments = msg.payments
		m.loaded(msg.err)
	case adminFeedbackMsg:
		m.feedback = msg.feedback
		m.loaded(msg.err)
	case adminUsersMsg:
		m.tenants = msg.tenants
		m.owners = msg.owners
		m.loaded(msg.err)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return func() tea.Msg { return backToMenuMsg{} }
		case "r":
			m.err = nil
			return m.Init()
		}
	}
	return nil
}

func (m *adminModel) pendingBookings() int {
	n := 0
	for _, b := range m.bookings {
		if b.Status == model.BookingPending {
			n++
		}
	}
	return n
}

func (m *adminModel) View() string {
	s := titleStyle.Render(i18n.T("tui.admin.title")) + "\n\n"

	if m.pendingLoads > 0 {
		s += helpStyle.Render(i18n.T("tui.loading")) + "\n"
		return s
	}
	if m.err != nil {
		s += errorStyle.Render(m.err.Error()) + "\n\n"
	}

	row := func(key string, n int) string {
		return fmt.Sprintf("  %-18s %s\n", i18n.T(key), specialStyle.Render(fmt.Sprintf("%d", n)))
	}
	s += row("tui.admin.houses", len(m.houses))
	s += row("tui.admin.bookings", len(m.bookings))
	s += row("tui.admin.payments", len(m.payments))
	s += row("tui.admin.feedback", len(m.feedback))
	s += row("tui.admin.tenants", len(m.tenants))
	s += row("tui.admin.owners", len(m.owners))

	if pending := m.pendingBookings(); pending > 0 {
		s += "\n" + specialStyle.Render(i18n.T("tui.admin.pending", pending)) + "\n"
	}

	s += "\n" + helpStyle.Render(i18n.T("tui.admin.help"))
	return s
}
