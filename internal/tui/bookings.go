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

// bookingsLoadedMsg carries the fetched bookings.
type bookingsLoadedMsg struct {
	bookings []model.Booking
	err      error
}

// bookingActionMsg reports the outcome of a status change or cancel.
type bookingActionMsg struct {
	err error
}

// bookingsModel lists bookings. Tenants see their own and can cancel;
// owners see bookings on their houses and can approve or reject pending
// ones.
type bookingsModel struct {
	deps     Deps
	bookings []model.Booking
	cursor   int
	loading  bool
	err      error
}

func newBookingsModel(deps Deps) *bookingsModel {
	return &bookingsModel{deps: deps, loading: true}
}

func (m *bookingsModel) Init() tea.Cmd {
	return m.fetch()
}

func (m *bookingsModel) fetch() tea.Cmd {
	deps := m.deps
	owner := deps.Sessions.Role() == model.RoleHouseOwner
	return func() tea.Msg {
		var (
			bookings []model.Booking
			err      error
		)
		if owner {
			bookings, err = deps.API.ListOwnerBookings(context.Background())
		} else {
			bookings, err = deps.API.ListBookings(context.Background())
		}
		return bookingsLoadedMsg{bookings: bookings, err: err}
	}
}

func (m *bookingsModel) setStatus(status model.BookingStatus) tea.Cmd {
	deps := m.deps
	id := m.bookings[m.cursor].ID
	return func() tea.Msg {
		_, err := deps.API.UpdateBookingStatus(context.Background(), id, status)
		return bookingActionMsg{err: err}
	}
}

func (m *bookingsModel) cancelSelected() tea.Cmd {
	deps := m.deps
	id := m.bookings[m.cursor].ID
	return func() tea.Msg {
		return bookingActionMsg{err: deps.API.DeleteBooking(context.Background(), id)}
	}
}

func (m *bookingsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case bookingsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.bookings = msg.bookings
		if m.cursor >= len(m.bookings) {
			m.cursor = 0
		}
		return nil

	case bookingActionMsg:
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		m.loading = true
		return m.fetch()

	case tea.KeyMsg:
		owner := m.deps.Sessions.Role() == model.RoleHouseOwner
		switch msg.String() {
		case "esc", "q":
			return func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.bookings)-1 {
				m.cursor++
			}
		case "r":
			m.loading = true
			return m.fetch()
		case "a":
			if owner && len(m.bookings) > 0 {
				return m.setStatus(model.BookingApproved)
			}
		case "x":
			if owner && len(m.bookings) > 0 {
				return m.setStatus(model.BookingRejected)
			}
		case "c":
			if !owner && len(m.bookings) > 0 {
				return m.cancelSelected()
			}
		}
	}
	return nil
}

func statusLabel(s model.BookingStatus) string {
	label := i18n.T("bookings.status." + s.String())
	switch s {
	case model.BookingPending:
		return specialStyle.Render(label)
	case model.BookingApproved:
		return successStyle.Render(label)
	case model.BookingRejected:
		return errorStyle.Render(label)
	}
	return label
}

func (m *bookingsModel) View() string {
	title := i18n.T("tui.bookings.title")
	if m.deps.Sessions.Role() == model.RoleHouseOwner {
		title = i18n.T("tui.bookings.title_owner")
	}
	s := titleStyle.Render(title) + "\n\n"

	switch {
	case m.loading:
		s += helpStyle.Render(i18n.T("tui.loading")) + "\n"
	case m.err != nil:
		s += errorStyle.Render(m.err.Error()) + "\n"
	case len(m.bookings) == 0:
		s += helpStyle.Render(i18n.T("tui.bookings.empty")) + "\n"
	default:
		for i, b := range m.bookings {
			house := fmt.Sprintf("#%d", b.HouseID)
			if b.House != nil {
				house = b.House.Address
			}
			line := fmt.Sprintf("#%d  %s  %s → %s  %s",
				b.BookingNumber, house, b.FromDate, b.ToDate, statusLabel(b.Status))
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			s += cursor + line + "\n"
		}
	}

	help := i18n.T("tui.bookings.help_tenant")
	if m.deps.Sessions.Role() == model.RoleHouseOwner {
		help = i18n.T("tui.bookings.help_owner")
	}
	s += "\n" + helpStyle.Render(help)
	return s
}
