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

// bookingFormModel asks for a date range (and an optional message) for the
// house the tenant picked in the listing.
type bookingFormModel struct {
	deps       Deps
	house      model.House
	focusIndex int
	inputs     []textinput.Model // 0: from, 1: to, 2: message
	err        error
	busy       bool
}

func newBookingFormModel(deps Deps, house model.House) *bookingFormModel {
	m := &bookingFormModel{
		deps:   deps,
		house:  house,
		inputs: make([]textinput.Model, 3),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 128
		t.Width = 40

		switch i {
		case 0:
			t.Prompt = "From:    "
			t.Placeholder = "2026-09-01"
		case 1:
			t.Prompt = "To:      "
			t.Placeholder = "2027-08-31"
		case 2:
			t.Prompt = "Message: "
		}
		m.inputs[i] = t
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m *bookingFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// bookingSavedMsg reports the outcome of the create call.
type bookingSavedMsg struct {
	err error
}

func (m *bookingFormModel) submit() tea.Cmd {
	req := api.BookingRequest{
		HouseID:  m.house.ID,
		FromDate: m.inputs[0].Value(),
		ToDate:   m.inputs[1].Value(),
		Message:  m.inputs[2].Value(),
	}
	deps := m.deps
	return func() tea.Msg {
		_, err := deps.API.CreateBooking(context.Background(), req)
		return bookingSavedMsg{err: err}
	}
}

func (m *bookingFormModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case bookingSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		return func() tea.Msg {
			return statusMsg{text: i18n.T("bookings.created")}
		}

	case tea.KeyMsg:
		if m.busy {
			return nil
		}
		switch msg.String() {
		case "esc":
			return func() tea.Msg { return backToMenuMsg{} }

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
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
				m.focusIndex = len(m.inputs)
			} else if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			}

			cmds := make([]tea.Cmd, 0, len(m.inputs))
			for i := range m.inputs {
				if i == m.focusIndex {
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

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m *bookingFormModel) View() string {
	s := titleStyle.Render(i18n.T("tui.booking_form.title")) + "\n\n"
	s += specialStyle.Render(m.house.Address) + "  " + helpStyle.Render(m.house.Location()) + "\n\n"

	for i := range m.inputs {
		s += m.inputs[i].View() + "\n"
	}

	submit := i18n.T("tui.form.submit")
	if m.focusIndex == len(m.inputs) {
		submit = selectedItemStyle.Render("[ " + submit + " ]")
	} else {
		submit = helpStyle.Render("[ " + submit + " ]")
	}
	s += "\n" + submit + "\n"

	if m.busy {
		s += "\n" + helpStyle.Render(i18n.T("tui.saving")) + "\n"
	}
	if m.err != nil {
		s += "\n" + errorStyle.Render(m.err.Error()) + "\n"
	}

	s += "\n" + helpStyle.Render(i18n.T("tui.help.form"))
	return s
}
