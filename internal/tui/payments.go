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

// paymentsLoadedMsg carries the fetched payments.
type paymentsLoadedMsg struct {
	payments []model.Payment
	err      error
}

// paymentsModel is a read-only payment history. Tenants see what they paid,
// owners what they received. Recording a payment is a CLI concern.
type paymentsModel struct {
	deps     Deps
	payments []model.Payment
	cursor   int
	loading  bool
	err      error
}

func newPaymentsModel(deps Deps) *paymentsModel {
	return &paymentsModel{deps: deps, loading: true}
}

func (m *paymentsModel) Init() tea.Cmd {
	return m.fetch()
}

func (m *paymentsModel) fetch() tea.Cmd {
	deps := m.deps
	owner := deps.Sessions.Role() == model.RoleHouseOwner
	return func() tea.Msg {
		var (
			payments []model.Payment
			err      error
		)
		if owner {
			payments, err = deps.API.ListOwnerPayments(context.Background())
		} else {
			payments, err = deps.API.ListTenantPayments(context.Background())
		}
		return paymentsLoadedMsg{payments: payments, err: err}
	}
}

func (m *paymentsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case paymentsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.payments = msg.payments
		if m.cursor >= len(m.payments) {
			m.cursor = 0
		}
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.payments)-1 {
				m.cursor++
			}
		case "r":
			m.loading = true
			return m.fetch()
		}
	}
	return nil
}

func (m *paymentsModel) View() string {
	s := titleStyle.Render(i18n.T("tui.payments.title")) + "\n\n"

	switch {
	case m.loading:
		s += helpStyle.Render(i18n.T("tui.loading")) + "\n"
	case m.err != nil:
		s += errorStyle.Render(m.err.Error()) + "\n"
	case len(m.payments) == 0:
		s += helpStyle.Render(i18n.T("tui.payments.empty")) + "\n"
	default:
		for i, p := range m.payments {
			line := fmt.Sprintf("#%d  %s  %s  %s",
				p.ID, p.DatePayment, i18n.T("tui.payments.house", p.HouseID), p.UserEmail)
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
				line = selectedItemStyle.Render(line)
			} else {
				line = itemStyle.Render(line)
			}
			s += cursor + line + "\n"
			if i == m.cursor && p.Details != "" {
				s += "      " + helpStyle.Render(p.Details) + "\n"
			}
		}
	}

	s += "\n" + helpStyle.Render(i18n.T("tui.payments.help"))
	return s
}
