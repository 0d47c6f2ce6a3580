// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/i18n"
	"github.com/toeirei/rentmaster/internal/model"
)

// housesLoadedMsg carries the fetched house listing.
type housesLoadedMsg struct {
	houses []model.House
	err    error
}

// houseDeletedMsg reports the outcome of a delete.
type houseDeletedMsg struct {
	id  int
	err error
}

// housesModel is the browsable house listing. Tenants can jump to the
// booking form from here; owners and administrators can delete their
// listings.
type housesModel struct {
	deps     Deps
	houses   []model.House
	cursor   int
	expanded bool
	loading  bool
	err      error
}

func newHousesModel(deps Deps) *housesModel {
	return &housesModel{deps: deps, loading: true}
}

func (m *housesModel) Init() tea.Cmd {
	return m.fetch()
}

func (m *housesModel) fetch() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		// The TUI browses the full listing; narrowing is a CLI concern.
		houses, err := deps.API.ListHouses(context.Background(), api.HouseFilters{})
		return housesLoadedMsg{houses: houses, err: err}
	}
}

func (m *housesModel) deleteSelected() tea.Cmd {
	deps := m.deps
	id := m.houses[m.cursor].ID
	admin := deps.Sessions.Role() == model.RoleAdministrator
	return func() tea.Msg {
		var err error
		if admin {
			err = deps.API.AdminDeleteHouse(context.Background(), id)
		} else {
			err = deps.API.DeleteHouse(context.Background(), id)
		}
		return houseDeletedMsg{id: id, err: err}
	}
}

func (m *housesModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case housesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.houses = msg.houses
		if m.cursor >= len(m.houses) {
			m.cursor = 0
		}
		return nil

	case houseDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		m.loading = true
		return m.fetch()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.houses)-1 {
				m.cursor++
			}
		case "enter":
			m.expanded = !m.expanded
		case "r":
			m.loading = true
			return m.fetch()
		case "b":
			if m.deps.Sessions.Role() == model.RoleTenant && len(m.houses) > 0 {
				house := m.houses[m.cursor]
				return func() tea.Msg { return bookHouseMsg{house: house} }
			}
		case "d":
			role := m.deps.Sessions.Role()
			if (role == model.RoleHouseOwner || role == model.RoleAdministrator) && len(m.houses) > 0 {
				return m.deleteSelected()
			}
		}
	}
	return nil
}

func (m *housesModel) View() string {
	s := titleStyle.Render(i18n.T("tui.houses.title")) + "\n\n"

	switch {
	case m.loading:
		s += helpStyle.Render(i18n.T("tui.loading")) + "\n"
	case m.err != nil:
		s += errorStyle.Render(m.err.Error()) + "\n"
	case len(m.houses) == 0:
		s += helpStyle.Render(i18n.T("tui.houses.empty")) + "\n"
	default:
		for i, h := range m.houses {
			line := fmt.Sprintf("#%d  %s — %s  (%s, %d %s, %.2f)",
				h.ID, h.Address, h.Location(), h.HouseType, h.Rooms, i18n.T("tui.houses.rooms"), h.Price)
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
				line = selectedItemStyle.Render(line)
			} else {
				line = itemStyle.Render(line)
			}
			s += cursor + line + "\n"
			if i == m.cursor && m.expanded {
				if h.Descriptions != "" {
					s += "      " + helpStyle.Render(h.Descriptions) + "\n"
				}
				if h.HouseOwner != nil {
					s += "      " + helpStyle.Render(i18n.T("tui.houses.owned_by", h.HouseOwner.DisplayName())) + "\n"
				}
			}
		}
	}

	s += "\n" + helpStyle.Render(m.helpLine())
	return s
}

func (m *housesModel) helpLine() string {
	switch m.deps.Sessions.Role() {
	case model.RoleTenant:
		return i18n.T("tui.houses.help_tenant")
	case model.RoleHouseOwner, model.RoleAdministrator:
		return i18n.T("tui.houses.help_owner")
	}
	return i18n.T("tui.houses.help")
}
