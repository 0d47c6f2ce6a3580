// Copyright (c) 2026 ToeiRei
// Rentmaster - property rental management client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/rentmaster/internal/api"
	"github.com/toeirei/rentmaster/internal/i18n"
)

// houseFormModel is the owner's add-listing form. Image upload stays a CLI
// concern (`rentmaster houses add --image`); a terminal form has no file
// picker worth the complexity here.
type houseFormModel struct {
	deps       Deps
	focusIndex int
	inputs     []textinput.Model // 0: address, 1: city, 2: district, 3: state, 4: type, 5: price, 6: rooms, 7: description
	err        error
	busy       bool
}

func newHouseFormModel(deps Deps) *houseFormModel {
	m := &houseFormModel{
		deps:   deps,
		inputs: make([]textinput.Model, 8),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 128
		t.Width = 40

		switch i {
		case 0:
			t.Prompt = "Address:     "
			t.Placeholder = "12 Elm Street"
		case 1:
			t.Prompt = "City:        "
		case 2:
			t.Prompt = "District:    "
		case 3:
			t.Prompt = "State:       "
		case 4:
			t.Prompt = "Type:        "
			t.Placeholder = "apartment"
		case 5:
			t.Prompt = "Price:       "
			t.Placeholder = "850"
		case 6:
			t.Prompt = "Rooms:       "
			t.Placeholder = "3"
		case 7:
			t.Prompt = "Description: "
		}
		m.inputs[i] = t
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m *houseFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// houseSavedMsg reports the outcome of the create call.
type houseSavedMsg struct {
	err error
}

func (m *houseFormModel) submit() tea.Cmd {
	price, err := strconv.ParseFloat(m.inputs[5].Value(), 64)
	if err != nil {
		return func() tea.Msg { return houseSavedMsg{err: err} }
	}
	rooms, err := strconv.Atoi(m.inputs[6].Value())
	if err != nil {
		return func() tea.Msg { return houseSavedMsg{err: err} }
	}

	form := api.HouseForm{
		Address:      m.inputs[0].Value(),
		City:         m.inputs[1].Value(),
		District:     m.inputs[2].Value(),
		State:        m.inputs[3].Value(),
		HouseType:    m.inputs[4].Value(),
		Price:        price,
		Rooms:        rooms,
		Descriptions: m.inputs[7].Value(),
	}
	deps := m.deps
	return func() tea.Msg {
		_, err := deps.API.CreateHouse(context.Background(), form)
		return houseSavedMsg{err: err}
	}
}

func (m *houseFormModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case houseSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		return func() tea.Msg {
			return statusMsg{text: i18n.T("houses.created")}
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

func (m *houseFormModel) View() string {
	s := titleStyle.Render(i18n.T("tui.house_form.title")) + "\n\n"

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
