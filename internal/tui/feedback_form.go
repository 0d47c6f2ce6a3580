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

// feedbackFormModel lets a tenant leave a review for a house they know the
// id of (the houses list shows ids).
type feedbackFormModel struct {
	deps       Deps
	focusIndex int
	inputs     []textinput.Model // 0: house id, 1: rating, 2: message
	err        error
	busy       bool
}

func newFeedbackFormModel(deps Deps) *feedbackFormModel {
	m := &feedbackFormModel{
		deps:   deps,
		inputs: make([]textinput.Model, 3),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.Width = 40

		switch i {
		case 0:
			t.Prompt = "House #: "
			t.Placeholder = "7"
			t.CharLimit = 8
		case 1:
			t.Prompt = "Rating:  "
			t.Placeholder = "1-5"
			t.CharLimit = 1
		case 2:
			t.Prompt = "Message: "
			t.CharLimit = 255
		}
		m.inputs[i] = t
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m *feedbackFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// feedbackSavedMsg reports the outcome of the create call.
type feedbackSavedMsg struct {
	err error
}

func (m *feedbackFormModel) submit() tea.Cmd {
	houseID, err := strconv.Atoi(m.inputs[0].Value())
	if err != nil {
		return func() tea.Msg { return feedbackSavedMsg{err: err} }
	}
	rating := 0
	if v := m.inputs[1].Value(); v != "" {
		rating, err = strconv.Atoi(v)
		if err != nil {
			return func() tea.Msg { return feedbackSavedMsg{err: err} }
		}
	}

	req := api.FeedbackRequest{
		HouseID: houseID,
		Message: m.inputs[2].Value(),
		Rating:  rating,
	}
	deps := m.deps
	return func() tea.Msg {
		_, err := deps.API.CreateFeedback(context.Background(), req)
		return feedbackSavedMsg{err: err}
	}
}

func (m *feedbackFormModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case feedbackSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		return func() tea.Msg {
			return statusMsg{text: i18n.T("feedback.created")}
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

func (m *feedbackFormModel) View() string {
	s := titleStyle.Render(i18n.T("tui.feedback_form.title")) + "\n\n"

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
