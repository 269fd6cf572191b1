// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/passport-api/internal/adapter"
	"github.com/MKhiriev/passport-api/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerEmail = iota
	registerFirstName
	registerLastName
	registerPassword
	registerRepeat
)

// RegisterModel is the Bubble Tea model for the registration screen.
// Registration signs the user in, so success opens the profile page.
type RegisterModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	form       focusRing
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, server adapter.ServerAdapter) *RegisterModel {
	inputs := make([]textinput.Model, 5)
	inputs[registerEmail] = newInput("email", false)
	inputs[registerFirstName] = newInput("first name", false)
	inputs[registerLastName] = newInput("last name", false)
	inputs[registerPassword] = newInput("password", true)
	inputs[registerRepeat] = newInput("repeat password", true)
	inputs[registerEmail].Focus()

	return &RegisterModel{
		ctx:    ctx,
		server: server,
		form:   focusRing{inputs: inputs},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageProfile, Payload: profileLoadedMsg{user: result.user}}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req := models.RegisterRequest{
				Email:     strings.TrimSpace(m.form.inputs[registerEmail].Value()),
				FirstName: strings.TrimSpace(m.form.inputs[registerFirstName].Value()),
				LastName:  strings.TrimSpace(m.form.inputs[registerLastName].Value()),
				Password:  m.form.inputs[registerPassword].Value(),
			}
			if req.Email == "" || req.FirstName == "" || req.LastName == "" || req.Password == "" {
				m.errMsg = "all fields are required"
				return m, nil
			}
			if req.Password != m.form.inputs[registerRepeat].Value() {
				m.errMsg = "passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{"Email", "First name", "Last name", "Password", "Repeat password"}
	body := renderForm(labels, m.form.inputs, m.submitting, "Register", m.errMsg)
	return renderPage("REGISTRATION", body, "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		resp, err := server.Register(ctx, req)
		if err != nil {
			return registerResult{err: err}
		}

		var user models.PublicUser
		if resp.User != nil {
			user = *resp.User
		}
		return registerResult{user: user}
	}
}
