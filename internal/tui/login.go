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

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login on submission.
// A successful login opens the profile page.
type LoginModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	form       focusRing
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, server adapter.ServerAdapter) *LoginModel {
	inputs := []textinput.Model{
		newInput("email", false),
		newInput("password", true),
	}
	inputs[0].Focus()

	return &LoginModel{
		ctx:    ctx,
		server: server,
		form:   focusRing{inputs: inputs},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResult: clears submitting state and either reports the error or
//     resets the form and opens the profile.
//   - esc: navigates back to the menu.
//   - tab / shift+tab: moves focus between inputs.
//   - enter: validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResult); ok {
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

			email := strings.TrimSpace(m.form.inputs[0].Value())
			password := m.form.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	body := renderForm([]string{"Email", "Password"}, m.form.inputs, m.submitting, "Log in", m.errMsg)
	return renderPage("LOG IN", body, "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		resp, err := server.Login(ctx, models.LoginRequest{Email: email, Password: password})
		if err != nil {
			return loginResult{err: err}
		}

		var user models.PublicUser
		if resp.User != nil {
			user = *resp.User
		}
		return loginResult{user: user}
	}
}
