// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/passport-api/internal/adapter"
	"github.com/MKhiriev/passport-api/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var writeClipboard = clipboard.WriteAll

// ProfileModel shows the signed-in user and offers the session actions.
type ProfileModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	user    models.PublicUser
	loading bool
	status  string
	errMsg  string
}

func NewProfileModel(ctx context.Context, server adapter.ServerAdapter) *ProfileModel {
	return &ProfileModel{ctx: ctx, server: server}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if sessionLost(msg.err) {
				return m, navigateToMenu("session expired, please log in again")
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.errMsg = ""
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = models.PublicUser{}
		m.status = ""
		return m, navigateToMenu("logged out")

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.refresh):
			m.loading = true
			m.status = ""
			return m, m.cmdLoad()
		case key.Matches(msg, keys.edit):
			user := m.user
			return m, func() tea.Msg { return NavigateTo{Page: pageEdit, Payload: editProfileMsg{user: user}} }
		case key.Matches(msg, keys.copy):
			if err := writeClipboard(m.user.Email); err != nil {
				m.errMsg = "copy failed: " + err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.status = "email copied"
			return m, nil
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *ProfileModel) View() string {
	if m.loading {
		return renderPage("PROFILE", "loading...", "")
	}

	created := "-"
	if !m.user.CreatedAt.IsZero() {
		created = m.user.CreatedAt.Local().Format(time.DateTime)
	}

	body := renderTable(
		fieldHeader,
		[]string{"ID", "Email", "First name", "Last name", "Role", "Created"},
		[]string{
			strconv.FormatInt(m.user.ID, 10),
			valueOrDash(m.user.Email),
			valueOrDash(m.user.FirstName),
			valueOrDash(m.user.LastName),
			valueOrDash(m.user.Role.String()),
			created,
		},
	)
	if m.status != "" {
		body += "\nOK: " + m.status + "\n"
	}
	if m.errMsg != "" {
		body += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}

	return renderPage("PROFILE", body, "r: refresh │ e: edit │ c: copy email │ l: log out │ q: quit")
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		user, err := server.Profile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return loggedOutMsg{err: server.Logout(ctx)}
	}
}

func navigateToMenu(notice string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: pageMenu, Payload: Notice{Text: notice}}
	}
}
