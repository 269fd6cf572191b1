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
	editFirstName = iota
	editLastName
	editEmail
)

// EditProfileModel edits the name and email of the signed-in user. Only the
// fields that differ from the loaded profile are sent.
type EditProfileModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	original   models.PublicUser
	form       focusRing
	submitting bool
	errMsg     string
}

func NewEditProfileModel(ctx context.Context, server adapter.ServerAdapter) *EditProfileModel {
	inputs := make([]textinput.Model, 3)
	inputs[editFirstName] = newInput("first name", false)
	inputs[editLastName] = newInput("last name", false)
	inputs[editEmail] = newInput("email", false)
	inputs[editFirstName].Focus()

	return &EditProfileModel{
		ctx:    ctx,
		server: server,
		form:   focusRing{inputs: inputs},
	}
}

func (m *EditProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editProfileMsg:
		m.load(msg.user)
		return m, textinput.Blink

	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg {
			return NavigateTo{Page: pageProfile, Payload: profileLoadedMsg{user: msg.user}}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageProfile} }
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req, changed := m.request()
			if !changed {
				m.errMsg = "nothing to change"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(req)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *EditProfileModel) View() string {
	body := renderForm([]string{"First name", "Last name", "Email"}, m.form.inputs, m.submitting, "Save", m.errMsg)
	return renderPage("EDIT PROFILE", body, "esc: cancel │ tab: next field │ enter: save")
}

func (m *EditProfileModel) load(user models.PublicUser) {
	m.original = user
	m.submitting = false
	m.errMsg = ""
	m.form.reset()
	m.form.inputs[editFirstName].SetValue(user.FirstName)
	m.form.inputs[editLastName].SetValue(user.LastName)
	m.form.inputs[editEmail].SetValue(user.Email)
}

func (m *EditProfileModel) request() (models.UpdateProfileRequest, bool) {
	var req models.UpdateProfileRequest
	changed := false

	if v := strings.TrimSpace(m.form.inputs[editFirstName].Value()); v != m.original.FirstName {
		req.FirstName = &v
		changed = true
	}
	if v := strings.TrimSpace(m.form.inputs[editLastName].Value()); v != m.original.LastName {
		req.LastName = &v
		changed = true
	}
	if v := strings.TrimSpace(m.form.inputs[editEmail].Value()); v != m.original.Email {
		req.Email = &v
		changed = true
	}

	return req, changed
}

func (m *EditProfileModel) cmdSave(req models.UpdateProfileRequest) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		user, err := server.UpdateProfile(ctx, req)
		return profileSavedMsg{user: user, err: err}
	}
}
