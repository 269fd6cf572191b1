// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal front end of passport-cli.
// It talks to the server only through [adapter.ServerAdapter], so the session
// cookie is shared with the one-shot commands.
package tui

import (
	"context"

	"github.com/MKhiriev/passport-api/internal/adapter"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageProfile  = "profile"
	pageEdit     = "edit"
)

type TUI struct {
	server    adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(server adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{server: server, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	root := t.newRootModel(ctx)

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(root, opts...).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal program stopped")
		return err
	}

	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.server),
		pageRegister: NewRegisterModel(ctx, t.server),
		pageProfile:  NewProfileModel(ctx, t.server),
		pageEdit:     NewEditProfileModel(ctx, t.server),
	}

	return NewRootModel(pages, pageMenu, t.buildInfo, cmdResumeSession(ctx, t.server))
}

// cmdResumeSession opens the profile straight away when a stored cookie is
// still accepted by the server.
func cmdResumeSession(ctx context.Context, server adapter.ServerAdapter) tea.Cmd {
	return func() tea.Msg {
		user, err := server.Profile(ctx)
		if err != nil {
			return nil
		}
		return NavigateTo{Page: pageProfile, Payload: profileLoadedMsg{user: user}}
	}
}
