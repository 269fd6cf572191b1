// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/passport-api/models"

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// Notice is shown once in the status line of the menu.
type Notice struct {
	Text string
}

type loginResult struct {
	user models.PublicUser
	err  error
}

type registerResult struct {
	user models.PublicUser
	err  error
}

type profileLoadedMsg struct {
	user models.PublicUser
	err  error
}

type editProfileMsg struct {
	user models.PublicUser
}

type profileSavedMsg struct {
	user models.PublicUser
	err  error
}

type loggedOutMsg struct {
	err error
}
