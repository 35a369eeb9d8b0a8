// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/snapweb-login/models"
)

// ActivateMsg activates a control of the login form by its hook name, the
// way a click on the control would.
type ActivateMsg struct {
	Control string
}

// LoginDone is emitted once the macaroon of a successful login is stored.
type LoginDone struct{}

// LoginAborted is emitted when the form is torn down by the user.
type LoginAborted struct{}

type loginSavedMsg struct {
	env models.Envelope
	err error
}

type macaroonStoredMsg struct {
	err error
}
