// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned by [TUI.LoginFlow] when the user left the form
// without logging in.
var ErrUserQuit = errors.New("user quit the login form")
