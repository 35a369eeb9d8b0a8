// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
	options  []tea.ProgramOption
}

// New builds the terminal front. Without options the program runs on the
// alternate screen.
func New(services *service.ClientServices, logger *logger.Logger, options ...tea.ProgramOption) (*TUI, error) {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{services: services, logger: logger, options: options}, nil
}

// LoginFlow runs the login form until the user logs in or leaves it.
// Leaving returns ErrUserQuit.
func (t *TUI) LoginFlow(ctx context.Context) error {
	view := NewLoginView(ctx, t.services.LoginModel)
	root := NewRootModel(view, t.services.AppInfo.GetBuildInfo(ctx))

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, runErr := tea.NewProgram(root, options...).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authenticated {
		t.logger.Info().Str("func", "*TUI.LoginFlow").Msg("login form left without logging in")
		return ErrUserQuit
	}

	t.logger.Info().Str("func", "*TUI.LoginFlow").Msg("user logged in")
	return nil
}
