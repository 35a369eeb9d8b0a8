// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/snapweb-login/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel hosts the login form:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window
// 3) finishes the program once the form is done or torn down
type RootModel struct {
	login *LoginView

	quitByUser    bool
	authenticated bool
	buildInfo     models.AppBuildInfo

	showBuildInfo bool
}

func NewRootModel(login *LoginView, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		login:     login,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.login.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			r.login.Remove()
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(k, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg.(type) {
	case LoginDone:
		r.authenticated = true
		return r, tea.Quit
	case LoginAborted:
		r.quitByUser = true
		return r, tea.Quit
	}

	_, cmd := r.login.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.login.View()
}
