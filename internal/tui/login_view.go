// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/snapweb-login/internal/app"
	"github.com/MKhiriev/snapweb-login/internal/service"
	"github.com/MKhiriev/snapweb-login/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Hook names of the login form. Fields and the control are addressed by
// these names in [LoginView.Text], [LoginView.SetValue] and [ActivateMsg].
const (
	FieldEmailSSO = app.HookEmailSSO
	FieldPassword = app.HookPassword
	ControlLogin  = app.HookLogin
	RegionStatus  = app.HookStatus
)

const (
	focusEmail = iota
	focusPassword
	focusLogin
	focusCount
)

// LoginState is the lifecycle state of a [LoginView].
type LoginState int

const (
	StateIdle LoginState = iota
	StateSubmitting
	StateAuthenticated
)

type eventHandler func(v *LoginView) tea.Cmd

// LoginView is the Bubble Tea login form. It reads its inputs into a
// [service.CredentialModel], submits them asynchronously and shows the
// outcome in its status region.
type LoginView struct {
	ctx   context.Context
	model service.CredentialModel

	inputs []textinput.Model
	focus  int

	state   LoginState
	status  string
	failed  bool
	removed bool

	events map[string]eventHandler
}

// NewLoginView creates a [LoginView] bound to model. The email field receives
// focus immediately; the password field uses masked echo.
func NewLoginView(ctx context.Context, model service.CredentialModel) *LoginView {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	v := &LoginView{
		ctx:    ctx,
		model:  model,
		inputs: []textinput.Model{emailInput, passwordInput},
	}
	v.events = v.bindEvents()

	return v
}

func (v *LoginView) bindEvents() map[string]eventHandler {
	events := map[string]eventHandler{
		ControlLogin: (*LoginView).submit,
	}
	bind := func(handler eventHandler, bindings ...[]string) {
		for _, ks := range bindings {
			for _, k := range ks {
				events[k] = handler
			}
		}
	}
	bind((*LoginView).submit, keys.enter.Keys())
	bind((*LoginView).focusNext, keys.tab.Keys())
	bind((*LoginView).focusPrev, keys.backtab.Keys())
	bind((*LoginView).teardown, keys.esc.Keys())

	return events
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Key presses and [ActivateMsg] are looked up
// in the event table; other keys go to the focused input. Results of a
// submission are dropped once the view is removed.
func (v *LoginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginSavedMsg:
		if v.removed {
			return v, nil
		}
		return v, v.handleSaved(msg)
	case macaroonStoredMsg:
		if v.removed {
			return v, nil
		}
		return v, v.handleStored(msg)
	case ActivateMsg:
		if handler, ok := v.events[msg.Control]; ok {
			return v, handler(v)
		}
		return v, nil
	case tea.KeyMsg:
		if handler, ok := v.events[msg.String()]; ok {
			return v, handler(v)
		}
	}

	if v.removed || v.focus == focusLogin {
		return v, nil
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return v, cmd
}

// View implements [tea.Model].
func (v *LoginView) View() string {
	return renderPage("LOG IN", v.Render(), helpLine(keys.enter, keys.tab, keys.esc, keys.buildInfo))
}

// Render renders the form body: both inputs, the login control and the
// status region.
func (v *LoginView) Render() string {
	var b strings.Builder
	b.WriteString("Email     │ ")
	b.WriteString(v.inputs[focusEmail].View())
	b.WriteString("\n")
	b.WriteString("Password  │ ")
	b.WriteString(v.inputs[focusPassword].View())
	b.WriteString("\n\n")

	control := "[Login]"
	if v.state == StateSubmitting {
		control = "[Login...]"
	}
	if v.focus == focusLogin {
		control = focusedStyle.Render(control)
	}
	b.WriteString(control)
	b.WriteString("\n")

	if v.status != "" {
		b.WriteString("\n")
		if v.failed {
			b.WriteString(errorStyle.Render(v.status))
		} else {
			b.WriteString(v.status)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// Text returns the current content of the element named by hook.
func (v *LoginView) Text(hook string) string {
	switch hook {
	case FieldEmailSSO:
		return v.inputs[focusEmail].Value()
	case FieldPassword:
		return v.inputs[focusPassword].Value()
	case ControlLogin:
		return "Login"
	case RegionStatus:
		return v.status
	default:
		return ""
	}
}

// SetValue fills the input named by hook. Unknown hooks are ignored.
func (v *LoginView) SetValue(hook, value string) {
	switch hook {
	case FieldEmailSSO:
		v.inputs[focusEmail].SetValue(value)
	case FieldPassword:
		v.inputs[focusPassword].SetValue(value)
	}
}

// State returns the lifecycle state of the form.
func (v *LoginView) State() LoginState {
	return v.state
}

// Remove tears the form down: events are unbound, inputs are blurred and
// results of an in-flight submission are dropped when they arrive.
func (v *LoginView) Remove() {
	if v.removed {
		return
	}
	v.removed = true
	v.events = nil
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	v.model.Reset()
}

func (v *LoginView) submit() tea.Cmd {
	if v.state != StateIdle {
		return nil
	}

	email := strings.TrimSpace(v.inputs[focusEmail].Value())
	if err := v.model.Set(models.FieldEmail, email); err != nil {
		v.fail(service.FailureMessage(err))
		return nil
	}
	if err := v.model.Set(models.FieldPassword, v.inputs[focusPassword].Value()); err != nil {
		v.fail(service.FailureMessage(err))
		return nil
	}

	v.state = StateSubmitting
	v.status = app.MsgSubmitting
	v.failed = false

	return v.cmdSave()
}

func (v *LoginView) cmdSave() tea.Cmd {
	ctx := v.ctx
	model := v.model

	return func() tea.Msg {
		env, err := model.Save(ctx)
		return loginSavedMsg{env: env, err: err}
	}
}

func (v *LoginView) cmdStore(res models.LoginResult) tea.Cmd {
	ctx := v.ctx
	model := v.model

	return func() tea.Msg {
		return macaroonStoredMsg{err: model.SetMacaroonCookiesFromResponse(ctx, res)}
	}
}

func (v *LoginView) handleSaved(msg loginSavedMsg) tea.Cmd {
	switch {
	case msg.err != nil:
		v.fail(service.FailureMessage(msg.err))
	case msg.env.IsError():
		v.fail(msg.env.ErrorMessage())
	case msg.env.IsSync():
		res, err := service.LoginResultOf(msg.env)
		if err != nil {
			v.fail(service.FailureMessage(err))
			return nil
		}
		return v.cmdStore(res)
	default:
		v.fail(app.MsgUnexpectedResponse)
	}
	return nil
}

func (v *LoginView) handleStored(msg macaroonStoredMsg) tea.Cmd {
	if msg.err != nil {
		v.fail(service.FailureMessage(msg.err))
		return nil
	}

	v.state = StateAuthenticated
	v.status = app.MsgLoggedIn
	v.failed = false
	return func() tea.Msg { return LoginDone{} }
}

func (v *LoginView) fail(status string) {
	v.state = StateIdle
	v.status = status
	v.failed = true
}

func (v *LoginView) teardown() tea.Cmd {
	v.Remove()
	return func() tea.Msg { return LoginAborted{} }
}

func (v *LoginView) focusNext() tea.Cmd {
	return v.setFocus((v.focus + 1) % focusCount)
}

func (v *LoginView) focusPrev() tea.Cmd {
	return v.setFocus((v.focus - 1 + focusCount) % focusCount)
}

func (v *LoginView) setFocus(next int) tea.Cmd {
	if v.focus < focusLogin {
		v.inputs[v.focus].Blur()
	}
	v.focus = next
	if v.focus < focusLogin {
		return v.inputs[v.focus].Focus()
	}
	return nil
}
