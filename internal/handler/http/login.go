// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/app"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/metrics"
	"github.com/MKhiriev/snapweb-login/internal/service"
	"github.com/MKhiriev/snapweb-login/internal/store"
	"github.com/MKhiriev/snapweb-login/internal/utils"
	"github.com/MKhiriev/snapweb-login/models"
)

// page is the data of the login and index templates.
type page struct {
	Email   string
	Status  string
	Version string
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetMacaroonFromContext(r.Context()); !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.render(w, r, "index", page{Status: app.MsgLoggedIn})
}

func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", page{})
}

// submitLogin reads the form into a fresh credential model and saves it.
// Every outcome except success re-renders the form with its status message.
func (h *Handler) submitLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	start := time.Now()

	if err := r.ParseForm(); err != nil {
		err = fmt.Errorf("%w: %w", ErrMalformedForm, err)
		log.Err(err).Str("func", "*Handler.submitLogin").Send()
		utils.WriteErrorEnvelope(w, statusFromError(err), app.KindBadRequest, err.Error())
		return
	}

	email := strings.TrimSpace(r.PostForm.Get(app.HookEmailSSO))
	password := r.PostForm.Get(app.HookPassword)

	tokens := store.NewMemoryMacaroonRepository()
	model := h.services.NewLoginModel(tokens)
	defer model.Reset()

	if err := model.Set(models.FieldEmail, email); err != nil {
		h.loginFailed(w, r, email, metrics.LoginUnexpected, start, service.FailureMessage(err))
		return
	}
	if err := model.Set(models.FieldPassword, password); err != nil {
		h.loginFailed(w, r, email, metrics.LoginUnexpected, start, service.FailureMessage(err))
		return
	}

	env, err := model.Save(ctx)
	switch {
	case err != nil:
		h.loginFailed(w, r, email, loginResultOf(err), start, service.FailureMessage(err))
		return
	case env.IsError():
		log.Info().Str("func", "*Handler.submitLogin").Int("status_code", env.StatusCode).Msg("login rejected by backend")
		h.loginFailed(w, r, email, metrics.LoginRejected, start, env.ErrorMessage())
		return
	case !env.IsSync():
		h.loginFailed(w, r, email, metrics.LoginUnexpected, start, app.MsgUnexpectedResponse)
		return
	}

	res, err := service.LoginResultOf(env)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitLogin").Msg("sync envelope without login result")
		h.loginFailed(w, r, email, metrics.LoginUnexpected, start, service.FailureMessage(err))
		return
	}
	if err = model.SetMacaroonCookiesFromResponse(ctx, res); err != nil {
		h.loginFailed(w, r, email, loginResultOf(err), start, service.FailureMessage(err))
		return
	}

	m, err := tokens.LoadMacaroon(ctx)
	if err == nil {
		err = h.setMacaroonCookies(w, m)
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitLogin").Msg("error setting macaroon cookies")
		h.loginFailed(w, r, email, metrics.LoginStoreError, start, app.MsgTokenStoreFailure)
		return
	}

	metrics.ObserveLogin(metrics.LoginAuthenticated, start)
	log.Info().Str("func", "*Handler.submitLogin").Msg("user logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearMacaroonCookies(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) loginFailed(w http.ResponseWriter, r *http.Request, email, result string, start time.Time, status string) {
	metrics.ObserveLogin(result, start)
	h.render(w, r, "login", page{Email: email, Status: status})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data page) {
	data.Version = h.services.AppInfo.GetAppVersion(r.Context())

	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.render").Str("template", name).Send()
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func loginResultOf(err error) string {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return metrics.LoginInvalid
	case errors.Is(err, adapter.ErrTransport):
		return metrics.LoginTransportError
	case errors.Is(err, service.ErrTokenStore):
		return metrics.LoginStoreError
	default:
		return metrics.LoginUnexpected
	}
}
