// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/snapweb-login/models"
)

// Cookie names: SM holds the root macaroon, SD the discharges.
const (
	cookieMacaroon   = "SM"
	cookieDischarges = "SD"
)

func (h *Handler) setMacaroonCookies(w http.ResponseWriter, m models.Macaroon) error {
	discharges := m.Discharges
	if discharges == nil {
		discharges = []string{}
	}
	sd, err := json.Marshal(discharges)
	if err != nil {
		return fmt.Errorf("encode discharges: %w", err)
	}

	http.SetCookie(w, h.cookie(cookieMacaroon, base64.URLEncoding.EncodeToString([]byte(m.Root))))
	http.SetCookie(w, h.cookie(cookieDischarges, base64.URLEncoding.EncodeToString(sd)))
	return nil
}

func (h *Handler) clearMacaroonCookies(w http.ResponseWriter) {
	for _, name := range []string{cookieMacaroon, cookieDischarges} {
		c := h.cookie(name, "")
		c.MaxAge = -1
		http.SetCookie(w, c)
	}
}

func (h *Handler) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// macaroonFromCookies decodes the SM/SD cookies of r. ok is false when the
// request carries no SM cookie; a present but undecodable pair yields
// ErrInvalidCookie.
func macaroonFromCookies(r *http.Request) (m models.Macaroon, ok bool, err error) {
	sm, err := r.Cookie(cookieMacaroon)
	if errors.Is(err, http.ErrNoCookie) {
		return models.Macaroon{}, false, nil
	}
	if err != nil {
		return models.Macaroon{}, false, fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	root, err := base64.URLEncoding.DecodeString(sm.Value)
	if err != nil || len(root) == 0 {
		return models.Macaroon{}, false, fmt.Errorf("%w: %s", ErrInvalidCookie, cookieMacaroon)
	}
	m.Root = string(root)

	sd, err := r.Cookie(cookieDischarges)
	if errors.Is(err, http.ErrNoCookie) {
		return m, true, nil
	}
	if err != nil {
		return models.Macaroon{}, false, fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	raw, err := base64.URLEncoding.DecodeString(sd.Value)
	if err != nil {
		return models.Macaroon{}, false, fmt.Errorf("%w: %s", ErrInvalidCookie, cookieDischarges)
	}
	if err = json.Unmarshal(raw, &m.Discharges); err != nil {
		return models.Macaroon{}, false, fmt.Errorf("%w: %s: %w", ErrInvalidCookie, cookieDischarges, err)
	}

	return m, true, nil
}
