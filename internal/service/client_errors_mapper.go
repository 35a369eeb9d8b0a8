// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/app"
	"github.com/MKhiriev/snapweb-login/models"
)

// FailureMessage translates a login failure into the text shown in a form's
// status region. Remote rejections never reach it: those arrive as error
// envelopes and are shown with [models.Envelope.ErrorMessage].
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}

	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return verrs.Error()
	case errors.Is(err, adapter.ErrTransport):
		return app.MsgTransportFailure
	case errors.Is(err, ErrTokenStore):
		return app.MsgTokenStoreFailure
	default:
		return app.MsgUnexpectedResponse
	}
}

// LoginResultOf extracts the login result of a sync envelope. Any envelope
// that is neither sync nor error, or a sync envelope whose result does not
// decode, yields ErrUnexpectedEnvelope.
func LoginResultOf(env models.Envelope) (models.LoginResult, error) {
	res, err := env.LoginResult()
	if err != nil {
		return models.LoginResult{}, errors.Join(ErrUnexpectedEnvelope, err)
	}
	return res, nil
}
