// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Envelope types returned by the authentication backend.
const (
	EnvelopeTypeSync  = "sync"
	EnvelopeTypeError = "error"
)

// Error kinds observed on the login endpoint. Any other kind is handled the
// same way: its message is shown to the user as-is.
const (
	KindInvalidAuthData = "invalid-auth-data"
	KindLoginRequired   = "login-required"
)

// ErrNotAnErrorEnvelope is returned by [Envelope.ErrorResult] when the
// envelope type is not "error".
var ErrNotAnErrorEnvelope = errors.New("envelope is not an error envelope")

// ErrNotASyncEnvelope is returned by [Envelope.LoginResult] when the envelope
// type is not "sync".
var ErrNotASyncEnvelope = errors.New("envelope is not a sync envelope")

// Envelope is the JSON wrapper around every API response.
//
// StatusCode is the status the backend meant, which may differ from the
// transport status (a transport 400 can carry "status-code": 401), so callers
// must look at Type rather than at the HTTP status.
type Envelope struct {
	Type       string          `json:"type"`
	StatusCode int             `json:"status-code"`
	Status     string          `json:"status"`
	Result     json.RawMessage `json:"result,omitempty"`
}

// LoginResult is the "result" of a successful login.
type LoginResult struct {
	Macaroon   string   `json:"macaroon"`
	Discharges []string `json:"discharges"`
}

// ErrorResult is the "result" of an error envelope. Only Message is shown to
// the user; Kind and Value are kept for logging.
type ErrorResult struct {
	Message string         `json:"message"`
	Kind    string         `json:"kind"`
	Value   map[string]any `json:"value,omitempty"`
}

// IsSync reports whether the envelope carries a successful result.
func (e Envelope) IsSync() bool {
	return e.Type == EnvelopeTypeSync
}

// IsError reports whether the envelope carries an error result.
func (e Envelope) IsError() bool {
	return e.Type == EnvelopeTypeError
}

// LoginResult decodes the result of a sync envelope.
func (e Envelope) LoginResult() (LoginResult, error) {
	if !e.IsSync() {
		return LoginResult{}, fmt.Errorf("%w: type %q", ErrNotASyncEnvelope, e.Type)
	}

	var res LoginResult
	if err := json.Unmarshal(e.Result, &res); err != nil {
		return LoginResult{}, fmt.Errorf("decode login result: %w", err)
	}
	return res, nil
}

// ErrorResult decodes the result of an error envelope.
func (e Envelope) ErrorResult() (ErrorResult, error) {
	if !e.IsError() {
		return ErrorResult{}, fmt.Errorf("%w: type %q", ErrNotAnErrorEnvelope, e.Type)
	}

	var res ErrorResult
	if len(e.Result) == 0 {
		return res, nil
	}
	if err := json.Unmarshal(e.Result, &res); err != nil {
		return ErrorResult{}, fmt.Errorf("decode error result: %w", err)
	}
	return res, nil
}

// ErrorMessage returns the human-readable text of an error envelope:
// result.message when present, otherwise the envelope status.
func (e Envelope) ErrorMessage() string {
	res, err := e.ErrorResult()
	if err == nil && res.Message != "" {
		return res.Message
	}
	return e.Status
}

// NewErrorEnvelope builds an error envelope, used by the web proxy to report
// its own failures in the backend's format.
func NewErrorEnvelope(statusCode int, status, kind, message string) Envelope {
	result, _ := json.Marshal(ErrorResult{Message: message, Kind: kind})
	return Envelope{
		Type:       EnvelopeTypeError,
		StatusCode: statusCode,
		Status:     status,
		Result:     result,
	}
}
