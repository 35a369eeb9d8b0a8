// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/store"
	"github.com/MKhiriev/snapweb-login/internal/validators"
	"github.com/MKhiriev/snapweb-login/models"
)

// fieldCredentials keys validator failures that are not about one field.
const fieldCredentials = "credentials"

type loginModel struct {
	mu    sync.Mutex
	attrs models.Credentials

	validator validators.Validator
	adapter   adapter.ServerAdapter
	tokens    store.MacaroonRepository

	logger *logger.Logger
}

// NewLoginModel constructs a [CredentialModel]. A successful login is written
// to tokens.
func NewLoginModel(validator validators.Validator, serverAdapter adapter.ServerAdapter, tokens store.MacaroonRepository, logger *logger.Logger) CredentialModel {
	return &loginModel{
		validator: validator,
		adapter:   serverAdapter,
		tokens:    tokens,
		logger:    logger,
	}
}

func (m *loginModel) Set(field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch field {
	case models.FieldEmail:
		m.attrs.Email = value
	case models.FieldPassword:
		m.attrs.Password = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, field)
	}
	return nil
}

func (m *loginModel) Get(field string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch field {
	case models.FieldEmail:
		return m.attrs.Email, nil
	case models.FieldPassword:
		return m.attrs.Password, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAttribute, field)
	}
}

func (m *loginModel) Attributes() models.Credentials {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attrs
}

func (m *loginModel) Validate(creds models.Credentials) models.ValidationErrors {
	err := m.validator.Validate(context.Background(), creds)
	if err == nil {
		return nil
	}

	var verrs models.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs
	}
	return models.ValidationErrors{fieldCredentials: {err.Error()}}
}

func (m *loginModel) Save(ctx context.Context) (models.Envelope, error) {
	log := logger.FromContext(ctx)
	creds := m.Attributes()

	if verrs := m.Validate(creds); len(verrs) > 0 {
		log.Debug().Str("func", "*loginModel.Save").Strs("fields", verrs.Fields()).Msg("credentials rejected locally")
		return models.Envelope{}, verrs
	}

	env, err := m.adapter.Login(ctx, creds)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("save credentials: %w", err)
	}

	return env, nil
}

func (m *loginModel) SetMacaroonCookiesFromResponse(ctx context.Context, res models.LoginResult) error {
	if res.Macaroon == "" {
		return ErrEmptyMacaroon
	}

	if err := m.tokens.SaveMacaroon(ctx, models.NewMacaroon(res)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*loginModel.SetMacaroonCookiesFromResponse").Msg("error storing macaroon")
		return fmt.Errorf("%w: %w", ErrTokenStore, err)
	}

	return nil
}

func (m *loginModel) Reset() {
	m.mu.Lock()
	m.attrs = models.Credentials{}
	m.mu.Unlock()
}
