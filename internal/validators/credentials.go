// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/snapweb-login/models"
)

// CredentialsValidator checks a login form before it is submitted.
// Unlike a fail-fast validator it collects every problem, so a form can show
// all invalid fields at once. The returned error is a models.ValidationErrors.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldEmail, models.FieldPassword}
	}

	errs := models.ValidationErrors{}
	for _, f := range fields {
		switch f {
		case models.FieldEmail:
			if c.Email == "" {
				errs.Add(models.FieldEmail, MsgRequired)
			} else if !isEmail(c.Email) {
				errs.Add(models.FieldEmail, MsgInvalidEmail)
			}
		case models.FieldPassword:
			if c.Password == "" {
				errs.Add(models.FieldPassword, MsgRequired)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// isEmail accepts a bare local@domain address. Display names, angle brackets
// and surrounding whitespace are rejected.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	if addr.Name != "" || addr.Address != s {
		return false
	}

	at := strings.LastIndex(s, "@")
	return at > 0 && at < len(s)-1
}
