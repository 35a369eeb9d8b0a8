// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/snapweb-login/models"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentialsValidator(t *testing.T) {
	require.NotNil(t, NewCredentialsValidator())
}

func TestCredentialsValidator_Dispatch(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()
	valid := models.Credentials{Email: "user@example.com", Password: "anything-non-empty"}

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var c *models.Credentials
		require.ErrorIs(t, v.Validate(ctx, c), ErrUnsupportedType)
	})

	t.Run("value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, valid))
	})

	t.Run("pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &valid))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, valid, "username"), ErrUnknownField)
	})
}

func TestCredentialsValidator_Invalid(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name   string
		creds  models.Credentials
		fields map[string][]string
	}{
		{
			name:   "empty email",
			creds:  models.Credentials{Email: "", Password: "pw"},
			fields: map[string][]string{models.FieldEmail: {MsgRequired}},
		},
		{
			name:   "empty password",
			creds:  models.Credentials{Email: "user@example.com"},
			fields: map[string][]string{models.FieldPassword: {MsgRequired}},
		},
		{
			name:  "both empty",
			creds: models.Credentials{},
			fields: map[string][]string{
				models.FieldEmail:    {MsgRequired},
				models.FieldPassword: {MsgRequired},
			},
		},
		{
			name:   "no at sign",
			creds:  models.Credentials{Email: "user.example.com", Password: "pw"},
			fields: map[string][]string{models.FieldEmail: {MsgInvalidEmail}},
		},
		{
			name:   "no domain",
			creds:  models.Credentials{Email: "user@", Password: "pw"},
			fields: map[string][]string{models.FieldEmail: {MsgInvalidEmail}},
		},
		{
			name:   "no local part",
			creds:  models.Credentials{Email: "@example.com", Password: "pw"},
			fields: map[string][]string{models.FieldEmail: {MsgInvalidEmail}},
		},
		{
			name:   "display name",
			creds:  models.Credentials{Email: "User <user@example.com>", Password: "pw"},
			fields: map[string][]string{models.FieldEmail: {MsgInvalidEmail}},
		},
		{
			name:   "surrounding spaces",
			creds:  models.Credentials{Email: " user@example.com ", Password: "pw"},
			fields: map[string][]string{models.FieldEmail: {MsgInvalidEmail}},
		},
		{
			name:   "invalid email and empty password",
			creds:  models.Credentials{Email: "nope"},
			fields: map[string][]string{models.FieldEmail: {MsgInvalidEmail}, models.FieldPassword: {MsgRequired}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			require.Error(t, err)

			var verrs models.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.NotEmpty(t, verrs)
			assert.Equal(t, models.ValidationErrors(tt.fields), verrs)
		})
	}
}

func TestCredentialsValidator_ScopedFields(t *testing.T) {
	v := NewCredentialsValidator()
	creds := models.Credentials{Email: "user@example.com"}

	assert.NoError(t, v.Validate(context.Background(), creds, models.FieldEmail))
	assert.Error(t, v.Validate(context.Background(), creds, models.FieldPassword))
}

func TestCredentialsValidator_GeneratedAddresses(t *testing.T) {
	v := NewCredentialsValidator()
	faker := gofakeit.New(42)

	for i := 0; i < 50; i++ {
		creds := models.Credentials{
			Email:    faker.Email(),
			Password: faker.Password(true, true, true, true, false, 12),
		}
		assert.NoError(t, v.Validate(context.Background(), creds), creds.Email)
	}
}
