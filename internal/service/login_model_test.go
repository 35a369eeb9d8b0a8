// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/snapweb-login/internal/adapter"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/mock"
	"github.com/MKhiriev/snapweb-login/internal/store"
	"github.com/MKhiriev/snapweb-login/internal/validators"
	"github.com/MKhiriev/snapweb-login/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	validEmail    = "user@example.com"
	validPassword = "anything-non-empty"
)

var (
	syncEnvelope = models.Envelope{
		Type:       models.EnvelopeTypeSync,
		StatusCode: 200,
		Status:     "OK",
		Result:     []byte(`{"macaroon":"protect the innoncent","discharges":["serve the public trust"]}`),
	}
	errorEnvelope = models.Envelope{
		Type:       models.EnvelopeTypeError,
		StatusCode: 401,
		Status:     "Unauthorized",
		Result:     []byte(`{"message":"cannot authenticate to snap store: Provided email/password is not correct.","kind":"login-required"}`),
	}
)

// newTestLoginModel wires a loginModel with a real validator, a mocked adapter
// and a mocked token store.
func newTestLoginModel(t *testing.T, ctrl *gomock.Controller) (*loginModel, *mock.MockServerAdapter, *mock.MockMacaroonRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockTokens := mock.NewMockMacaroonRepository(ctrl)

	m := NewLoginModel(validators.NewCredentialsValidator(), mockAdapter, mockTokens, logger.Nop()).(*loginModel)
	return m, mockAdapter, mockTokens
}

func fill(t *testing.T, m CredentialModel, email, password string) {
	t.Helper()
	require.NoError(t, m.Set(models.FieldEmail, email))
	require.NoError(t, m.Set(models.FieldPassword, password))
}

// ── attributes ───────────────────────────────────────────────────────────────

func TestLoginModel_SetGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestLoginModel(t, ctrl)

	fill(t, m, validEmail, validPassword)

	email, err := m.Get(models.FieldEmail)
	require.NoError(t, err)
	assert.Equal(t, validEmail, email)

	password, err := m.Get(models.FieldPassword)
	require.NoError(t, err)
	assert.Equal(t, validPassword, password)

	assert.Equal(t, models.Credentials{Email: validEmail, Password: validPassword}, m.Attributes())
}

func TestLoginModel_UnknownAttribute(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestLoginModel(t, ctrl)

	assert.ErrorIs(t, m.Set("username", "x"), ErrUnknownAttribute)
	_, err := m.Get("username")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestLoginModel_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestLoginModel(t, ctrl)

	fill(t, m, validEmail, validPassword)
	m.Reset()

	assert.Equal(t, models.Credentials{}, m.Attributes())
}

func TestLoginModel_ConcurrentSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestLoginModel(t, ctrl)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.Set(models.FieldEmail, fmt.Sprintf("u%d@example.com", i))
			_ = m.Attributes()
		}(i)
	}
	wg.Wait()

	email, err := m.Get(models.FieldEmail)
	require.NoError(t, err)
	assert.NotEmpty(t, email)
}

// ── Validate ────────────────────────────────────────────────────────────────

func TestLoginModel_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestLoginModel(t, ctrl)

	assert.Nil(t, m.Validate(models.Credentials{Email: validEmail, Password: validPassword}))

	for _, creds := range []models.Credentials{
		{Email: "", Password: validPassword},
		{Email: "not-an-email", Password: validPassword},
		{Email: validEmail, Password: ""},
		{},
	} {
		assert.NotEmpty(t, m.Validate(creds), "%+v", creds)
	}
}

func TestLoginModel_Validate_NonFieldError(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validators.ErrUnsupportedType)

	m := NewLoginModel(v, mock.NewMockServerAdapter(ctrl), mock.NewMockMacaroonRepository(ctrl), logger.Nop())

	verrs := m.Validate(models.Credentials{})
	require.Len(t, verrs, 1)
	assert.Equal(t, []string{validators.ErrUnsupportedType.Error()}, verrs[fieldCredentials])
}

// ── Save ────────────────────────────────────────────────────────────────────

func TestLoginModel_Save_ValidatesBeforeSubmitting(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock.NewMockValidator(ctrl)
	a := mock.NewMockServerAdapter(ctrl)
	creds := models.Credentials{Email: validEmail, Password: validPassword}

	gomock.InOrder(
		v.EXPECT().Validate(gomock.Any(), creds).Return(nil),
		a.EXPECT().Login(gomock.Any(), creds).Return(syncEnvelope, nil),
	)

	m := NewLoginModel(v, a, mock.NewMockMacaroonRepository(ctrl), logger.Nop())
	fill(t, m, validEmail, validPassword)

	env, err := m.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, syncEnvelope, env)
}

func TestLoginModel_Save_InvalidIssuesNoRequest(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		fields   []string
	}{
		{name: "empty email", email: "", password: validPassword, fields: []string{models.FieldEmail}},
		{name: "malformed email", email: "user@", password: validPassword, fields: []string{models.FieldEmail}},
		{name: "empty password", email: validEmail, password: "", fields: []string{models.FieldPassword}},
		{name: "everything empty", fields: []string{models.FieldEmail, models.FieldPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, mockAdapter, _ := newTestLoginModel(t, ctrl)
			mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

			fill(t, m, tt.email, tt.password)
			_, err := m.Save(context.Background())

			var verrs models.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.fields, verrs.Fields())
		})
	}
}

func TestLoginModel_Save_ErrorEnvelopeIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, _ := newTestLoginModel(t, ctrl)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(errorEnvelope, nil)

	fill(t, m, validEmail, validPassword)
	env, err := m.Save(context.Background())

	require.NoError(t, err)
	assert.True(t, env.IsError())
	assert.Equal(t, "cannot authenticate to snap store: Provided email/password is not correct.", env.ErrorMessage())
}

func TestLoginModel_Save_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, mockAdapter, _ := newTestLoginModel(t, ctrl)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Envelope{}, fmt.Errorf("%w: connection refused", adapter.ErrTransport))

	fill(t, m, validEmail, validPassword)
	_, err := m.Save(context.Background())

	require.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, "cannot reach the login service, please try again", FailureMessage(err))
}

// ── SetMacaroonCookiesFromResponse ──────────────────────────────────────────

func TestLoginModel_SetMacaroonCookiesFromResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens := newTestLoginModel(t, ctrl)

	res := models.LoginResult{Macaroon: "protect the innoncent", Discharges: []string{"serve the public trust"}}
	mockTokens.EXPECT().SaveMacaroon(gomock.Any(), models.Macaroon{
		Root:       "protect the innoncent",
		Discharges: []string{"serve the public trust"},
	}).Return(nil)

	require.NoError(t, m.SetMacaroonCookiesFromResponse(context.Background(), res))
}

func TestLoginModel_SetMacaroonCookiesFromResponse_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens := newTestLoginModel(t, ctrl)
	mockTokens.EXPECT().SaveMacaroon(gomock.Any(), gomock.Any()).Times(0)

	err := m.SetMacaroonCookiesFromResponse(context.Background(), models.LoginResult{})
	assert.ErrorIs(t, err, ErrEmptyMacaroon)
}

func TestLoginModel_SetMacaroonCookiesFromResponse_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, mockTokens := newTestLoginModel(t, ctrl)
	errDisk := errors.New("disk full")
	mockTokens.EXPECT().SaveMacaroon(gomock.Any(), gomock.Any()).Return(errDisk)

	err := m.SetMacaroonCookiesFromResponse(context.Background(), models.LoginResult{Macaroon: "m"})
	assert.ErrorIs(t, err, ErrTokenStore)
	assert.ErrorIs(t, err, errDisk)
}

// TestLoginModel_StoredMacaroonAuthorizesFollowUps checks that the pair
// written by the model is what the HTTP layer reads back.
func TestLoginModel_StoredMacaroonAuthorizesFollowUps(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := store.NewMemoryMacaroonRepository()
	m := NewLoginModel(validators.NewCredentialsValidator(), mock.NewMockServerAdapter(ctrl), tokens, logger.Nop())

	res, err := LoginResultOf(syncEnvelope)
	require.NoError(t, err)
	require.NoError(t, m.SetMacaroonCookiesFromResponse(context.Background(), res))

	stored, err := tokens.LoadMacaroon(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `Macaroon root="protect the innoncent", discharge="serve the public trust"`, stored.AuthorizationHeader())
}
