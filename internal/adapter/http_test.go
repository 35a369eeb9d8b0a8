// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/snapweb-login/internal/config"
	"github.com/MKhiriev/snapweb-login/internal/crypto"
	"github.com/MKhiriev/snapweb-login/internal/logger"
	"github.com/MKhiriev/snapweb-login/internal/mock"
	"github.com/MKhiriev/snapweb-login/internal/store"
	"github.com/MKhiriev/snapweb-login/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, tokens MacaroonSource) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		LoginPath:      config.DefaultLoginPath,
		RequestTimeout: 5 * time.Second,
	}

	a, err := NewHTTPServerAdapter(adapterCfg, tokens, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

type fixedSource struct {
	m   models.Macaroon
	err error
}

func (f fixedSource) LoadMacaroon(context.Context) (models.Macaroon, error) {
	return f.m, f.err
}

func (f fixedSource) ClearMacaroon(context.Context) error {
	return nil
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_SyncEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Email: "user@example.com", Password: "pw"}, creds)

		writeBody(w, http.StatusOK, `{"type":"sync","status-code":200,"status":"OK",
			"result":{"macaroon":"protect the innoncent","discharges":["serve the public trust"]}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	env, err := a.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})

	require.NoError(t, err)
	require.True(t, env.IsSync())
	res, err := env.LoginResult()
	require.NoError(t, err)
	assert.Equal(t, "protect the innoncent", res.Macaroon)
	assert.Equal(t, []string{"serve the public trust"}, res.Discharges)
}

func TestLogin_ErrorEnvelopeIsNotAnError(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		body       string
		statusCode int
		message    string
	}{
		{
			name:       "invalid auth data",
			httpStatus: http.StatusBadRequest,
			body: `{"type":"error","status-code":400,"status":"Bad Request",
				"result":{"message":"please use a valid email address.","kind":"invalid-auth-data","value":{"email":["invalid"]}}}`,
			statusCode: 400,
			message:    "please use a valid email address.",
		},
		{
			name:       "transport 400 carrying 401",
			httpStatus: http.StatusBadRequest,
			body: `{"type":"error","status-code":401,"status":"Unauthorized",
				"result":{"message":"cannot authenticate to snap store: Provided email/password is not correct.","kind":"login-required"}}`,
			statusCode: 401,
			message:    "cannot authenticate to snap store: Provided email/password is not correct.",
		},
		{
			name:       "server error",
			httpStatus: http.StatusInternalServerError,
			body:       `{"type":"error","status-code":500,"status":"Internal Server Error","result":{"message":"boom"}}`,
			statusCode: 500,
			message:    "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeBody(w, tt.httpStatus, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, nil)
			env, err := a.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})

			require.NoError(t, err)
			assert.True(t, env.IsError())
			assert.Equal(t, tt.statusCode, env.StatusCode)
			assert.Equal(t, tt.message, env.ErrorMessage())
		})
	}
}

func TestLogin_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "502")
}

func TestLogin_JSONWithoutEnvelopeType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"hello":"world"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	_, err := a.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})

	assert.ErrorIs(t, err, ErrTransport)
}

func TestLogin_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, nil)
	_, err := a.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestLogin_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		LoginPath:      config.DefaultLoginPath,
		RequestTimeout: 50 * time.Millisecond,
	}, nil, logger.Nop())
	require.NoError(t, err)

	_, err = a.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestLogin_NeverCarriesAuthorization(t *testing.T) {
	tests := []struct {
		name   string
		tokens MacaroonSource
	}{
		{name: "stored macaroon", tokens: fixedSource{m: models.Macaroon{Root: "old"}}},
		{name: "unreadable macaroon", tokens: fixedSource{err: store.ErrCorruptedMacaroon}},
		{name: "failing store", tokens: fixedSource{err: errors.New("disk failure")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				hit     bool
				present bool
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hit = true
				_, present = r.Header["Authorization"]
				writeBody(w, http.StatusOK, `{"type":"sync","status-code":200,"status":"OK",
					"result":{"macaroon":"new","discharges":[]}}`)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, tt.tokens)
			env, err := a.Login(context.Background(), models.Credentials{Email: "user@example.com", Password: "pw"})

			require.NoError(t, err)
			assert.True(t, env.IsSync())
			assert.True(t, hit)
			assert.False(t, present)
		})
	}
}

// ── Request ─────────────────────────────────────────────────────────────────

func TestRequest_CarriesStoredMacaroon(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotAuth = r.Method, r.URL.Path, r.Header.Get("Authorization")
		writeBody(w, http.StatusOK, `{"type":"sync","status-code":200,"status":"OK","result":[]}`)
	}))
	defer srv.Close()

	tokens := fixedSource{m: models.Macaroon{Root: "protect the innoncent", Discharges: []string{"serve the public trust"}}}
	a := newTestAdapter(t, srv.URL, tokens)

	env, err := a.Request(context.Background(), http.MethodGet, "/some/api/call")

	require.NoError(t, err)
	assert.True(t, env.IsSync())
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/some/api/call", gotPath)
	assert.Equal(t, `Macaroon root="protect the innoncent", discharge="serve the public trust"`, gotAuth)
}

func TestRequest_NoStoredMacaroon(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		writeBody(w, http.StatusUnauthorized, `{"type":"error","status-code":401,"status":"Unauthorized","result":{"message":"login required","kind":"login-required"}}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, fixedSource{err: store.ErrMacaroonNotFound})

	env, err := a.Request(context.Background(), http.MethodGet, "some/api/call")

	require.NoError(t, err)
	assert.False(t, present)
	assert.Equal(t, models.KindLoginRequired, mustErrorResult(t, env).Kind)
}

func TestRequest_StoreFailureAbortsRequest(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	errDisk := errors.New("disk failure")
	a := newTestAdapter(t, srv.URL, fixedSource{err: errDisk})

	_, err := a.Request(context.Background(), http.MethodPost, "/v2/snaps")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, errDisk)
	assert.False(t, hit)
}

func TestRequest_UnreadableMacaroonIsCleared(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		writeBody(w, http.StatusOK, `{"type":"sync","status-code":200,"status":"OK","result":[]}`)
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	tokens := mock.NewMockMacaroonSource(ctrl)
	tokens.EXPECT().LoadMacaroon(gomock.Any()).Return(models.Macaroon{}, store.ErrCorruptedMacaroon)
	tokens.EXPECT().ClearMacaroon(gomock.Any()).Return(nil)

	a := newTestAdapter(t, srv.URL, tokens)
	env, err := a.Request(context.Background(), http.MethodGet, "/v2/snaps")

	require.NoError(t, err)
	assert.True(t, env.IsSync())
	assert.False(t, present)
}

func TestRequest_UnreadableMacaroonClearFails(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	errDisk := errors.New("disk failure")
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockMacaroonSource(ctrl)
	tokens.EXPECT().LoadMacaroon(gomock.Any()).Return(models.Macaroon{}, store.ErrCorruptedMacaroon)
	tokens.EXPECT().ClearMacaroon(gomock.Any()).Return(errDisk)

	a := newTestAdapter(t, srv.URL, tokens)
	_, err := a.Request(context.Background(), http.MethodGet, "/v2/snaps")

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, errDisk)
	assert.False(t, hit)
}

// A macaroon sealed under a previous hash key does not block login and is
// dropped on the first follow-up request.
func TestAdapter_MacaroonFromPreviousHashKey(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "tokens.db")}}

	previous, err := crypto.NewTokenSealer("previous")
	require.NoError(t, err)
	current, err := crypto.NewTokenSealer("current")
	require.NoError(t, err)

	old, err := store.NewClientStorages(ctx, cfg, previous, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, old.MacaroonRepository.SaveMacaroon(ctx, models.Macaroon{Root: "old"}))
	require.NoError(t, old.Close())

	storages, err := store.NewClientStorages(ctx, cfg, current, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	var auths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		writeBody(w, http.StatusOK, `{"type":"sync","status-code":200,"status":"OK","result":[]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, storages.MacaroonRepository)

	_, err = a.Login(ctx, models.Credentials{Email: "user@example.com", Password: "pw"})
	require.NoError(t, err)
	_, err = a.Request(ctx, http.MethodGet, "/v2/snaps")
	require.NoError(t, err)

	assert.Equal(t, []string{"", ""}, auths)
	_, err = storages.MacaroonRepository.LoadMacaroon(ctx)
	assert.ErrorIs(t, err, store.ErrMacaroonNotFound)
}

func mustErrorResult(t *testing.T, env models.Envelope) models.ErrorResult {
	t.Helper()
	res, err := env.ErrorResult()
	require.NoError(t, err)
	return res
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://snapd.local/", want: "https://snapd.local"},
		{in: " http://127.0.0.1:4200 ", want: "http://127.0.0.1:4200"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_DefaultLoginPath(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:1"}, nil, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLoginPath, a.(*httpServerAdapter).loginPath)
}

func TestParseBaseURL(t *testing.T) {
	u, err := ParseBaseURL("snapd.local:4200")
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "snapd.local:4200", u.Host)

	_, err = ParseBaseURL("")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
