// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the web front of the login flow.
//
// It renders the login form, submits it through the credential model, keeps
// the resulting macaroon in the SM/SD cookies and reverse-proxies /api/* to
// the backend with an Authorization header derived from those cookies.
// Request tracing, access logging and metrics are handled in this package.
package http
