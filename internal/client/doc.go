// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime: it runs the login
// form and, once logged in, optionally probes an API path with the stored
// macaroon.
package client
