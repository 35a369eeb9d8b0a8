// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrNoUI is returned by NewApp when no login UI is given.
var ErrNoUI = errors.New("no login ui")
