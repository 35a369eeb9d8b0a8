// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig]. Only values every binary
// needs are checked here; role-specific rules live on the derived configs.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.LoginPath != "" && !strings.HasPrefix(cfg.Adapter.LoginPath, "/") {
		return fmt.Errorf("%w: login path must start with '/'", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (a ClientAdapter) validate() error {
	if a.HTTPAddress == "" || a.LoginPath == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}
