// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the client-side process settings.
type ClientApp struct {
	// HashKey seals the macaroon stored on disk.
	HashKey string
	// LogLevel is the minimum log level.
	LogLevel string
	// LogFile is the client log destination.
	LogFile string
	// ProbePath is requested with the stored macaroon after login.
	ProbePath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the authentication backend address.
	HTTPAddress string
	// LoginPath is the login endpoint path.
	LoginPath string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:   cfg.App.HashKey,
			LogLevel:  cfg.App.LogLevel,
			LogFile:   cfg.App.LogFile,
			ProbePath: cfg.App.ProbePath,
		},
		Adapter: newClientAdapter(cfg.Adapter),
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}

func newClientAdapter(a Adapter) ClientAdapter {
	return ClientAdapter{
		HTTPAddress:    a.HTTPAddress,
		LoginPath:      a.LoginPath,
		RequestTimeout: a.RequestTimeout,
	}
}
