// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the web front configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// LogLevel is the minimum log level.
	LogLevel string
	// Adapter points at the authentication backend the form submits to and
	// the /api proxy forwards to.
	Adapter ClientAdapter
	// Server holds the listen address and cookie settings.
	Server Server
}

// GetServerConfig builds and validates the web front view of the merged
// configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		LogLevel: cfg.App.LogLevel,
		Adapter:  newClientAdapter(cfg.Adapter),
		Server:   cfg.Server,
	}
	return serverCfg, serverCfg.validate()
}
