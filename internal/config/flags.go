// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a               web front listen address in format [host]:[port]
//	-u               authentication backend address (URL or host:port)
//	-login-path      login endpoint path
//	-t               backend request timeout (e.g. "15s")
//	-server-timeout  web front request timeout (e.g. "30s")
//	-secure-cookies  mark macaroon cookies Secure
//	-d               token store database file
//	-hash-key        token store sealing secret
//	-log-level       minimum log level
//	-log-file        client log file
//	-probe           API path requested after login
//	-c/-config       json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var backendAddress, loginPath string
	var adapterTimeout, serverTimeout time.Duration
	var secureCookies bool
	var databaseDSN, hashKey string
	var logLevel, logFile, probePath string
	var jsonConfigPath string

	fs := flag.NewFlagSet("snapweb-login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Web front address host:port")
	fs.StringVar(&backendAddress, "u", "", "Authentication backend address")
	fs.StringVar(&loginPath, "login-path", "", "Login endpoint path")
	fs.DurationVar(&adapterTimeout, "t", 0, "Backend request timeout (e.g., 15s)")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Web front request timeout (e.g., 30s)")
	fs.BoolVar(&secureCookies, "secure-cookies", false, "Mark macaroon cookies Secure")
	fs.StringVar(&databaseDSN, "d", "", "Token store database file")
	fs.StringVar(&hashKey, "hash-key", "", "Token store sealing secret")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&probePath, "probe", "", "API path requested after login")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:   hashKey,
			LogLevel:  logLevel,
			LogFile:   logFile,
			ProbePath: probePath,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			LoginPath:      loginPath,
			RequestTimeout: adapterTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
			SecureCookies:  secureCookies,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
