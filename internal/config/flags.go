// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses configuration flags from args on a private FlagSet.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-server-url base URL of a remote verifier server (client)
//	-d database DSN (postgres:// URL or SQLite path)
//	-k key triple JSON file path
//	-c/-config json file path with configs
//	-key-id identifier the key triple is stored under
//	-lenient-digits accept L-format fragments above 9999
//	-operator-password-hash bcrypt hash of the operator password (server)
//	-operator-password operator password (client)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request integrity hash key
//	-retention decision journal retention (e.g., "720h")
//	-prune-interval journal pruning interval (e.g., "1h")
//	-verify L-format ciphertext to ingest on start (client)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serverURL string
	var databaseDSN string
	var keysPath string
	var jsonConfigPath string
	var keyID string
	var lenientDigits bool
	var operatorPasswordHash string
	var operatorPassword string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var retention time.Duration
	var pruneInterval time.Duration
	var verify string

	fs := flag.NewFlagSet("go-rsa-verifier", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&serverURL, "server-url", "", "Remote verifier server base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&keysPath, "k", "", "Key triple JSON file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&keyID, "key-id", "", "Key triple identifier")
	fs.BoolVar(&lenientDigits, "lenient-digits", false, "Accept fragments above 9999")
	fs.StringVar(&operatorPasswordHash, "operator-password-hash", "", "Operator password bcrypt hash")
	fs.StringVar(&operatorPassword, "operator-password", "", "Operator password")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.DurationVar(&retention, "retention", 0, "Decision journal retention (e.g., 720h)")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "Journal pruning interval (e.g., 1h)")
	fs.StringVar(&verify, "verify", "", "L-format ciphertext to ingest on start")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			KeyID:                keyID,
			LenientDigits:        lenientDigits,
			OperatorPasswordHash: operatorPasswordHash,
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			TokenDuration:        tokenDuration,
			HashKey:              hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				KeysPath: keysPath,
			},
			JournalRetention: retention,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:      serverURL,
			RequestTimeout:   requestTimeout,
			OperatorPassword: operatorPassword,
		},
		Workers: Workers{
			PruneInterval: pruneInterval,
		},
		JSONFilePath: jsonConfigPath,
		Verify:       verify,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range [1, 65535]")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
