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

type codecFlags struct {
	secretKey string
	shift     int
	maxAge    time.Duration
	freshness string
}

func (f *codecFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.secretKey, "k", "", "Envelope secret key")
	fs.IntVar(&f.shift, "s", 0, "Envelope shift amount (1-25)")
	fs.DurationVar(&f.maxAge, "max-age", 0, "Freshness window (e.g., 5m)")
	fs.StringVar(&f.freshness, "freshness", "", "Freshness mode: enforce or off")
}

func (f *codecFlags) codec() Codec {
	return Codec{
		SecretKey: f.secretKey,
		Shift:     f.shift,
		MaxAge:    f.maxAge,
		Freshness: f.freshness,
	}
}

func registerConfigPath(fs *flag.FlagSet, path *string) {
	fs.StringVar(path, "c", "", "JSON config file path")
	fs.StringVar(path, "config", "", "JSON config file path (alias)")
}

// serverFlags parses the gate flags.
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-d database DSN (postgres:// URL or SQLite file path)
//	-k envelope secret key
//	-s envelope shift amount
//	-max-age freshness window (e.g., "5m")
//	-freshness enforce | off
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-prune-interval scan pruning interval (e.g., "1h")
//	-retention scan retention (e.g., "24h")
//	-c/-config json file path with configs
func serverFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("gate", flag.ContinueOnError)

	var serverAddress NetAddress
	var codec codecFlags
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pruneInterval time.Duration
	var retention time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "Scan pruning interval (e.g., 1h)")
	fs.DurationVar(&retention, "retention", 0, "Scan retention (e.g., 24h)")
	codec.register(fs)
	registerConfigPath(fs, &jsonConfigPath)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Codec: codec.codec(),
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PruneInterval: pruneInterval,
			Retention:     retention,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// cliFlags parses the global envelope CLI flags.
//
// Flags:
//
//	-k envelope secret key
//	-s envelope shift amount
//	-max-age freshness window
//	-freshness enforce | off
//	-gate gate address host:port or base URL
//	-request-timeout gate request timeout
//	-c/-config json file path with configs
func cliFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("envelope", flag.ContinueOnError)

	var codec codecFlags
	var gateAddress string
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs.StringVar(&gateAddress, "gate", "", "Gate address host:port or base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Gate request timeout (e.g., 5s)")
	codec.register(fs)
	registerConfigPath(fs, &jsonConfigPath)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Codec: codec.codec(),
		Adapter: Adapter{
			HTTPAddress:    gateAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
