// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/adapter"
	"github.com/MKhiriev/shintya-qr/internal/config"
	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/models"
)

type App struct {
	codec     *envelope.Codec
	gate      adapter.GateAdapter
	clipboard Clipboard
	buildInfo models.AppBuildInfo

	in  io.Reader
	out io.Writer

	now func() time.Time

	logger *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithIO replaces os.Stdin and os.Stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in, a.out = in, out
	}
}

// WithGate replaces the adapter built from the configuration.
func WithGate(gate adapter.GateAdapter) Option {
	return func(a *App) {
		a.gate = gate
	}
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

// NewApp builds the CLI application from cfg. The gate adapter is optional:
// when cfg.Adapter has no address only the offline commands work.
func NewApp(cfg *config.CLIConfig, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...Option) (*App, error) {
	codec, err := cfg.Codec.NewCodec()
	if err != nil {
		return nil, err
	}

	app := &App{
		codec:     codec,
		clipboard: SystemClipboard(),
		buildInfo: buildInfo,
		in:        os.Stdin,
		out:       os.Stdout,
		now:       time.Now,
		logger:    logger,
	}
	if cfg.Adapter.HTTPAddress != "" {
		if app.gate, err = adapter.NewHTTPGateAdapter(cfg.Adapter, logger); err != nil {
			return nil, err
		}
	}
	for _, opt := range opts {
		opt(app)
	}

	logger.Debug().Str("codec", codec.String()).Msg("client app created")
	return app, nil
}

// Run executes args[0] as a subcommand with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: want one of %v", ErrNoCommand, commandNames())
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q: want one of %v", ErrUnknownCommand, args[0], commandNames())
	}
	return cmd(a, ctx, args[1:])
}
