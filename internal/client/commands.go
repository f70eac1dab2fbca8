// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/hako/durafmt"
)

type command func(a *App, ctx context.Context, args []string) error

var commands = map[string]command{
	"encode":  (*App).encode,
	"decode":  (*App).decode,
	"inspect": (*App).inspect,
	"seal":    (*App).seal,
	"scan":    (*App).scan,
	"version": (*App).version,
}

func commandNames() []string {
	return slices.Sorted(maps.Keys(commands))
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// readInput joins args, or reads the input stream when args is empty or "-".
func (a *App) readInput(args []string) (string, error) {
	var text string
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		b, err := io.ReadAll(a.in)
		if err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		text = strings.TrimSpace(string(b))
	} else {
		text = strings.Join(args, " ")
	}

	if text == "" {
		return "", ErrMissingInput
	}
	return text, nil
}

// encode prints the envelope of a payload text.
func (a *App) encode(_ context.Context, args []string) error {
	text, err := a.readInput(args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, a.codec.Encode([]byte(text)))
	return err
}

// decode prints the fields of a valid envelope, one per line in name order,
// followed by the payload age.
func (a *App) decode(_ context.Context, args []string) error {
	env, err := a.readInput(args)
	if err != nil {
		return err
	}

	payload, err := a.codec.Decode(env)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	a.printFields(a.out, payload)
	if ts, ok := payload.Timestamp(); ok {
		fmt.Fprintf(a.out, "age=%s\n", formatAge(a.now(), ts))
	}
	return nil
}

func (a *App) printFields(w io.Writer, payload envelope.Payload) {
	for _, name := range slices.Sorted(maps.Keys(payload)) {
		fmt.Fprintf(w, "%s=%s\n", name, payload[name])
	}
}

// inspect prints every intermediate stage of the decode pipeline up to the
// first failure.
func (a *App) inspect(_ context.Context, args []string) error {
	env, err := a.readInput(args)
	if err != nil {
		return err
	}

	in := a.codec.Inspect(env)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "stage:\t%s\n", in.Stage)
	fmt.Fprintf(tw, "envelope:\t%s\n", in.Envelope)
	if in.Decoded != nil {
		fmt.Fprintf(tw, "decoded:\t%s\n", hex.EncodeToString(in.Decoded))
		fmt.Fprintf(tw, "unshifted:\t%s\n", hex.EncodeToString(in.Unshifted))
		fmt.Fprintf(tw, "unmasked:\t%q\n", in.Unmasked)
	}
	if in.Text != "" {
		fmt.Fprintf(tw, "text:\t%s\n", in.Text)
	}
	for _, name := range slices.Sorted(maps.Keys(in.Payload)) {
		fmt.Fprintf(tw, "field %s:\t%s\n", name, in.Payload[name])
	}
	if ts, ok := in.Payload.Timestamp(); ok {
		fmt.Fprintf(tw, "age:\t%s\n", formatAge(a.now(), ts))
	}
	if in.Err != nil {
		fmt.Fprintf(tw, "error:\t%s (%s)\n", envelope.KindOf(in.Err), in.Err)
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	if in.Err != nil {
		return fmt.Errorf("inspect: %w", in.Err)
	}
	return nil
}

// seal prints a fresh envelope for -identity under -field and optionally
// copies it to the clipboard.
func (a *App) seal(_ context.Context, args []string) error {
	fs := newFlagSet("seal")
	field := fs.String("field", envelope.FieldEmail, "identity field: email, userId or data")
	identity := fs.String("identity", "", "identity value")
	copyOut := fs.Bool("copy", false, "copy the envelope to the clipboard")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("seal: %w", err)
	}
	if *identity == "" {
		return fmt.Errorf("seal: %w: -identity", ErrMissingInput)
	}

	env, err := a.codec.Seal(*field, *identity)
	if err != nil {
		return fmt.Errorf("seal: %w", err)
	}
	if _, err = fmt.Fprintln(a.out, env); err != nil {
		return err
	}

	if *copyOut {
		if err = a.clipboard.WriteAll(env); err != nil {
			return fmt.Errorf("seal: copy to clipboard: %w", err)
		}
		a.logger.Info().Msg("envelope copied to clipboard")
	}
	return nil
}

// scan submits an envelope to the gate and prints the admission.
func (a *App) scan(ctx context.Context, args []string) error {
	if a.gate == nil {
		return ErrNoGate
	}
	env, err := a.readInput(args)
	if err != nil {
		return err
	}

	admission, err := a.gate.Admit(ctx, env)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	fmt.Fprintf(a.out, "admitted=%s\n", admission.Identity)
	fmt.Fprintf(a.out, "field=%s\n", admission.Field)
	if admission.Locker != "" {
		fmt.Fprintf(a.out, "locker=%s\n", admission.Locker)
	}
	fmt.Fprintf(a.out, "scan_id=%s\n", admission.ScanID)
	return nil
}

// version prints the build and envelope format, and with -remote the format
// reported by the gate.
func (a *App) version(ctx context.Context, args []string) error {
	fs := newFlagSet("version")
	remote := fs.Bool("remote", false, "also query the gate")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("version: %w", err)
	}

	fmt.Fprintf(a.out, "build: %s (%s, %s)\n", a.buildInfo.BuildVersion(), a.buildInfo.BuildDate(), a.buildInfo.BuildCommit())
	fmt.Fprintf(a.out, "envelope: %s (%s)\n", envelope.Version, envelope.Algorithm)

	if !*remote {
		return nil
	}
	if a.gate == nil {
		return ErrNoGate
	}
	v, err := a.gate.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}
	fmt.Fprintf(a.out, "gate: %s\n", v)
	return nil
}

// formatAge renders how long ago the millisecond timestamp ts was, relative
// to now. Distances beyond the range of time.Duration are clamped.
func formatAge(now time.Time, ts int64) string {
	nowMs := now.UnixMilli()
	future := ts > nowMs

	var diff uint64
	if future {
		diff = uint64(ts) - uint64(nowMs)
	} else {
		diff = uint64(nowMs) - uint64(ts)
	}

	age := time.Duration(math.MaxInt64)
	if diff <= uint64(math.MaxInt64/int64(time.Millisecond)) {
		age = time.Duration(diff) * time.Millisecond
	}
	age = age.Round(time.Second)

	switch {
	case age == 0:
		return "just now"
	case future:
		return durafmt.Parse(age).String() + " in the future"
	default:
		return durafmt.Parse(age).String()
	}
}

// IsUsageError reports whether err comes from a bad command line rather than
// a failed operation.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrNoCommand) || errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingInput) || errors.Is(err, flag.ErrHelp)
}
