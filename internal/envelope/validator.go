// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultMaxAge is the default freshness window.
const DefaultMaxAge = 5 * time.Minute

// Clock returns the current reference time in milliseconds.
type Clock func() int64

// WallClock returns Unix time in milliseconds.
func WallClock() int64 {
	return time.Now().UnixMilli()
}

// UptimeClock returns a Clock counting milliseconds since boot, the way a
// scanner without a real-time clock measures time.
func UptimeClock(boot time.Time) Clock {
	return func() int64 {
		return time.Since(boot).Milliseconds()
	}
}

type options struct {
	maxAge    int64
	maxSkew   int64
	clock     Clock
	freshness bool
}

func defaultOptions() options {
	return options{
		maxAge:    DefaultMaxAge.Milliseconds(),
		clock:     WallClock,
		freshness: true,
	}
}

// Option configures a [Validator] or a [Codec].
type Option func(*options)

// WithMaxAge sets the freshness window. Non-positive values keep
// [DefaultMaxAge].
func WithMaxAge(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.maxAge = d.Milliseconds()
		}
	}
}

// WithClock sets the reference clock used for freshness and by [Codec.Seal].
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithMaxSkew lets a timestamp run ahead of the reference clock by up to d.
// The default is zero: a payload from the future is rejected. Negative
// values are ignored.
func WithMaxSkew(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.maxSkew = d.Milliseconds()
		}
	}
}

// WithoutFreshness disables the age check. A zero or negative timestamp is
// still rejected.
func WithoutFreshness() Option {
	return func(o *options) {
		o.freshness = false
	}
}

// Validator checks a recovered payload text for required fields, nonce
// format, checksum and freshness.
//
// Freshness only bounds the age relative to the reference clock. When the
// reference is a device uptime counter, it says nothing about absolute time
// unless both ends were synchronised.
type Validator struct {
	opts options
}

// NewValidator returns a Validator. Without options it enforces a
// [DefaultMaxAge] window against [WallClock].
func NewValidator(opts ...Option) *Validator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Validator{opts: o}
}

// MaxAge returns the freshness window.
func (v *Validator) MaxAge() time.Duration {
	return time.Duration(v.opts.maxAge) * time.Millisecond
}

// MaxSkew returns how far a timestamp may be ahead of the reference clock.
func (v *Validator) MaxSkew() time.Duration {
	return time.Duration(v.opts.maxSkew) * time.Millisecond
}

// FreshnessEnforced reports whether the age check is enabled.
func (v *Validator) FreshnessEnforced() bool {
	return v.opts.freshness
}

// Validate parses text and runs every check in order, returning the first
// failure. A payload is returned only when all checks pass.
func (v *Validator) Validate(text string) (Payload, error) {
	p, err := ParsePayload(text)
	if err != nil {
		return nil, err
	}
	if err = v.check(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (v *Validator) check(p Payload) error {
	rawTimestamp, ok := p.present(FieldTimestamp)
	if !ok {
		return missingField(FieldTimestamp)
	}
	nonce, ok := p.present(FieldNonce)
	if !ok {
		return missingField(FieldNonce)
	}
	identity, err := identityOf(p)
	if err != nil {
		return err
	}

	if !isHex(nonce) {
		return fmt.Errorf("%w: %q", ErrInvalidNonceFormat, nonce)
	}

	if rawChecksum, ok := p.present(FieldChecksum); ok {
		expected := Checksum(identity)
		got, err := strconv.ParseInt(rawChecksum, 10, 64)
		if err != nil || got != expected {
			return fmt.Errorf("%w: got %s", ErrChecksumMismatch, rawChecksum)
		}
	}

	timestamp, err := strconv.ParseInt(rawTimestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: timestamp %q is not an integer", ErrMalformedPayload, rawTimestamp)
	}
	return v.checkFreshness(timestamp)
}

// checkFreshness accepts 0 <= now-timestamp <= maxAge, widened by maxSkew
// into the future. Differences are taken in uint64 so no int64 input wraps.
func (v *Validator) checkFreshness(timestamp int64) error {
	if timestamp <= 0 {
		return fmt.Errorf("%w: non-positive timestamp %d", ErrTimestampExpired, timestamp)
	}
	if !v.opts.freshness {
		return nil
	}

	now := v.opts.clock()
	if timestamp > now {
		if ahead := uint64(timestamp) - uint64(now); ahead > uint64(v.opts.maxSkew) {
			return fmt.Errorf("%w: timestamp %dms ahead of the clock", ErrTimestampExpired, ahead)
		}
		return nil
	}
	if age := uint64(now) - uint64(timestamp); age > uint64(v.opts.maxAge) {
		return fmt.Errorf("%w: age %dms exceeds %dms", ErrTimestampExpired, age, v.opts.maxAge)
	}
	return nil
}

func identityOf(p Payload) (string, error) {
	var found []string
	for _, f := range IdentityFields {
		if _, ok := p.present(f); ok {
			found = append(found, f)
		}
	}

	switch len(found) {
	case 0:
		return "", missingField(strings.Join(IdentityFields, "|"))
	case 1:
		return p[found[0]], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIdentity, strings.Join(found, ", "))
	}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// ValidEmail reports whether s looks like an e-mail address: an '@' after
// the first character and a '.' after it that is not the last character.
func ValidEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	dot := strings.LastIndexByte(s, '.')
	return at > 0 && dot > at && dot < len(s)-1
}
