// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/store"
	"github.com/MKhiriev/shintya-qr/models"
	"github.com/google/uuid"
)

// gateService admits envelopes from registered identities and records each
// admission so that the same envelope cannot be used twice.
type gateService struct {
	codec          *envelope.Codec
	userRepository store.UserRepository
	scanRepository store.ScanRepository

	// now is the gate clock used for AdmittedAt and ScannedAt.
	now func() time.Time

	logger *logger.Logger
}

// NewGateService constructs a [GateService] around codec and the given
// repositories.
func NewGateService(codec *envelope.Codec, users store.UserRepository, scans store.ScanRepository, logger *logger.Logger) GateService {
	return &gateService{
		codec:          codec,
		userRepository: users,
		scanRepository: scans,
		now:            time.Now,
		logger:         logger,
	}
}

// Admit decodes envelope and checks, in order:
//   - the codec pipeline and payload validator (envelope errors);
//   - the e-mail format of an email identity (ErrInvalidIdentity);
//   - the identity is registered (ErrUnknownIdentity);
//   - the nonce was not admitted before for the identity (ErrEnvelopeReplayed).
//
// The first failing check is returned. Every rejection is logged at warn
// level with its transport code.
func (g *gateService) Admit(ctx context.Context, env string) (models.Admission, error) {
	log := logger.FromContext(ctx)

	admission, err := g.admit(ctx, env)
	if err != nil {
		log.Warn().Err(err).Str("kind", string(KindOf(err))).Msg("envelope rejected")
		return models.Admission{}, err
	}

	log.Info().
		Str("scan_id", admission.ScanID).
		Str("field", admission.Field).
		Str("session_id", admission.SessionID).
		Msg("envelope admitted")
	return admission, nil
}

func (g *gateService) admit(ctx context.Context, env string) (models.Admission, error) {
	log := logger.FromContext(ctx)

	payload, err := g.codec.Decode(env)
	if err != nil {
		return models.Admission{}, fmt.Errorf("error decoding envelope: %w", err)
	}

	field, identity, _ := payload.Identity()
	if field == envelope.FieldEmail && !envelope.ValidEmail(identity) {
		return models.Admission{}, ErrInvalidIdentity
	}
	if v := payload.Version(); v != "" && v != envelope.Version {
		log.Warn().Str("version", v).Str("expected", envelope.Version).Msg("envelope version mismatch")
	}

	user, err := g.userRepository.FindUserByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Admission{}, ErrUnknownIdentity
		}
		return models.Admission{}, fmt.Errorf("error looking up identity: %w", err)
	}

	timestamp, _ := payload.Timestamp()
	now := g.now().UTC()
	scan := models.Scan{
		ScanID:           uuid.NewString(),
		Nonce:            payload.Nonce(),
		Identity:         identity,
		SessionID:        payload.SessionID(),
		PayloadTimestamp: timestamp,
		ScannedAt:        now,
	}
	if err = g.scanRepository.SaveScan(ctx, scan); err != nil {
		if errors.Is(err, store.ErrNonceReplayed) {
			return models.Admission{}, fmt.Errorf("%w: %w", ErrEnvelopeReplayed, err)
		}
		return models.Admission{}, fmt.Errorf("error saving scan: %w", err)
	}

	return models.Admission{
		ScanID:     scan.ScanID,
		Identity:   identity,
		Field:      field,
		SessionID:  scan.SessionID,
		Nonce:      scan.Nonce,
		Locker:     user.Locker,
		Version:    payload.Version(),
		AdmittedAt: now,
	}, nil
}
