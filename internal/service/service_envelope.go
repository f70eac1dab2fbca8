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
)

type envelopeService struct {
	codec          *envelope.Codec
	userRepository store.UserRepository

	now func() time.Time

	logger *logger.Logger
}

// NewEnvelopeService constructs an [EnvelopeService]. Only identities found in
// users can be issued an envelope.
func NewEnvelopeService(codec *envelope.Codec, users store.UserRepository, logger *logger.Logger) EnvelopeService {
	return &envelopeService{
		codec:          codec,
		userRepository: users,
		now:            time.Now,
		logger:         logger,
	}
}

// Issue seals a fresh envelope for identity under field. An empty field means
// [envelope.FieldEmail].
func (s *envelopeService) Issue(ctx context.Context, field, identity string) (models.IssuedEnvelope, error) {
	log := logger.FromContext(ctx)

	if field == "" {
		field = envelope.FieldEmail
	}
	if identity == "" || !envelope.IsIdentityField(field) {
		log.Error().Str("field", field).Msg("invalid issue request")
		return models.IssuedEnvelope{}, ErrInvalidDataProvided
	}
	if field == envelope.FieldEmail && !envelope.ValidEmail(identity) {
		return models.IssuedEnvelope{}, ErrInvalidIdentity
	}

	if _, err := s.userRepository.FindUserByIdentity(ctx, identity); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.IssuedEnvelope{}, ErrUnknownIdentity
		}
		log.Err(err).Str("field", field).Msg("identity lookup failed")
		return models.IssuedEnvelope{}, fmt.Errorf("error looking up identity: %w", err)
	}

	sealed, err := s.codec.Seal(field, identity)
	if err != nil {
		log.Err(err).Str("field", field).Msg("error sealing envelope")
		return models.IssuedEnvelope{}, fmt.Errorf("error sealing envelope: %w", err)
	}

	return models.IssuedEnvelope{
		Envelope: sealed,
		Field:    field,
		Identity: identity,
		IssuedAt: s.now().UTC(),
	}, nil
}

// Decode runs the codec pipeline and validator on env. Nothing is recorded,
// so decoding does not consume the envelope.
func (s *envelopeService) Decode(ctx context.Context, env string) (envelope.Payload, error) {
	payload, err := s.codec.Decode(env)
	if err != nil {
		logger.FromContext(ctx).Debug().Str("kind", string(envelope.KindOf(err))).Msg("decode failed")
		return nil, fmt.Errorf("error decoding envelope: %w", err)
	}
	return payload, nil
}
