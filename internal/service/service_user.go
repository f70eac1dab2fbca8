// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/store"
	"github.com/MKhiriev/shintya-qr/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a [UserService] backed by users.
func NewUserService(users store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: users,
		logger:         logger,
	}
}

// Register adds user to the registry. The identity is trimmed and required;
// a duplicate identity fails with ErrIdentityTaken.
func (u *userService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Identity = strings.TrimSpace(user.Identity)
	if user.Identity == "" {
		log.Error().Str("name", user.Name).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	registered, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrIdentityAlreadyExists) {
			return models.User{}, fmt.Errorf("%w: %w", ErrIdentityTaken, err)
		}
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}
