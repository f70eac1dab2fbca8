// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with UserID and CreatedAt
// filled in. A duplicate identity fails with [ErrIdentityAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID)
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrIdentityAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByIdentity returns the user registered under identity, or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByIdentity(ctx context.Context, identity string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIdentityQuery(r.db.builder, identity)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByIdentity").Msg("error building query")
		return models.User{}, err
	}

	var found models.User
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&found.UserID, &found.Identity, &found.Name, &found.Locker, &found.CreatedAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByIdentity").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
