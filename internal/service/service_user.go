// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/store"
	"github.com/MKhiriev/passport-api/internal/validators"
	"github.com/MKhiriev/passport-api/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (u *userService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, u.storeError(ctx, err, userID, "user search by id failed")
	}

	return user, nil
}

// UpdateProfile applies the name and email fields present in request.
// Requests carrying a password field are refused as a whole, even when the
// other fields are valid.
func (u *userService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.TouchesPassword() {
		log.Debug().Int64("id", userID).Msg("password change attempted through profile update")
		return models.User{}, ErrPasswordChangeNotAllowed
	}

	update := request.ToUserUpdate(userID)
	if err := u.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Int64("id", userID).Msg("invalid profile update")
		return models.User{}, mapValidationError(err, ErrInvalidDataProvided)
	}

	if update.IsEmpty() {
		return u.GetProfile(ctx, userID)
	}

	if update.Email != nil {
		owner, err := u.userRepository.FindUserByEmail(ctx, *update.Email)
		switch {
		case err == nil && owner.UserID != userID:
			return models.User{}, ErrEmailAlreadyInUse
		case err != nil && !errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Int64("id", userID).Msg("user search by email failed")
			return models.User{}, fmt.Errorf("user search by email failed: %w", err)
		}
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyInUse
		}
		return models.User{}, u.storeError(ctx, err, userID, "user update failed")
	}

	log.Info().Int64("id", userID).Msg("profile updated")
	return updatedUser, nil
}

func (u *userService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		return u.storeError(ctx, err, userID, "account deletion failed")
	}

	logger.FromContext(ctx).Info().Int64("id", userID).Msg("account deleted")
	return nil
}

func (u *userService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	if targetID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	if actorID == targetID {
		return ErrCannotDeleteSelf
	}

	if err := u.userRepository.DeleteUser(ctx, targetID); err != nil {
		return u.storeError(ctx, err, targetID, "user deletion failed")
	}

	logger.FromContext(ctx).Info().
		Int64("actor_id", actorID).
		Int64("id", targetID).
		Msg("user deleted by admin")
	return nil
}

// storeError maps a repository miss to ErrUserNotFound and logs and wraps
// everything else.
func (u *userService) storeError(ctx context.Context, err error, userID int64, msg string) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}

	logger.FromContext(ctx).Err(err).Int64("id", userID).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
