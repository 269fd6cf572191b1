// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/mock"
	"github.com/MKhiriev/passport-api/internal/store"
	"github.com/MKhiriev/passport-api/internal/validators"
	"github.com/MKhiriev/passport-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, validators.NewUserValidator(), logger.Nop()), repo
}

func strPtr(s string) *string { return &s }

// ── GetProfile ──

func TestGetProfile_Success(t *testing.T) {
	svc, repo := newTestUserService(t)
	want := models.User{UserID: 5, Email: "ana@example.com"}

	repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(want, nil)

	got, err := svc.GetProfile(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetProfile_Deleted(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetProfile(context.Background(), 5)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile_StoreFailure(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.GetProfile(context.Background(), 5)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

// ── UpdateProfile ──

// Any password field rejects the whole request; the store is never touched.
func TestUpdateProfile_PasswordFieldRejected(t *testing.T) {
	svc, _ := newTestUserService(t)

	for name, request := range map[string]models.UpdateProfileRequest{
		"password":             {Password: strPtr("new")},
		"confirm":              {PasswordConfirm: strPtr("new")},
		"with valid fields":    {FirstName: strPtr("Ana"), Password: strPtr("new")},
		"empty password value": {Password: strPtr("")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.UpdateProfile(context.Background(), 5, request)
			assert.ErrorIs(t, err, ErrPasswordChangeNotAllowed)
		})
	}
}

func TestUpdateProfile_NamesOnly(t *testing.T) {
	svc, repo := newTestUserService(t)
	updated := models.User{UserID: 5, FirstName: "Ana", LastName: "Ruiz"}

	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.UserUpdate) (models.User, error) {
			assert.Equal(t, int64(5), u.UserID)
			assert.Equal(t, "Ruiz", *u.LastName)
			assert.Nil(t, u.Email)
			return updated, nil
		},
	)

	got, err := svc.UpdateProfile(context.Background(), 5, models.UpdateProfileRequest{
		FirstName: strPtr("Ana"),
		LastName:  strPtr("Ruiz"),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateProfile_EmailTakenByOther(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "taken@example.com").Return(models.User{UserID: 9}, nil)

	_, err := svc.UpdateProfile(context.Background(), 5, models.UpdateProfileRequest{Email: strPtr("taken@example.com")})

	assert.ErrorIs(t, err, ErrEmailAlreadyInUse)
}

func TestUpdateProfile_EmailUnchangedOwnedBySelf(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByEmail(ctx, "ana@example.com").Return(models.User{UserID: 5}, nil),
		repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(models.User{UserID: 5, Email: "ana@example.com"}, nil),
	)

	got, err := svc.UpdateProfile(ctx, 5, models.UpdateProfileRequest{Email: strPtr("ana@example.com")})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestUpdateProfile_EmailRaceMapped(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.UpdateProfile(context.Background(), 5, models.UpdateProfileRequest{Email: strPtr("new@example.com")})

	assert.ErrorIs(t, err, ErrEmailAlreadyInUse)
}

func TestUpdateProfile_InvalidValues(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.UpdateProfile(context.Background(), 5, models.UpdateProfileRequest{Email: strPtr("nope")})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.UpdateProfile(context.Background(), 5, models.UpdateProfileRequest{FirstName: strPtr("  ")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyUpdateValue)
}

func TestUpdateProfile_EmptyReturnsCurrent(t *testing.T) {
	svc, repo := newTestUserService(t)
	current := models.User{UserID: 5, Email: "ana@example.com"}

	repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(current, nil)

	got, err := svc.UpdateProfile(context.Background(), 5, models.UpdateProfileRequest{})

	require.NoError(t, err)
	assert.Equal(t, current, got)
}

func TestUpdateProfile_UserGone(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateProfile(context.Background(), 5, models.UpdateProfileRequest{FirstName: strPtr("Ana")})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

// ── DeleteAccount ──

func TestDeleteAccount(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(nil)
	require.NoError(t, svc.DeleteAccount(context.Background(), 5))

	repo.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(store.ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteAccount(context.Background(), 5), ErrUserNotFound)
}

// ── DeleteUser ──

func TestDeleteUser_Success(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().DeleteUser(gomock.Any(), int64(9)).Return(nil)

	assert.NoError(t, svc.DeleteUser(context.Background(), 1, 9))
}

func TestDeleteUser_Self(t *testing.T) {
	svc, _ := newTestUserService(t)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1, 1), ErrCannotDeleteSelf)
}

func TestDeleteUser_InvalidTarget(t *testing.T) {
	svc, _ := newTestUserService(t)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1, 0), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1, -4), ErrInvalidDataProvided)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().DeleteUser(gomock.Any(), int64(404)).Return(store.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 1, 404), ErrUserNotFound)
}

func TestDeleteUser_StoreFailure(t *testing.T) {
	svc, repo := newTestUserService(t)
	dbErr := errors.New("db down")

	repo.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).Return(dbErr)

	err := svc.DeleteUser(context.Background(), 1, 9)

	assert.ErrorIs(t, err, dbErr)
}
