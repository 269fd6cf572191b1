// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthCheck_Up(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewHealthService(repo, "1.2.3", logger.Nop())

	gomock.InOrder(
		repo.EXPECT().Ping(gomock.Any()).Return(nil),
		repo.EXPECT().CountUsers(gomock.Any()).Return(int64(42), nil),
	)

	status, err := svc.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, HealthStatusUp, status.Status)
	assert.Equal(t, int64(42), status.Users)
	assert.Equal(t, "1.2.3", status.Version)
	assert.NotEmpty(t, status.Message)
}

func TestHealthCheck_PingFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewHealthService(repo, "", logger.Nop())
	pingErr := errors.New("dial tcp: connection refused")

	repo.EXPECT().Ping(gomock.Any()).Return(pingErr)

	status, err := svc.Check(context.Background())

	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
	assert.ErrorIs(t, err, pingErr)
	assert.Equal(t, HealthStatusDown, status.Status)
}

func TestHealthCheck_CountFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewHealthService(repo, "", logger.Nop())

	repo.EXPECT().Ping(gomock.Any()).Return(nil)
	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), errors.New("relation does not exist"))

	_, err := svc.Check(context.Background())

	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
}
