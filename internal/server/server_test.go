// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/handler"
	myGRPC "github.com/MKhiriev/passport-api/internal/handler/grpc"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/MKhiriev/passport-api/internal/service"
	"github.com/MKhiriev/passport-api/internal/workers"
	"github.com/MKhiriev/passport-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakeAppInfoService struct{}

func (fakeAppInfoService) GetAppVersion(context.Context) string { return "v9.9.9" }

type fakeHealthService struct{}

func (fakeHealthService) Check(context.Context) (models.HealthStatus, error) {
	return models.HealthStatus{Status: "UP"}, nil
}

func testServices() *service.Services {
	return &service.Services{
		HealthService:  fakeHealthService{},
		AppInfoService: fakeAppInfoService{},
	}
}

// freeAddress returns a loopback address that was free a moment ago.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testConfig(t *testing.T) config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Env:          config.Development,
			TokenSignKey: "server-test-key",
			TokenIssuer:  "passport-api-test",
			Version:      "v9.9.9",
		},
		Session: config.Session{CookieName: "access_token"},
		Server: config.Server{
			HTTPAddress: freeAddress(t),
			GRPCAddress: freeAddress(t),
		},
	}
}

func runInBackground(t *testing.T, srv Server) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- srv.RunServer(ctx) }()
	t.Cleanup(cancel)
	return cancel, result
}

func waitResult(t *testing.T, result <-chan error) error {
	t.Helper()
	select {
	case err := <-result:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
		return nil
	}
}

func TestNewServer_NoAddresses(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_ServesAndStops(t *testing.T) {
	cfg := testConfig(t)
	handlers, err := handler.NewHandlers(testServices(), cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, nil, cfg.Server, logger.Nop())
	require.NoError(t, err)
	cancel, result := runInBackground(t, srv)

	// HTTP
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.Server.HTTPAddress + "/api/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		body = string(raw)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "v9.9.9", body)

	// gRPC health
	conn, err := grpc.NewClient(cfg.Server.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	check := func() healthpb.HealthCheckResponse_ServingStatus {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
		if err != nil {
			return healthpb.HealthCheckResponse_UNKNOWN
		}
		return resp.GetStatus()
	}
	require.Eventually(t, func() bool {
		return check() == healthpb.HealthCheckResponse_NOT_SERVING
	}, 5*time.Second, 20*time.Millisecond)

	handlers.GRPC.SetServing(true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check())

	cancel()
	assert.NoError(t, waitResult(t, result))

	_, err = http.Get("http://" + cfg.Server.HTTPAddress + "/api/version")
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestRunServer_RunsWorkers(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.GRPCAddress = ""
	handlers, err := handler.NewHandlers(testServices(), cfg, logger.Nop())
	require.NoError(t, err)

	reported := make(chan bool, 1)
	ws := workers.NewWorkers(testServices(), config.Workers{HealthProbeInterval: time.Hour}, logger.Nop(),
		workers.ServingReporterFunc(func(serving bool) {
			select {
			case reported <- serving:
			default:
			}
		}))

	srv, err := NewServer(handlers, ws, cfg.Server, logger.Nop())
	require.NoError(t, err)
	cancel, result := runInBackground(t, srv)

	select {
	case serving := <-reported:
		assert.True(t, serving)
	case <-time.After(5 * time.Second):
		t.Fatal("health probe did not run")
	}

	cancel()
	assert.NoError(t, waitResult(t, result))
}

func TestRunServer_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := testConfig(t)
	cfg.Server.HTTPAddress = occupied.Addr().String()
	cfg.Server.GRPCAddress = ""
	handlers, err := handler.NewHandlers(testServices(), cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, nil, cfg.Server, logger.Nop())
	require.NoError(t, err)
	_, result := runInBackground(t, srv)

	assert.Error(t, waitResult(t, result))
}

func TestShutdown_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	handlers, err := handler.NewHandlers(testServices(), cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, nil, cfg.Server, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		srv.Shutdown()
		srv.Shutdown()
	})
}
