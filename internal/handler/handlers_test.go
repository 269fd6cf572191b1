// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/passport-api/internal/config"
	"github.com/MKhiriev/passport-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serverConfig(httpAddr, grpcAddr string) config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{HTTPAddress: httpAddr, GRPCAddress: grpcAddr},
	}
}

// Both handlers only store the services pointer at construction, so nil is
// safe here.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.StructuredConfig
		wantHTTP bool
		wantGRPC bool
		wantErr  bool
	}{
		{name: "both", cfg: serverConfig(":3000", ":9090"), wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: serverConfig(":3000", ""), wantHTTP: true},
		{name: "grpc only", cfg: serverConfig("", ":9090"), wantGRPC: true},
		{name: "none", cfg: serverConfig("", ""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(nil, tt.cfg, logger.Nop())

			if tt.wantErr {
				require.ErrorIs(t, err, errNoHandlersAreCreated)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
