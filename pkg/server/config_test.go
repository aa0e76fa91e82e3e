// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")

		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 3001 {
			t.Errorf("expected port 3001, got %d", cfg.Port)
		}
		if cfg.Environment != "development" {
			t.Errorf("expected development environment, got %s", cfg.Environment)
		}
		if cfg.RateLimitRequests != 100 {
			t.Errorf("expected 100 requests per window, got %d", cfg.RateLimitRequests)
		}
		if cfg.RateLimitWindow != 15*time.Minute {
			t.Errorf("expected 15m window, got %v", cfg.RateLimitWindow)
		}
		if cfg.ReadTimeout != 10*time.Second {
			t.Errorf("expected read timeout 10s, got %v", cfg.ReadTimeout)
		}
		if cfg.WriteTimeout != 35*time.Second {
			t.Errorf("expected write timeout 35s, got %v", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected idle timeout 120s, got %v", cfg.IdleTimeout)
		}
		if cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("custom port from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")

		if cfg := parseConfig(); cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
	})

	t.Run("invalid port from environment uses default", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		if cfg := parseConfig(); cfg.Port != 3001 {
			t.Errorf("expected default port 3001 for invalid env, got %d", cfg.Port)
		}
	})

	t.Run("shutdown timeout from environment", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

		if cfg := parseConfig(); cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("expected shutdown timeout 5s, got %v", cfg.ShutdownTimeout)
		}
	})

	t.Run("non-positive shutdown timeout ignored", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "0")

		if cfg := parseConfig(); cfg.ShutdownTimeout != 30*time.Second {
			t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
		}
	})
}

func TestConfigProduction(t *testing.T) {
	tests := map[string]bool{
		"production":  true,
		"PRODUCTION":  true,
		"development": false,
		"":            false,
	}
	for env, want := range tests {
		cfg := &Config{Environment: env}
		if got := cfg.production(); got != want {
			t.Errorf("production() for %q = %v, want %v", env, got, want)
		}
	}
}
