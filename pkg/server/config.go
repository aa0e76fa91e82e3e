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
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mchmarny/discovery/pkg/config"
	"github.com/mchmarny/discovery/pkg/defaults"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name        string
	Version     string
	Environment string

	// OpenAIConfigured is reported by /health.
	OpenAIConfigured bool

	// Additional Handlers to be added to the server, keyed by path.
	// Paths under /api/ are rate limited per client IP.
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// CORSOrigins lists allowed origins; empty or "*" allows any origin.
	CORSOrigins []string

	// Per-client rate limiting for /api/ routes
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// production reports whether internal error details must be hidden.
func (c *Config) production() bool {
	return strings.EqualFold(c.Environment, config.EnvironmentProduction)
}

// parseConfig returns sensible defaults
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Environment:       config.DefaultEnvironment,
		Address:           "",
		Port:              config.DefaultPort,
		RateLimitRequests: defaults.APIRateLimitRequests,
		RateLimitWindow:   defaults.APIRateLimitWindow,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	// Override with environment variables if set
	if portStr := os.Getenv(config.EnvPort); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil && port > 0 {
			cfg.Port = port
		}
	}

	// Allow the shutdown window to match the orchestrator's grace period
	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}
