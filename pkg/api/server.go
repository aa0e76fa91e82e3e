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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mchmarny/discovery/pkg/config"
	"github.com/mchmarny/discovery/pkg/logging"
	"github.com/mchmarny/discovery/pkg/server"
	"github.com/mchmarny/discovery/pkg/suggestion"
)

const (
	name           = "discoveryd"
	versionDefault = "dev"

	// RouteAnalyzeContent is the suggestion endpoint.
	RouteAnalyzeContent = "POST /api/analyze-content"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/discovery/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve loads configuration from the environment (and an optional .env
// file), starts the API server and blocks until shutdown.
func Serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return ServeWithConfig(context.Background(), cfg)
}

// ServeWithConfig starts the API server with cfg and blocks until ctx is
// done or a shutdown signal arrives.
func ServeWithConfig(ctx context.Context, cfg *config.Config) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"environment", cfg.Environment,
		"openaiConfigured", cfg.OpenAI.Configured(),
		"model", cfg.OpenAI.Model,
	)

	if !cfg.OpenAI.Configured() {
		slog.Warn("no language model credential configured, serving keyword suggestions only",
			"env", config.EnvOpenAIKey)
	}

	s := NewServer(cfg)
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer wires the suggestion resolver and handler into a server built
// from cfg.
func NewServer(cfg *config.Config, opts ...suggestion.Option) *server.Server {
	logger := slog.Default().With("component", "suggestion")

	resolver := suggestion.NewResolver(cfg, append([]suggestion.Option{suggestion.WithLogger(logger)}, opts...)...)
	handler := suggestion.NewHandler(resolver, logger)

	routes := map[string]http.HandlerFunc{
		RouteAnalyzeContent: handler.HandleAnalyzeContent,
	}

	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithEnvironment(cfg.Environment),
		server.WithPort(cfg.Port),
		server.WithCORSOrigins(cfg.CORSOrigins),
		server.WithOpenAIConfigured(resolver.Configured()),
		server.WithHandler(routes),
	)
}
