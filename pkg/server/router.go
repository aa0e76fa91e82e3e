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
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mchmarny/discovery/pkg/defaults"
	cerrors "github.com/mchmarny/discovery/pkg/errors"
	"github.com/mchmarny/discovery/pkg/serializer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	pathRoot    = "/"
	pathHealth  = "/health"
	pathReady   = "/ready"
	pathMetrics = "/metrics"

	// apiPrefix marks routes subject to per-client rate limiting.
	apiPrefix = "/api/"
)

// RootResponse is the body of GET /.
type RootResponse struct {
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Version     string   `json:"version"`
	Endpoints   []string `json:"endpoints"`
	Timestamp   string   `json:"timestamp"`
	Environment string   `json:"environment"`
}

// NotFoundResponse is the body returned for unknown routes.
type NotFoundResponse struct {
	ErrorResponse
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// routePath strips an optional method prefix from a handler key.
func routePath(key string) string {
	if i := strings.IndexByte(key, ' '); i >= 0 {
		return strings.TrimSpace(key[i+1:])
	}
	return key
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	routes := map[string]http.HandlerFunc{
		pathRoot:   s.handleRoot,
		pathHealth: s.handleHealth,
		pathReady:  s.handleReady,
	}
	for key, h := range s.config.Handlers {
		routes[routePath(key)] = h
	}

	for path, h := range routes {
		mux.HandleFunc(path, s.withMiddleware(path, h))
	}

	// System endpoints (no rate limiting)
	mux.Handle(pathMetrics, promhttp.Handler())

	return mux
}

// endpoints lists the routes served, sorted.
func (s *Server) endpoints() []string {
	list := []string{
		"GET " + pathRoot,
		"GET " + pathHealth,
		"GET " + pathReady,
		"GET " + pathMetrics,
	}
	for key := range s.config.Handlers {
		if routePath(key) == pathRoot {
			continue
		}
		list = append(list, key)
	}
	sort.Strings(list[4:])
	return list
}

// handleRoot serves GET / and answers every unmatched path with 404.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != pathRoot {
		s.handleNotFound(w, r)
		return
	}

	if !requireGet(w, r) {
		return
	}

	slog.Debug("handling root route",
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	serializer.RespondJSON(w, http.StatusOK, RootResponse{
		Name:        s.config.Name,
		Status:      "running",
		Version:     s.config.Version,
		Endpoints:   s.endpoints(),
		Timestamp:   time.Now().UTC().Format(defaults.TimestampFormat),
		Environment: s.config.Environment,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	slog.Debug("route not found",
		"requestID", RequestID(r),
		"method", r.Method,
		"path", r.URL.Path,
	)

	serializer.RespondJSON(w, http.StatusNotFound, NotFoundResponse{
		ErrorResponse: newErrorResponse(r, cerrors.ErrCodeNotFound, "Route not found", false, map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		}),
		AvailableEndpoints: s.endpoints(),
	})
}
