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

// Package server provides the HTTP server for the content discovery API.
//
// # Architecture
//
// The server is stateless apart from a per-client rate limiter:
//
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery with environment-aware error details
//   - Per-client-IP token bucket rate limiting on /api/ routes (golang.org/x/time/rate)
//   - CORS (github.com/rs/cors)
//   - Prometheus RED metrics served on /metrics
//   - Graceful shutdown on SIGINT and SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("discovery"),
//	    server.WithVersion(version),
//	    server.WithOpenAIConfigured(cfg.OpenAI.Configured()),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "POST /api/analyze-content": h.HandleAnalyzeContent,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Endpoints
//
// GET / - service name, status, version, endpoints, timestamp and environment
//
// GET /health - always 200 with uptime, memory and openaiConfigured
//
// GET /ready - 200 when serving, 503 while starting or shutting down
//
// GET /metrics - Prometheus exposition
//
// Unknown routes return 404 with the list of available endpoints.
//
// # Rate Limiting
//
// Each client IP may make Config.RateLimitRequests requests per
// Config.RateLimitWindow to /api/ routes. Responses carry X-RateLimit-Limit
// and X-RateLimit-Remaining; rejected requests get 429 with Retry-After.
//
// # Error Handling
//
// All errors share one JSON shape:
//
//	{
//	  "error": "Too many requests from this IP, please try again later.",
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "details": {"limit": 100, "window": "15m0s"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00.000Z",
//	  "retryable": true
//	}
package server
