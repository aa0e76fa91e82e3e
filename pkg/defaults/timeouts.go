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

package defaults

import "time"

// TimestampFormat is the layout used for timestamps in API responses
// (UTC, millisecond precision, e.g. 2025-01-15T10:30:00.123Z).
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Handler timeouts for HTTP request processing.
const (
	// AnalyzeHandlerTimeout bounds a single analyze-content request,
	// including the outbound language model call.
	AnalyzeHandlerTimeout = 30 * time.Second

	// MaxRequestBodyBytes caps the size of an analyze-content request body.
	MaxRequestBodyBytes = 1 << 20
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Must exceed AnalyzeHandlerTimeout so fallback responses still get written.
	ServerWriteTimeout = 35 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Rate limiting for /api routes.
const (
	// APIRateLimitRequests is the number of requests a single client IP may
	// make per APIRateLimitWindow.
	APIRateLimitRequests = 100

	// APIRateLimitWindow is the window over which APIRateLimitRequests applies.
	APIRateLimitWindow = 15 * time.Minute

	// RateLimiterIdleTTL is how long a per-client limiter is kept after its
	// last request before it is evicted.
	RateLimiterIdleTTL = 30 * time.Minute
)

// Language model client settings.
const (
	// LLMClientTimeout is the total timeout for a completion request.
	LLMClientTimeout = 25 * time.Second

	// LLMMaxTokens caps the size of the completion.
	LLMMaxTokens = 300

	// LLMTemperature keeps completions concise and close to deterministic.
	LLMTemperature = 0.3
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 20 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)
