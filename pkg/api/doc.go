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

// Package api wires the content discovery service together and runs it.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/mchmarny/discovery/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Loading configuration from the environment and an optional .env file
//   - Configuring structured logging with application name and version
//   - Building the suggestion resolver and mounting its handler
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// Application Endpoints (rate limited per client IP):
//   - POST /api/analyze-content - 1 to 2 suggestions for {"content": "..."}
//
// System Endpoints (no rate limiting):
//   - GET /        - Service information
//   - GET /health  - Health check, reports openaiConfigured
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:3001/api/analyze-content \
//	  -H "Content-Type: application/json" \
//	  -d '{"content":"Excited to start my new data analytics role"}'
//
// # Configuration
//
//   - PORT: HTTP server port (default: 3001)
//   - ENVIRONMENT (or NODE_ENV): deployment environment (default: development)
//   - OPENAI_API_KEY: language model credential; without it only keyword suggestions are served
//   - OPENAI_MODEL, OPENAI_BASE_URL: language model selection
//   - CORS_ORIGINS: comma separated allowed origins (default: *)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window (default: 30)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/discovery/pkg/api.version=1.0.0'"
package api
