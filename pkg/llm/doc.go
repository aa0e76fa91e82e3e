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

// Package llm is a minimal client for an OpenAI compatible chat completions API.
//
// The client sends one system message and one user message and returns the
// text of the first choice. Failures are returned as *errors.StructuredError
// with a code describing the category, so callers never inspect message text:
//
//	UNAUTHORIZED         no credential configured, or HTTP 401/403
//	RATE_LIMIT_EXCEEDED  HTTP 429
//	TIMEOUT              the request context deadline passed
//	SERVICE_UNAVAILABLE  transport failure or HTTP 5xx
//	INVALID_REQUEST      any other HTTP 4xx
//	INVALID_RESPONSE     the payload could not be decoded or had no choices
//
// Usage:
//
//	c := llm.NewClient(cfg.OpenAI)
//	text, err := c.Complete(ctx, llm.Request{System: sys, User: msg})
package llm
