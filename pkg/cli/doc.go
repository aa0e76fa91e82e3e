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

// Package cli implements the discovery command line tool.
//
// # Commands
//
// analyze - Suggest discovery actions for post content:
//
//	discovery analyze --content "Excited to join the data platform team"
//	discovery analyze --file post.txt --format table
//	discovery analyze --file request.yaml --output suggestions.json
//
// The resolver runs locally with the same configuration as the server: the
// language model is used when OPENAI_API_KEY is set, keyword suggestions
// otherwise. The output includes the source of the suggestions and, for
// keyword suggestions, the reason the model was not used. JSON and YAML
// documents are SuggestionReport resources:
//
//	kind: SuggestionReport
//	apiVersion: discovery.mchmarny.dev/v1alpha1
//	metadata:
//	  source: fallback
//	  timestamp: "2026-01-02T03:04:05.006Z"
//	  version: v1.0.0
//	suggestions:
//	  - title: Data Analytics Courses
//	    description: ...
//	source: fallback
//	reason: not_configured
//
// serve - Run the API server:
//
//	discovery serve --port 8080
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// JSON (default):
//   - Machine-parseable
//
// YAML:
//   - Human-readable, preserves structure
//
// Table:
//   - One row per suggestion, suitable for terminal viewing
package cli
