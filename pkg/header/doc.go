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

// Package header provides the resource envelope for documents written by the
// discovery CLI.
//
// A Header follows Kubernetes-style conventions and is embedded inline in
// output types:
//
//	type report struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Suggestions   suggestion.List `json:"suggestions" yaml:"suggestions"`
//	}
//
//	r := &report{}
//	r.Init(header.KindSuggestionReport, version)
//	r.SetMetadata("source", "fallback")
//
// Serialized as YAML:
//
//	kind: SuggestionReport
//	apiVersion: discovery.mchmarny.dev/v1alpha1
//	metadata:
//	  source: fallback
//	  timestamp: "2025-01-15T10:30:00.123Z"
//	  version: v1.0.0
//	suggestions: [...]
package header
