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

/*
Package suggestion turns a block of post content into one or two LinkedIn
discovery suggestions.

A Resolver makes a single attempt at the language model through a Completer.
Model output is unwrapped from markdown fences, parsed as a JSON array and
normalized: at most two entries, missing titles and descriptions replaced with
DefaultTitle and DefaultDescription. When no credential is configured, the call
fails, or the output cannot be used, the Resolver answers with Fallback, a
deterministic keyword matcher. A well-formed empty array from the model is
returned as an empty list with SourceLLM:

	res, err := suggestion.NewResolver(cfg).Resolve(ctx, "Looking for data analytics mentors")
	// res.Source == suggestion.SourceFallback when no credential is set
	// res.Suggestions[0].Title == "Data Analytics Courses"

Handler exposes the Resolver as POST /api/analyze-content. Route keys carry
the method, which the server lists on its root endpoint:

	h := suggestion.NewHandler(resolver, slog.Default())
	srv := server.New(server.WithHandler(map[string]http.HandlerFunc{
		api.RouteAnalyzeContent: h.HandleAnalyzeContent, // "POST /api/analyze-content"
	}))

Content shorter than MinContentLength characters is rejected with 400 before
the Resolver is called.
*/
package suggestion
