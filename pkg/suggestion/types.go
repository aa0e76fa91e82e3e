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

package suggestion

import "encoding/json"

// Fixed defaults substituted for missing fields during normalization.
const (
	DefaultTitle       = "Professional Development"
	DefaultDescription = "Explore related opportunities on LinkedIn"
)

const (
	// MinContentLength is the minimum accepted content length in characters.
	MinContentLength = 10

	// MaxPromptContentLength is the number of characters of content sent to
	// the language model.
	MaxPromptContentLength = 400

	// MaxSuggestions caps every suggestion list.
	MaxSuggestions = 2

	// previewLength is the number of characters of content written to logs.
	previewLength = 100
)

// Suggestion is a recommended discovery action.
type Suggestion struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// List is an ordered list of at most MaxSuggestions suggestions.
type List []Suggestion

// MarshalJSON encodes a nil list as an empty array.
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Suggestion(l))
}

// TableHeader implements serializer.Tabular.
func (l List) TableHeader() []string {
	return []string{"TITLE", "DESCRIPTION"}
}

// TableRows implements serializer.Tabular.
func (l List) TableRows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		rows = append(rows, []string{s.Title, s.Description})
	}
	return rows
}

func (l List) capped() List {
	if len(l) > MaxSuggestions {
		return l[:MaxSuggestions]
	}
	return l
}

// Source identifies which branch produced a list.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Reason explains why the fallback branch was taken.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotConfigured    Reason = "not_configured"
	ReasonTransportFailure Reason = "transport_failure"
	ReasonParseFailure     Reason = "parse_failure"
)

// Result is the output of a resolution.
type Result struct {
	Suggestions List   `json:"suggestions" yaml:"suggestions"`
	Source      Source `json:"source" yaml:"source"`
	Reason      Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// TableHeader implements serializer.Tabular.
func (r *Result) TableHeader() []string {
	return r.Suggestions.TableHeader()
}

// TableRows implements serializer.Tabular.
func (r *Result) TableRows() [][]string {
	return r.Suggestions.TableRows()
}

// AnalyzeRequest is the body of POST /api/analyze-content.
type AnalyzeRequest struct {
	Content *string `json:"content" yaml:"content"`
}

// AnalyzeResponse is the 200 body of POST /api/analyze-content.
type AnalyzeResponse struct {
	Suggestions   List   `json:"suggestions" yaml:"suggestions"`
	Timestamp     string `json:"timestamp" yaml:"timestamp"`
	ContentLength int    `json:"contentLength" yaml:"contentLength"`
}
