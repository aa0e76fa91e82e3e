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

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedResponse means the model output was not a JSON array.
var ErrMalformedResponse = errors.New("model output is not a JSON array")

// Normalize unwraps and parses model output into a list of at most
// MaxSuggestions entries, filling missing fields with defaults. An empty
// array yields an empty, non-nil list.
func Normalize(raw string) (List, error) {
	text := Unwrap(raw)

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if items == nil {
		// literal null
		return nil, ErrMalformedResponse
	}
	if len(items) > MaxSuggestions {
		items = items[:MaxSuggestions]
	}

	out := make(List, 0, len(items))
	for _, item := range items {
		out = append(out, normalizeItem(item))
	}
	return out, nil
}

func normalizeItem(raw json.RawMessage) Suggestion {
	s := Suggestion{
		Title:       DefaultTitle,
		Description: DefaultDescription,
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return s
	}

	if v, ok := fields["title"].(string); ok && v != "" {
		s.Title = v
	}
	if v, ok := fields["description"].(string); ok && v != "" {
		s.Description = v
	}
	return s
}
