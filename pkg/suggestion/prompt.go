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

import "fmt"

const systemPrompt = `You are a LinkedIn discovery assistant. Read the user's post and suggest 1-2 concrete discovery actions on LinkedIn.
Favor learning courses, job searches, networking opportunities, and relevant events.
Respond with a JSON array only, no prose. Each element must be an object with a "title" and a "description" string.
Example: [{"title":"Data Analytics Courses","description":"Explore LinkedIn Learning courses on SQL and dashboards"}]`

// userPrompt builds the user message for content, truncated to
// MaxPromptContentLength characters.
func userPrompt(content string) string {
	return fmt.Sprintf("Suggest discovery actions for this LinkedIn post:\n\n%s",
		truncate(content, MaxPromptContentLength))
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// preview returns the log preview of content.
func preview(content string) string {
	p := truncate(content, previewLength)
	if len(p) < len(content) {
		return p + "..."
	}
	return p
}
