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
	"regexp"
	"strings"
)

var (
	// fenceLines matches a block whose opening and closing fences each start a line.
	fenceLines = regexp.MustCompile("(?sm)^[ \\t]*```[\\w-]*[ \\t]*\\r?\\n(.*?)^[ \\t]*```")
	// leadingBlock matches a block opened at the very start of the text.
	leadingBlock = regexp.MustCompile("(?s)\\A```[\\w-]*[ \\t]*\\r?\\n?(.*?)```")
	openingFence = regexp.MustCompile("\\A```[\\w-]*[ \\t]*\\r?\\n?")
)

// Unwrap removes markdown code fence wrapping from model output. Only fences
// that open the text or sit on their own line count, so backticks inside
// JSON string values are left alone. The first fenced block wins; an
// unterminated opening fence is stripped on its own. Text without fences is
// returned trimmed.
func Unwrap(text string) string {
	t := strings.TrimSpace(text)

	if m := fenceLines.FindStringSubmatch(t); m != nil {
		return strings.TrimSpace(m[1])
	}

	if !strings.HasPrefix(t, "```") {
		return t
	}

	if m := leadingBlock.FindStringSubmatch(t); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(openingFence.ReplaceAllString(t, ""))
}
