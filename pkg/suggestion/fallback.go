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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type keywordFamily struct {
	keywords   []string
	suggestion Suggestion
}

// families are evaluated in precedence order.
var families = []keywordFamily{
	{
		keywords: []string{"data", "analytics", "analysis"},
		suggestion: Suggestion{
			Title:       "Data Analytics Courses",
			Description: "Explore LinkedIn Learning courses on data analysis and visualization",
		},
	},
	{
		keywords: []string{"marketing", "brand", "campaign"},
		suggestion: Suggestion{
			Title:       "Digital Marketing Resources",
			Description: "Follow marketing leaders and join digital marketing groups",
		},
	},
	{
		keywords: []string{"leadership", "management", "team"},
		suggestion: Suggestion{
			Title:       "Leadership Development",
			Description: "Find leadership courses and connect with experienced managers",
		},
	},
	{
		keywords: []string{"tech", "software", "developer"},
		suggestion: Suggestion{
			Title:       "Technology Skills",
			Description: "Browse software development courses and tech job openings",
		},
	},
}

var defaultSuggestions = List{
	{
		Title:       "Professional Development",
		Description: "Discover courses and certifications to grow your career",
	},
	{
		Title:       "Network Growth",
		Description: "Connect with professionals who share your interests",
	},
}

// Fallback returns keyword-based suggestions for content. It is deterministic
// and never returns an empty list.
func Fallback(content string) List {
	// cases.Caser is stateful, so one per call
	lower := cases.Lower(language.Und).String(content)

	var out List
	for _, f := range families {
		if containsAny(lower, f.keywords) {
			out = append(out, f.suggestion)
		}
	}

	if len(out) == 0 {
		out = append(out, defaultSuggestions...)
	}

	return out.capped()
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
