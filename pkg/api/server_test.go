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

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mchmarny/discovery/pkg/config"
	"github.com/mchmarny/discovery/pkg/suggestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModel serves chat completions with a fixed status and assistant text.
func fakeModel(t *testing.T, status int, text string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream failure"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": text}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testConfig(baseURL string) *config.Config {
	cfg := config.Default()
	if baseURL != "" {
		cfg.OpenAI.APIKey = "test-key"
		cfg.OpenAI.BaseURL = baseURL
	}
	return cfg
}

func analyze(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-content", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeAnalyze(t *testing.T, w *httptest.ResponseRecorder) suggestion.AnalyzeResponse {
	t.Helper()
	var resp suggestion.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "discoveryd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestAnalyzeContent_NoCredential(t *testing.T) {
	h := NewServer(testConfig("")).Handler()

	w := analyze(t, h, `{"content":"Excited to lead our new data team this quarter"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fallback", w.Header().Get(suggestion.SourceHeader))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	resp := decodeAnalyze(t, w)
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "Data Analytics Courses", resp.Suggestions[0].Title)
	assert.Equal(t, "Leadership Development", resp.Suggestions[1].Title)
	assert.Equal(t, len("Excited to lead our new data team this quarter"), resp.ContentLength)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestAnalyzeContent_ModelSuggestions(t *testing.T) {
	srv, calls := fakeModel(t, http.StatusOK, "```json\n[{\"title\":\"X\"}]\n```")
	h := NewServer(testConfig(srv.URL)).Handler()

	w := analyze(t, h, `{"content":"Shipping our first Go microservice"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "llm", w.Header().Get(suggestion.SourceHeader))
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Equal(t, suggestion.List{
		{Title: "X", Description: suggestion.DefaultDescription},
	}, decodeAnalyze(t, w).Suggestions)
}

func TestAnalyzeContent_ModelEmptyArray(t *testing.T) {
	srv, calls := fakeModel(t, http.StatusOK, "```json\n[]\n```")
	h := NewServer(testConfig(srv.URL)).Handler()

	w := analyze(t, h, `{"content":"Our brand campaign reached a million people"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "llm", w.Header().Get(suggestion.SourceHeader))
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Contains(t, w.Body.String(), `"suggestions":[]`)
	assert.Empty(t, decodeAnalyze(t, w).Suggestions)
}

func TestAnalyzeContent_ModelFailuresFallBack(t *testing.T) {
	content := `{"content":"Our brand campaign reached a million people"}`
	want := suggestion.Fallback("Our brand campaign reached a million people")

	tests := []struct {
		name   string
		status int
		text   string
	}{
		{"upstream error", http.StatusInternalServerError, ""},
		{"upstream rate limit", http.StatusTooManyRequests, ""},
		{"rejected credential", http.StatusUnauthorized, ""},
		{"prose instead of json", http.StatusOK, "I suggest taking a marketing course."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := fakeModel(t, tt.status, tt.text)
			h := NewServer(testConfig(srv.URL)).Handler()

			w := analyze(t, h, content)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "fallback", w.Header().Get(suggestion.SourceHeader))
			assert.Equal(t, int32(1), atomic.LoadInt32(calls))
			assert.Equal(t, want, decodeAnalyze(t, w).Suggestions)
		})
	}
}

func TestAnalyzeContent_Validation(t *testing.T) {
	srv, calls := fakeModel(t, http.StatusOK, `[{"title":"X"}]`)
	h := NewServer(testConfig(srv.URL)).Handler()

	for _, body := range []string{`{}`, `{"content":"short"}`, `{"content":42}`, `not json`} {
		w := analyze(t, h, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestAnalyzeContent_MethodNotAllowed(t *testing.T) {
	h := NewServer(testConfig("")).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/analyze-content", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestHealthReportsCredential(t *testing.T) {
	srv, _ := fakeModel(t, http.StatusOK, "[]")

	for _, tc := range []struct {
		baseURL string
		want    bool
	}{
		{"", false},
		{srv.URL, true},
	} {
		h := NewServer(testConfig(tc.baseURL)).Handler()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.want, body["openaiConfigured"])
	}
}

func TestRootListsAnalyzeEndpoint(t *testing.T) {
	h := NewServer(testConfig("")).Handler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), RouteAnalyzeContent)
	assert.Contains(t, w.Body.String(), `"name":"discoveryd"`)
}

func TestUnknownRoute(t *testing.T) {
	h := NewServer(testConfig("")).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "availableEndpoints")
}
