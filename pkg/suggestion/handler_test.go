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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mchmarny/discovery/pkg/config"
	"github.com/mchmarny/discovery/pkg/defaults"
	cerrors "github.com/mchmarny/discovery/pkg/errors"
	"github.com/mchmarny/discovery/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSuggester struct {
	res   *Result
	err   error
	calls int
	got   string
}

func (s *stubSuggester) Resolve(_ context.Context, content string) (*Result, error) {
	s.calls++
	s.got = content
	return s.res, s.err
}

func newTestHandler(s Suggester) *Handler {
	h := NewHandler(s, nil)
	h.now = func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 6000000, time.UTC)
	}
	return h
}

func postAnalyze(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/analyze-content", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.HandleAnalyzeContent(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleAnalyzeContent_Success(t *testing.T) {
	stub := &stubSuggester{res: &Result{
		Suggestions: List{{Title: "A", Description: "B"}},
		Source:      SourceLLM,
	}}
	h := newTestHandler(stub)

	w := postAnalyze(h, `{"content":"Thoughts on data pipelines"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, string(SourceLLM), w.Header().Get(SourceHeader))
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "Thoughts on data pipelines", stub.got)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, List{{Title: "A", Description: "B"}}, resp.Suggestions)
	assert.Equal(t, "2026-01-02T03:04:05.006Z", resp.Timestamp)
	assert.Equal(t, len("Thoughts on data pipelines"), resp.ContentLength)
}

func TestHandleAnalyzeContent_ContentLengthCountsCharacters(t *testing.T) {
	stub := &stubSuggester{res: &Result{Suggestions: Fallback(""), Source: SourceFallback}}
	h := newTestHandler(stub)

	content := "héllo wörld ünïcode"
	w := postAnalyze(h, `{"content":"`+content+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 19, resp.ContentLength)
}

func TestHandleAnalyzeContent_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"empty body", "", http.StatusBadRequest},
		{"empty object", `{}`, http.StatusBadRequest},
		{"null content", `{"content":null}`, http.StatusBadRequest},
		{"numeric content", `{"content":12345678901}`, http.StatusBadRequest},
		{"array content", `{"content":["a long enough string"]}`, http.StatusBadRequest},
		{"too short", `{"content":"too short"}`, http.StatusBadRequest},
		{"nine multibyte characters", `{"content":"ééééééééé"}`, http.StatusBadRequest},
		{"malformed json", `{"content":`, http.StatusBadRequest},
		{"trailing data", `{"content":"long enough content"} {}`, http.StatusBadRequest},
		{"not an object", `"long enough content"`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubSuggester{}
			h := newTestHandler(stub)

			w := postAnalyze(h, tt.body)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, 0, stub.calls, "resolver must not be called")
			resp := decodeError(t, w)
			assert.Equal(t, string(cerrors.ErrCodeInvalidRequest), resp.Code)
			assert.NotEmpty(t, resp.Error)
			assert.False(t, resp.Retryable)
		})
	}
}

func TestHandleAnalyzeContent_ShortContentMessage(t *testing.T) {
	for n := 0; n < MinContentLength; n++ {
		stub := &stubSuggester{}
		w := postAnalyze(newTestHandler(stub), `{"content":"`+strings.Repeat("a", n)+`"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, msgContentInvalid, decodeError(t, w).Error)
		assert.Zero(t, stub.calls)
	}
}

func TestHandleAnalyzeContent_ExactlyMinimumAccepted(t *testing.T) {
	stub := &stubSuggester{res: &Result{Suggestions: Fallback(""), Source: SourceFallback}}
	w := postAnalyze(newTestHandler(stub), `{"content":"`+strings.Repeat("a", MinContentLength)+`"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.calls)
}

func TestHandleAnalyzeContent_BodyTooLarge(t *testing.T) {
	stub := &stubSuggester{}
	body := `{"content":"` + strings.Repeat("a", int(defaults.MaxRequestBodyBytes)) + `"}`

	w := postAnalyze(newTestHandler(stub), body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Zero(t, stub.calls)
}

func TestHandleAnalyzeContent_MethodNotAllowed(t *testing.T) {
	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(m, func(t *testing.T) {
			stub := &stubSuggester{}
			req := httptest.NewRequest(m, "/api/analyze-content", nil)
			w := httptest.NewRecorder()

			newTestHandler(stub).HandleAnalyzeContent(w, req)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
			assert.Zero(t, stub.calls)
		})
	}
}

func TestHandleAnalyzeContent_ResolveErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		code      cerrors.ErrorCode
		message   string
		retryable bool
	}{
		{
			name:      "rate limited",
			err:       cerrors.New(cerrors.ErrCodeRateLimitExceeded, "upstream limit"),
			status:    http.StatusTooManyRequests,
			code:      cerrors.ErrCodeRateLimitExceeded,
			message:   msgRateLimited,
			retryable: true,
		},
		{
			name:    "credential problem",
			err:     cerrors.New(cerrors.ErrCodeUnauthorized, "bad key"),
			status:  http.StatusInternalServerError,
			code:    cerrors.ErrCodeUnauthorized,
			message: msgConfiguration,
		},
		{
			name:      "anything else",
			err:       cerrors.New(cerrors.ErrCodeTimeout, "deadline"),
			status:    http.StatusInternalServerError,
			code:      cerrors.ErrCodeInternal,
			message:   msgAnalyzeFailed,
			retryable: true,
		},
		{
			name:      "message text is not inspected",
			err:       cerrors.New(cerrors.ErrCodeInternal, "rate limit API key"),
			status:    http.StatusInternalServerError,
			code:      cerrors.ErrCodeInternal,
			message:   msgAnalyzeFailed,
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAnalyze(newTestHandler(&stubSuggester{err: tt.err}), `{"content":"long enough content"}`)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, string(tt.code), resp.Code)
			assert.Equal(t, tt.message, resp.Error)
			assert.Equal(t, tt.retryable, resp.Retryable)
		})
	}
}

func TestHandleAnalyzeContent_NoCredentialEndToEnd(t *testing.T) {
	fc := &fakeCompleter{configured: false}
	h := newTestHandler(NewResolver(config.Default(), WithCompleter(fc)))

	body := `{"content":"Our marketing team shipped a new campaign"}`
	first := postAnalyze(h, body)
	second := postAnalyze(h, body)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, string(SourceFallback), first.Header().Get(SourceHeader))
	assert.Zero(t, fc.callCount())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Digital Marketing Resources", "Leadership Development"}, titles(resp.Suggestions))
}
