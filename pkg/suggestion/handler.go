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
	"errors"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/mchmarny/discovery/pkg/defaults"
	cerrors "github.com/mchmarny/discovery/pkg/errors"
	"github.com/mchmarny/discovery/pkg/serializer"
	"github.com/mchmarny/discovery/pkg/server"
)

// SourceHeader names the response header carrying the Source of the suggestions.
const SourceHeader = "X-Suggestion-Source"

const (
	msgContentInvalid = "Content is required and must be at least 10 characters long"
	msgInvalidJSON    = "Request body must be a JSON object with a content field"
	msgBodyTooLarge   = "Request body is too large"
	msgRateLimited    = "Rate limit exceeded. Please try again later."
	msgConfiguration  = "Service configuration error. Please contact support."
	msgAnalyzeFailed  = "Failed to analyze content. Please try again."
)

// Suggester resolves content into suggestions.
type Suggester interface {
	Resolve(ctx context.Context, content string) (*Result, error)
}

// Handler serves POST /api/analyze-content.
type Handler struct {
	suggester Suggester
	logger    *slog.Logger
	now       func() time.Time
}

// NewHandler returns a Handler backed by s.
func NewHandler(s Suggester, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		suggester: s,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleAnalyzeContent validates the request body, resolves suggestions and
// writes an AnalyzeResponse.
func (h *Handler) HandleAnalyzeContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method": r.Method,
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.AnalyzeHandlerTimeout)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)

	content, ok := h.decodeContent(w, r)
	if !ok {
		return
	}

	length := utf8.RuneCountInString(content)
	h.logger.Info("analyzing content",
		"requestID", server.RequestID(r),
		"contentLength", length,
		"preview", preview(content))

	res, err := h.suggester.Resolve(ctx, content)
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	w.Header().Set(SourceHeader, string(res.Source))
	serializer.RespondJSON(w, http.StatusOK, AnalyzeResponse{
		Suggestions:   res.Suggestions.capped(),
		Timestamp:     h.now().UTC().Format(defaults.TimestampFormat),
		ContentLength: length,
	})
}

// decodeContent reads and validates the content field. It writes a 400 and
// returns false when the body is unusable.
func (h *Handler) decodeContent(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req AnalyzeRequest
	err := serializer.DecodeJSON(r.Body, &req)

	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	switch {
	case err == nil, errors.Is(err, serializer.ErrEmptyBody), errors.As(err, &typeErr):
		// handled by the content check below
	case errors.As(err, &sizeErr):
		contentRejected.Inc()
		server.WriteError(w, r, http.StatusRequestEntityTooLarge, cerrors.ErrCodeInvalidRequest,
			msgBodyTooLarge, false, map[string]any{
				"limit": sizeErr.Limit,
			})
		return "", false
	default:
		contentRejected.Inc()
		server.WriteError(w, r, http.StatusBadRequest, cerrors.ErrCodeInvalidRequest,
			msgInvalidJSON, false, nil)
		return "", false
	}

	if err != nil || req.Content == nil || utf8.RuneCountInString(*req.Content) < MinContentLength {
		contentRejected.Inc()
		server.WriteError(w, r, http.StatusBadRequest, cerrors.ErrCodeInvalidRequest,
			msgContentInvalid, false, map[string]any{
				"minLength": MinContentLength,
			})
		return "", false
	}

	return *req.Content, true
}

// writeResolveError maps a resolution failure to a response by error code.
func (h *Handler) writeResolveError(w http.ResponseWriter, r *http.Request, err error) {
	code := cerrors.CodeOf(err)
	h.logger.Error("content analysis failed",
		"requestID", server.RequestID(r),
		"code", code,
		"error", err)

	switch code {
	case cerrors.ErrCodeRateLimitExceeded:
		server.WriteError(w, r, http.StatusTooManyRequests, code, msgRateLimited, true, nil)
	case cerrors.ErrCodeUnauthorized:
		server.WriteError(w, r, http.StatusInternalServerError, code, msgConfiguration, false, nil)
	default:
		server.WriteError(w, r, http.StatusInternalServerError, cerrors.ErrCodeInternal,
			msgAnalyzeFailed, true, nil)
	}
}
