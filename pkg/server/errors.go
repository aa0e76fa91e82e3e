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

package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mchmarny/discovery/pkg/defaults"
	cerrors "github.com/mchmarny/discovery/pkg/errors"
	"github.com/mchmarny/discovery/pkg/serializer"
)

// ErrorResponse is the body of every error returned by the API.
type ErrorResponse struct {
	Error     string         `json:"error"`
	Code      string         `json:"code"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp string         `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

func newErrorResponse(r *http.Request, code cerrors.ErrorCode, message string,
	retryable bool, details map[string]any) ErrorResponse {

	requestID := RequestID(r)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return ErrorResponse{
		Error:     message,
		Code:      string(code),
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(defaults.TimestampFormat),
		Retryable: retryable,
	}
}

// WriteError writes a standardized error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	serializer.RespondJSON(w, statusCode, newErrorResponse(r, code, message, retryable, details))
}
