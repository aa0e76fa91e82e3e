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
	"runtime"
	"time"

	"github.com/mchmarny/discovery/pkg/defaults"
	cerrors "github.com/mchmarny/discovery/pkg/errors"
	"github.com/mchmarny/discovery/pkg/serializer"
)

// HealthResponse represents health check response
type HealthResponse struct {
	Status           string      `json:"status" yaml:"status"`
	Timestamp        string      `json:"timestamp" yaml:"timestamp"`
	Uptime           float64     `json:"uptime" yaml:"uptime"`
	Memory           MemoryStats `json:"memory" yaml:"memory"`
	OpenAIConfigured bool        `json:"openaiConfigured" yaml:"openaiConfigured"`
}

// MemoryStats is a snapshot of process memory in bytes.
type MemoryStats struct {
	HeapUsed   uint64 `json:"heapUsed" yaml:"heapUsed"`
	HeapTotal  uint64 `json:"heapTotal" yaml:"heapTotal"`
	Sys        uint64 `json:"sys" yaml:"sys"`
	NumGC      uint32 `json:"numGC" yaml:"numGC"`
	Goroutines int    `json:"goroutines" yaml:"goroutines"`
}

// ReadyResponse represents readiness check response
type ReadyResponse struct {
	Status    string `json:"status" yaml:"status"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func readMemoryStats() MemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemoryStats{
		HeapUsed:   m.HeapAlloc,
		HeapTotal:  m.HeapSys,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	WriteError(w, r, http.StatusMethodNotAllowed, cerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, nil)
	return false
}

// handleHealth handles GET /health. It always answers 200 while the process is up.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:           "healthy",
		Timestamp:        time.Now().UTC().Format(defaults.TimestampFormat),
		Uptime:           time.Since(s.startedAt).Seconds(),
		Memory:           readMemoryStats(),
		OpenAIConfigured: s.config.OpenAIConfigured,
	})
}

// handleReady handles GET /ready
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	now := time.Now().UTC().Format(defaults.TimestampFormat)
	if !s.isReady() {
		serializer.RespondJSON(w, http.StatusServiceUnavailable, ReadyResponse{
			Status:    "not_ready",
			Timestamp: now,
			Reason:    "service is starting or shutting down",
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ReadyResponse{
		Status:    "ready",
		Timestamp: now,
	})
}
