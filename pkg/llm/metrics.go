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

package llm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	cerrors "github.com/mchmarny/discovery/pkg/errors"
)

const outcomeSuccess = "success"

var (
	completionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_llm_requests_total",
			Help: "Total number of language model completion requests by outcome",
		},
		[]string{"outcome"},
	)

	completionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_llm_request_duration_seconds",
			Help:    "Duration of language model completion requests in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
	)
)

func observeCompletion(code cerrors.ErrorCode, ok bool, d time.Duration) {
	outcome := outcomeSuccess
	if !ok {
		outcome = string(code)
	}
	completionRequests.WithLabelValues(outcome).Inc()
	completionDuration.Observe(d.Seconds())
}
