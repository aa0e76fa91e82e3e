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
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientRateLimiter keeps one token bucket per client key. A bucket holds
// the full request budget and refills evenly across the window.
type clientRateLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	clients   map[string]*clientBucket
	lastSweep time.Time
	now       func() time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newClientRateLimiter returns nil when requests or window is not positive,
// which disables limiting. idleTTL should be at least window so an evicted
// bucket would have been full anyway.
func newClientRateLimiter(requests int, window, idleTTL time.Duration) *clientRateLimiter {
	if requests <= 0 || window <= 0 {
		return nil
	}
	if idleTTL < window {
		idleTTL = window
	}

	return &clientRateLimiter{
		limit:   rate.Every(window / time.Duration(requests)),
		burst:   requests,
		idleTTL: idleTTL,
		clients: make(map[string]*clientBucket),
		now:     time.Now,
	}
}

// take consumes one token for key. When the bucket is empty it consumes
// nothing and returns how long until a token is available.
func (l *clientRateLimiter) take(key string) (wait time.Duration, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.clients[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = b
		trackedClients.Set(float64(len(l.clients)))
	}
	b.lastSeen = now

	res := b.limiter.ReserveN(now, 1)
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return d, 0
	}

	return 0, int(b.limiter.TokensAt(now))
}

// sweep evicts idle buckets at most once per idleTTL. Caller holds mu.
func (l *clientRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	for key, b := range l.clients {
		if now.Sub(b.lastSeen) >= l.idleTTL {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
	trackedClients.Set(float64(len(l.clients)))
}
