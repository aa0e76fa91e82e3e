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
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(requests int, window, ttl time.Duration) (*clientRateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := newClientRateLimiter(requests, window, ttl)
	l.now = clock.now
	return l, clock
}

func TestNewClientRateLimiter_Disabled(t *testing.T) {
	if l := newClientRateLimiter(0, time.Minute, time.Minute); l != nil {
		t.Error("expected nil limiter for zero requests")
	}
	if l := newClientRateLimiter(10, 0, time.Minute); l != nil {
		t.Error("expected nil limiter for zero window")
	}
}

func TestNewClientRateLimiter_TTLAtLeastWindow(t *testing.T) {
	l := newClientRateLimiter(10, time.Hour, time.Minute)
	if l.idleTTL != time.Hour {
		t.Errorf("expected idle TTL raised to window, got %v", l.idleTTL)
	}
}

func TestClientRateLimiter_Take(t *testing.T) {
	l, clock := newTestLimiter(4, time.Minute, time.Hour)

	for i := 3; i >= 0; i-- {
		wait, remaining := l.take("a")
		if wait != 0 {
			t.Fatalf("expected token, got wait %v", wait)
		}
		if remaining != i {
			t.Fatalf("expected %d remaining, got %d", i, remaining)
		}
	}

	wait, remaining := l.take("a")
	if wait != 15*time.Second {
		t.Errorf("expected wait of one refill interval (15s), got %v", wait)
	}
	if remaining != 0 {
		t.Errorf("expected 0 remaining, got %d", remaining)
	}

	// rejected attempts do not consume tokens
	clock.advance(15 * time.Second)
	if wait, _ := l.take("a"); wait != 0 {
		t.Errorf("expected token after refill, got wait %v", wait)
	}

	if wait, _ := l.take("b"); wait != 0 {
		t.Errorf("expected independent bucket for second key, got wait %v", wait)
	}
}

func TestClientRateLimiter_FullWindowRefills(t *testing.T) {
	l, clock := newTestLimiter(100, 15*time.Minute, 30*time.Minute)

	for i := 0; i < 100; i++ {
		if wait, _ := l.take("ip"); wait != 0 {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
	if wait, _ := l.take("ip"); wait == 0 {
		t.Fatal("expected 101st request in window to be limited")
	}

	clock.advance(15 * time.Minute)
	for i := 0; i < 100; i++ {
		if wait, _ := l.take("ip"); wait != 0 {
			t.Fatalf("after window, request %d unexpectedly limited", i+1)
		}
	}
}

// A drained bucket earns one token per window/requests, so a client pacing
// itself after a full burst gets up to requests-1 more within the same window.
func TestClientRateLimiter_PacedClientAfterBurst(t *testing.T) {
	l, clock := newTestLimiter(100, 15*time.Minute, 30*time.Minute)
	start := clock.t

	accepted := 0
	for i := 0; i < 100; i++ {
		if wait, _ := l.take("ip"); wait == 0 {
			accepted++
		}
	}

	for {
		clock.advance(9 * time.Second)
		if clock.t.Sub(start) >= 15*time.Minute {
			break
		}
		if wait, _ := l.take("ip"); wait == 0 {
			accepted++
		}
		if wait, _ := l.take("ip"); wait == 0 {
			t.Fatalf("second request at %v unexpectedly allowed", clock.t.Sub(start))
		}
	}

	if accepted != 199 {
		t.Errorf("expected 199 requests accepted within one window, got %d", accepted)
	}
}

func TestClientRateLimiter_EvictsIdleClients(t *testing.T) {
	l, clock := newTestLimiter(10, time.Minute, time.Minute)

	l.take("idle")
	clock.advance(30 * time.Second)
	l.take("active")

	clock.advance(40 * time.Second)
	l.take("active")

	if _, ok := l.clients["idle"]; ok {
		t.Error("expected idle client to be evicted")
	}
	if _, ok := l.clients["active"]; !ok {
		t.Error("expected active client to be kept")
	}
}
