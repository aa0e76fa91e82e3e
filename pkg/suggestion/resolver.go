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
	"errors"
	"log/slog"

	"github.com/mchmarny/discovery/pkg/config"
	cerrors "github.com/mchmarny/discovery/pkg/errors"
	"github.com/mchmarny/discovery/pkg/llm"
)

// Completer is the external language model call.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCompleter replaces the language model client built from config.
func WithCompleter(c Completer) Option {
	return func(r *Resolver) {
		r.completer = c
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// Resolver produces suggestions for content. It tries the language model once
// and degrades to Fallback on any failure. Safe for concurrent use.
type Resolver struct {
	completer Completer
	logger    *slog.Logger
}

// NewResolver returns a Resolver using cfg.OpenAI for the language model client.
// A nil cfg behaves like config.Default(), which has no credential.
func NewResolver(cfg *config.Config, opts ...Option) *Resolver {
	if cfg == nil {
		cfg = config.Default()
	}

	r := &Resolver{
		completer: llm.NewClient(cfg.OpenAI),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configured reports whether the language model branch is available.
func (r *Resolver) Configured() bool {
	return r.completer != nil && r.completer.Configured()
}

type outcomeKind int

const (
	outcomeNotConfigured outcomeKind = iota
	outcomeSuccess
	outcomeParseFailure
	outcomeTransportFailure
)

// completion is the result of one attempt at the language model.
type completion struct {
	kind        outcomeKind
	suggestions List
	err         error
}

func (r *Resolver) attempt(ctx context.Context, content string) completion {
	if !r.Configured() {
		return completion{kind: outcomeNotConfigured}
	}

	text, err := r.completer.Complete(ctx, llm.Request{
		System: systemPrompt,
		User:   userPrompt(content),
	})
	if err != nil {
		return completion{kind: outcomeTransportFailure, err: err}
	}

	list, err := Normalize(text)
	if err != nil {
		return completion{kind: outcomeParseFailure, err: err}
	}
	return completion{kind: outcomeSuccess, suggestions: list}
}

// Resolve returns suggestions for content. External failures never surface
// as errors; the only error is a request context that ended before work began.
func (r *Resolver) Resolve(ctx context.Context, content string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		code := cerrors.ErrCodeUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			code = cerrors.ErrCodeTimeout
		}
		return nil, cerrors.Wrap(code, "request ended before resolution", err)
	}

	c := r.attempt(ctx, content)

	var res *Result
	switch c.kind {
	case outcomeSuccess:
		res = &Result{Suggestions: c.suggestions, Source: SourceLLM}
		if len(c.suggestions) == 0 {
			r.logger.Warn("language model returned no suggestions")
		} else {
			r.logger.Debug("suggestions from language model", "count", len(c.suggestions))
		}
	case outcomeNotConfigured:
		res = r.fallback(content, ReasonNotConfigured)
	case outcomeParseFailure:
		res = r.fallback(content, ReasonParseFailure)
		r.logger.Warn("language model output could not be parsed, using fallback",
			"error", c.err)
	case outcomeTransportFailure:
		res = r.fallback(content, ReasonTransportFailure)
		r.logger.Warn("language model request failed, using fallback",
			"error", c.err,
			"code", cerrors.CodeOf(c.err))
	}

	suggestionsServed.WithLabelValues(string(res.Source), string(res.Reason)).Inc()
	return res, nil
}

func (r *Resolver) fallback(content string, reason Reason) *Result {
	return &Result{
		Suggestions: Fallback(content),
		Source:      SourceFallback,
		Reason:      reason,
	}
}
