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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvPort          = "PORT"
	EnvEnvironment   = "ENVIRONMENT"
	EnvNodeEnv       = "NODE_ENV"
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvOpenAIModel   = "OPENAI_MODEL"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"
	EnvCORSOrigins   = "CORS_ORIGINS"
	EnvLogLevel      = "LOG_LEVEL"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultPort          = 3001
	DefaultEnvironment   = "development"
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultLogLevel      = "info"

	// EnvironmentProduction hides internal error details from responses.
	EnvironmentProduction = "production"
)

// Config is the application configuration.
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	CORSOrigins []string

	OpenAI OpenAI
}

// OpenAI holds the language model API settings.
type OpenAI struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Configured reports whether a credential is present.
func (o OpenAI) Configured() bool {
	return strings.TrimSpace(o.APIKey) != ""
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvironmentProduction)
}

// Default returns a Config with every default applied and no credential.
func Default() *Config {
	return &Config{
		Port:        DefaultPort,
		Environment: DefaultEnvironment,
		LogLevel:    DefaultLogLevel,
		CORSOrigins: []string{"*"},
		OpenAI: OpenAI{
			Model:   DefaultOpenAIModel,
			BaseURL: DefaultOpenAIBaseURL,
		},
	}
}

// Load reads the optional files (".env" when none are given) into the
// environment and then builds a Config from it.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %q: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvPort)); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid %s %q: must be a number between 1 and 65535", EnvPort, v)
		}
		cfg.Port = port
	}

	if v := strings.TrimSpace(getenv(EnvEnvironment)); v != "" {
		cfg.Environment = strings.ToLower(v)
	} else if v := strings.TrimSpace(getenv(EnvNodeEnv)); v != "" {
		cfg.Environment = strings.ToLower(v)
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	if v := strings.TrimSpace(getenv(EnvCORSOrigins)); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	cfg.OpenAI.APIKey = strings.TrimSpace(getenv(EnvOpenAIKey))
	if v := strings.TrimSpace(getenv(EnvOpenAIModel)); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := strings.TrimSpace(getenv(EnvOpenAIBaseURL)); v != "" {
		cfg.OpenAI.BaseURL = strings.TrimSuffix(v, "/")
	}

	return cfg, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
