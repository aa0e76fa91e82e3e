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

// Package config loads the discovery service configuration.
//
// Values come from process environment variables, optionally seeded from a
// .env file in the working directory (github.com/joho/godotenv). Variables
// already present in the environment take precedence over the file.
//
// The result is a plain Config value that is passed explicitly to the
// components that need it; nothing downstream reads the environment.
//
//	PORT              listening port (default 3001)
//	ENVIRONMENT       deployment mode, e.g. development or production
//	                  (NODE_ENV is accepted as an alias)
//	OPENAI_API_KEY    credential for the language model API; empty disables it
//	OPENAI_MODEL      chat model name (default gpt-4o-mini)
//	OPENAI_BASE_URL   API base URL (default https://api.openai.com/v1)
//	CORS_ORIGINS      comma separated allowed origins (default *)
//	LOG_LEVEL         debug, info, warn, error
package config
