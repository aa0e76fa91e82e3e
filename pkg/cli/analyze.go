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

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/discovery/pkg/defaults"
	"github.com/mchmarny/discovery/pkg/header"
	"github.com/mchmarny/discovery/pkg/serializer"
	"github.com/mchmarny/discovery/pkg/suggestion"
)

// analyzeReport is the document written by the analyze command.
type analyzeReport struct {
	header.Header     `json:",inline" yaml:",inline"`
	suggestion.Result `json:",inline" yaml:",inline"`
}

func newAnalyzeReport(res *suggestion.Result) *analyzeReport {
	r := &analyzeReport{Result: *res}
	r.Init(header.KindSuggestionReport, version)
	r.SetMetadata("source", string(res.Source))
	return r
}

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "analyze",
		EnableShellCompletion: true,
		Usage:                 "Suggest discovery actions for post content",
		Description: `Resolves suggestions locally, using the same configuration as the server.

Content comes from --content, or from --file. A .json, .yaml or .yml file is
read as an analyze request ({"content": "..."}); any other file is read as
plain text. Use --file - to read plain text from stdin.

# Examples

  discovery analyze --content "Excited to join the data platform team"
  discovery analyze --file post.txt --format table
  discovery analyze --file request.yaml --output suggestions.yaml --format yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "content",
				Aliases: []string{"c"},
				Usage:   "Post content to analyze",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a content file or analyze request (- for stdin)",
			},
			envFileFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			content, err := readContent(cmd)
			if err != nil {
				return err
			}
			if n := utf8.RuneCountInString(content); n < suggestion.MinContentLength {
				return fmt.Errorf("content must be at least %d characters long, got %d",
					suggestion.MinContentLength, n)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.AnalyzeHandlerTimeout)
			defer cancel()

			res, err := suggestion.NewResolver(cfg).Resolve(ctx, content)
			if err != nil {
				return fmt.Errorf("failed to analyze content: %w", err)
			}
			slog.Debug("resolved suggestions",
				"source", res.Source,
				"reason", res.Reason,
				"count", len(res.Suggestions))

			ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, newAnalyzeReport(res))
		},
	}
}

// readContent returns the content named by --content or --file.
func readContent(cmd *cli.Command) (string, error) {
	content, path := cmd.String("content"), cmd.String("file")

	switch {
	case content != "" && path != "":
		return "", errors.New("--content and --file are mutually exclusive")
	case content != "":
		return content, nil
	case path == "":
		return "", errors.New("one of --content or --file is required")
	case path == "-":
		b, err := io.ReadAll(io.LimitReader(os.Stdin, defaults.MaxRequestBodyBytes))
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	if serializer.FormatFromPath(path) != "" {
		req, err := serializer.FromFile[suggestion.AnalyzeRequest](path)
		if err != nil {
			return "", fmt.Errorf("failed to load analyze request from %q: %w", path, err)
		}
		if req.Content == nil {
			return "", fmt.Errorf("analyze request %q has no content", path)
		}
		return *req.Content, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read content from %q: %w", path, err)
	}
	return strings.TrimSpace(string(b)), nil
}
