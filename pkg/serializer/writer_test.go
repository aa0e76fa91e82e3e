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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type pair struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type pairList []pair

func (p pairList) TableHeader() []string { return []string{"TITLE", "DESCRIPTION"} }

func (p pairList) TableRows() [][]string {
	rows := make([][]string, 0, len(p))
	for _, s := range p {
		rows = append(rows, []string{s.Title, s.Description})
	}
	return rows
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("%q should be known", f)
		}
	}
	if !Format("xml").IsUnknown() {
		t.Error("xml should be unknown")
	}
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	if err := w.Serialize(context.Background(), pair{Title: "A", Description: "B"}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var got pair
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if got.Title != "A" || got.Description != "B" {
		t.Errorf("unexpected output: %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented JSON")
	}
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	if err := w.Serialize(context.Background(), pair{Title: "A", Description: "B"}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var got pair
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML output: %v", err)
	}
	if got.Title != "A" {
		t.Errorf("expected title A, got %q", got.Title)
	}
}

func TestWriter_TableTabular(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	data := pairList{{"Data Analytics Courses", "Learn SQL"}, {"Network Growth", "Connect"}}
	if err := w.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "TITLE") {
		t.Errorf("expected header row, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "Data Analytics Courses") {
		t.Errorf("expected first row, got %q", lines[2])
	}
}

func TestWriter_TableFlatten(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	data := map[string]any{"nested": map[string]int{"count": 2}}
	if err := w.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	if !strings.Contains(buf.String(), "nested.count") {
		t.Errorf("expected flattened key, got:\n%s", buf.String())
	}
}

func TestWriter_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	if err := w.Serialize(context.Background(), pairList{}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	w := NewWriter(Format("xml"), &bytes.Buffer{})
	if w.format != FormatJSON {
		t.Errorf("expected json, got %s", w.format)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w, err := NewFileWriterOrStdout(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriterOrStdout() error = %v", err)
	}
	if err := w.Serialize(context.Background(), pair{Title: "T"}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(b), `"title": "T"`) {
		t.Errorf("unexpected file content: %s", b)
	}
}

func TestNewFileWriterOrStdout_BadPath(t *testing.T) {
	_, err := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
