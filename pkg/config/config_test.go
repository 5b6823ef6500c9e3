// Copyright 2025 walteh LLC
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
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/vcxpatch/pkg/text"
	"gitlab.com/tozd/go/errors"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

var wantRules = []text.ReplacementRule{
	{FromText: "Release|Win32", ToText: "Release|x64"},
	{FromText: "Debug|Win32", ToText: "Debug|x64", FileFilterGlob: "*.vcxproj"},
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		config   string
	}{
		{
			name:     "hcl",
			filename: "rules.hcl",
			config: `
replace {
  from = "Release|Win32"
  to   = "Release|x64"
}

replace {
  from  = "Debug|${platform.win32}"
  to    = "Debug|${platform.x64}"
  files = "*.vcxproj"
}
`,
		},
		{
			name:     "yaml",
			filename: "rules.yaml",
			config: `
rules:
  - from: Release|Win32
    to: Release|x64
  - from: Debug|Win32
    to: Debug|x64
    files: "*.vcxproj"
`,
		},
		{
			name:     "yml",
			filename: "rules.yml",
			config: `
rules:
  - {from: Release|Win32, to: Release|x64}
  - {from: Debug|Win32, to: Debug|x64, files: "*.vcxproj"}
`,
		},
		{
			name:     "json",
			filename: "rules.json",
			config: `{
  "rules": [
    {"from": "Release|Win32", "to": "Release|x64"},
    {"from": "Debug|Win32", "to": "Debug|x64", "files": "*.vcxproj"}
  ]
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.filename, tt.config)

			cfg, err := LoadConfig(testContext(t), path)
			require.NoError(t, err)
			assert.Equal(t, wantRules, cfg.ReplacementRules())
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
	}{
		{
			name:        "unsupported_extension",
			filename:    "rules.toml",
			config:      `rules = []`,
			errContains: "no parser found",
		},
		{
			name:        "no_rules",
			filename:    "rules.yaml",
			config:      "rules: []\n",
			errContains: "at least one rule is required",
		},
		{
			name:        "missing_from",
			filename:    "rules.json",
			config:      `{"rules": [{"to": "x64"}]}`,
			errContains: "rules[0].from is required",
		},
		{
			name:        "bad_glob",
			filename:    "rules.yaml",
			config:      "rules:\n  - {from: a, to: b, files: \"[abc\"}\n",
			errContains: "invalid file_filter_glob",
		},
		{
			name:        "unknown_yaml_field",
			filename:    "rules.yaml",
			config:      "rules:\n  - {from: a, to: b, regex: true}\n",
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			filename:    "rules.json",
			config:      `{"rules": [], "backup": true}`,
			errContains: "parsing JSON",
		},
		{
			name:        "unknown_hcl_attribute",
			filename:    "rules.hcl",
			config:      "replace {\n  from = \"a\"\n  regex = true\n}\n",
			errContains: "decoding HCL",
		},
		{
			name:        "invalid_hcl",
			filename:    "rules.hcl",
			config:      "replace {",
			errContains: "parsing HCL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.filename, tt.config)

			_, err := LoadConfig(testContext(t), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(testContext(t), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "error should wrap fs.ErrNotExist")
}

func TestHCLDeletionRule(t *testing.T) {
	cfg, err := (&HCLParser{}).Parse(context.Background(), []byte("replace {\n  from = \"Win32\"\n}\n"))
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "", cfg.Rules[0].To, "to should default to empty")
}
