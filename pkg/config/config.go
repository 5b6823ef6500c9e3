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
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/vcxpatch/pkg/text"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Rule is a single literal replacement in a rule set
type Rule struct {
	From  string `json:"from" yaml:"from" hcl:"from"`
	To    string `json:"to" yaml:"to" hcl:"to,optional"`
	Files string `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"` // optional base name glob
}

// 📚 Config is an ordered rule set
type Config struct {
	Rules []Rule `json:"rules" yaml:"rules" hcl:"replace,block"`
}

// 🎯 LoadConfig loads a rule set from a file, picking the parser by extension
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading rule set")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().Int("rules", len(cfg.Rules)).Msg("loaded rule set")

	return cfg, nil
}

// 🔍 Validate checks that the rule set is usable
func (cfg *Config) Validate() error {
	if len(cfg.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}
	for i, r := range cfg.Rules {
		if r.From == "" {
			return errors.Errorf("rules[%d].from is required", i)
		}
	}
	return text.NewSimpleTextReplacer().ValidateRules(cfg.ReplacementRules())
}

// ReplacementRules converts the rule set for the replacement engine, keeping order
func (cfg *Config) ReplacementRules() []text.ReplacementRule {
	out := make([]text.ReplacementRule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		out = append(out, text.ReplacementRule{
			FromText:       r.From,
			ToText:         r.To,
			FileFilterGlob: r.Files,
		})
	}
	return out
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}
