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

package text

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*SimpleTextReplacer)(nil)

// SimpleTextReplacer implements TextReplacer using literal string replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	logger := zerolog.Ctx(ctx)

	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}

		count := strings.Count(currentContent, rule.FromText)
		if count == 0 {
			continue
		}

		currentContent = strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)
		result.ReplacementCount += count

		// a rule mapping text onto itself matches but changes nothing
		if rule.FromText != rule.ToText {
			result.WasModified = true
		}

		logger.Debug().
			Str("from", rule.FromText).
			Str("to", rule.ToText).
			Int("count", count).
			Msg("applied replacement")
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// 🔍 FilterRules returns the rules that apply to the file at path, keeping their order
func FilterRules(rules []ReplacementRule, path string) []ReplacementRule {
	name := filepath.Base(path)
	out := make([]ReplacementRule, 0, len(rules))
	for _, rule := range rules {
		if rule.FileFilterGlob == "" {
			out = append(out, rule)
			continue
		}
		matched, err := doublestar.Match(rule.FileFilterGlob, name)
		if err != nil || !matched {
			continue
		}
		out = append(out, rule)
	}
	return out
}
