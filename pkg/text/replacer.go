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
)

// 🔄 ReplacementRule defines a single literal text replacement
type ReplacementRule struct {
	// FromText is the exact text to replace
	FromText string

	// ToText is the replacement text
	ToText string

	// FileFilterGlob limits the rule to files whose base name matches.
	// Empty means every file.
	FileFilterGlob string
}

// 📊 ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// 🔌 TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the rules in order, each to the output of the previous one
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
