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

package patch

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/vcxpatch/pkg/platform"
	"github.com/walteh/vcxpatch/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a Patcher
type Options struct {
	// Rules are applied in order. Empty means platform.X64Rules().
	Rules []text.ReplacementRule

	// DryRun skips the write step
	DryRun bool
}

// 📄 Result describes one patched file
type Result struct {
	Path         string
	Replacements int
	WasModified  bool
	Written      bool
}

// Message returns the line reported to the user
func (r *Result) Message() string {
	if !r.Written {
		return fmt.Sprintf("Would patch %s (%d replacements)", r.Path, r.Replacements)
	}
	return fmt.Sprintf("Successfully patched %s", r.Path)
}

// 🩹 Patcher rewrites platform markers in a file in place
type Patcher struct {
	rules    []text.ReplacementRule
	dryRun   bool
	replacer text.TextReplacer
}

// 🏭 New creates a new Patcher
func New(opts Options) *Patcher {
	p := &Patcher{
		rules:    opts.Rules,
		dryRun:   opts.DryRun,
		replacer: text.NewSimpleTextReplacer(),
	}
	if len(p.rules) == 0 {
		p.rules = platform.X64Rules()
	}
	return p
}

// Patch reads the file at path, applies the rules in order and writes the
// result back to the same path. There is no backup and the write is not
// atomic. A file with no matches is still written back unchanged.
func (p *Patcher) Patch(ctx context.Context, path string) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	// validated before filtering, FilterRules drops rules with a bad glob
	if err := p.replacer.ValidateRules(p.rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	rules := text.FilterRules(p.rules, path)

	replaced, mode, err := p.read(ctx, path, rules)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("rules", len(rules)).
		Int("replacements", replaced.ReplacementCount).
		Bool("modified", replaced.WasModified).
		Msg("replaced platform markers")

	result := &Result{
		Path:         path,
		Replacements: replaced.ReplacementCount,
		WasModified:  replaced.WasModified,
	}

	if p.dryRun {
		logger.Debug().Msg("dry run, skipping write")
		return result, nil
	}

	if err := os.WriteFile(path, replaced.ModifiedContent, mode); err != nil {
		return nil, errors.Errorf("writing file: %w", err)
	}
	result.Written = true

	logger.Debug().
		Int("bytes_before", len(replaced.OriginalContent)).
		Int("bytes_after", len(replaced.ModifiedContent)).
		Msg("wrote file")

	return result, nil
}

// read loads and rewrites the content. The read handle is closed before
// returning so the caller can reopen the path for writing.
func (p *Patcher) read(ctx context.Context, path string, rules []text.ReplacementRule) (*text.ReplacementResult, fs.FileMode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Errorf("reading file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, errors.Errorf("reading file: %w", err)
	}
	if info.IsDir() {
		return nil, 0, errors.Errorf("reading file: %s is a directory", path)
	}

	replaced, err := p.replacer.ReplaceText(ctx, f, rules)
	if err != nil {
		return nil, 0, errors.Errorf("reading file: %w", err)
	}

	return replaced, info.Mode().Perm(), nil
}
