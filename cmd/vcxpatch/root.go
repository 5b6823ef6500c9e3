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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/vcxpatch/pkg/config"
	"github.com/walteh/vcxpatch/pkg/log"
	"github.com/walteh/vcxpatch/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the flag values of the root command
type rootOpts struct {
	configFile string
	debug      bool
	dryRun     bool
}

// newRootCmd creates the vcxpatch command. Diagnostics go to stderr.
func newRootCmd(stderr io.Writer) *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "vcxpatch <file>",
		Short: "Switch a Visual Studio project file from Win32 to x64",
		Long: `vcxpatch rewrites the Win32 configuration and platform markers of a
project file in place:

  Release|Win32               -> Release|x64
  Debug|Win32                 -> Debug|x64
  <Platform>Win32</Platform>  -> <Platform>x64</Platform>

Nothing else is changed. No backup is kept.`,
		Args:          cobra.ExactArgs(1),
		Version:       GetVersionInfo().Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, stderr, opts, args[0])
		},
	}

	cmd.SetVersionTemplate(FormatVersion())
	addRootFlags(cmd, opts)

	return cmd
}

// addRootFlags adds the optional flags to the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "rule set file (.hcl, .yaml, .yml, .json) replacing the built-in rules")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "report replacements without writing the file")
}

// setupLogging builds the structured logger for a run
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

func run(cmd *cobra.Command, stderr io.Writer, opts *rootOpts, path string) error {
	zlog := setupLogging(stderr, opts.debug)
	ctx := zlog.WithContext(cmd.Context())

	console := log.New(cmd.OutOrStdout(), zlog)
	ctx = log.NewContext(ctx, console)

	patchOpts := patch.Options{DryRun: opts.dryRun}
	if opts.configFile != "" {
		cfg, err := config.LoadConfig(ctx, opts.configFile)
		if err != nil {
			return errors.Errorf("loading rule set: %w", err)
		}
		patchOpts.Rules = cfg.ReplacementRules()
	}

	res, err := patch.New(patchOpts).Patch(ctx, path)
	if err != nil {
		return errors.Errorf("patching %s: %w", path, err)
	}

	report(ctx, res, opts.debug)

	return nil
}

// report prints the outcome of a patch
func report(ctx context.Context, res *patch.Result, verbose bool) {
	console := log.FromContext(ctx)

	if verbose || !res.Written {
		status := "no change"
		switch {
		case !res.Written:
			status = "dry run"
		case res.WasModified:
			status = "patched"
		}
		console.LogFileOperation(ctx, log.FileOperation{
			Path:         res.Path,
			Status:       status,
			IsModified:   res.WasModified,
			IsDryRun:     !res.Written,
			Replacements: res.Replacements,
		})
	}

	if !res.Written {
		console.Info(res.Message())
		return
	}
	console.Success(res.Message())
}
