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
	"os"

	"github.com/pterm/pterm"
)

func main() {
	cmd := newRootCmd(os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		reportFailure(os.Stderr, err)
		os.Exit(1)
	}
}

// reportFailure prints a failed run to w
func reportFailure(w io.Writer, err error) {
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(w).Println("vcxpatch failed")
	pterm.Error.WithWriter(w).Println(err)
}
