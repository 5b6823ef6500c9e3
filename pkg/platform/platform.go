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

// Package platform holds the built-in Win32 to x64 rule set.
package platform

import "github.com/walteh/vcxpatch/pkg/text"

const (
	ReleaseWin32 = "Release|Win32"
	ReleaseX64   = "Release|x64"
	DebugWin32   = "Debug|Win32"
	DebugX64     = "Debug|x64"
	ElementWin32 = "<Platform>Win32</Platform>"
	ElementX64   = "<Platform>x64</Platform>"
)

// X64Rules returns the ordered Win32 to x64 replacements. The slice is new
// on every call.
//
// Toolset and mkspec path segments such as "mkspecs\win32-msvc" are not
// covered. The mkspec name is shared by 32 and 64 bit MSVC builds, so
// rewriting it could break a valid path.
func X64Rules() []text.ReplacementRule {
	return []text.ReplacementRule{
		{FromText: ReleaseWin32, ToText: ReleaseX64},
		{FromText: DebugWin32, ToText: DebugX64},
		{FromText: ElementWin32, ToText: ElementX64},
	}
}
