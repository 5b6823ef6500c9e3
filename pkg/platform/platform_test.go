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

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/vcxpatch/pkg/text"
)

func TestX64Rules(t *testing.T) {
	rules := X64Rules()

	require.Len(t, rules, 3)
	assert.Equal(t, text.ReplacementRule{FromText: "Release|Win32", ToText: "Release|x64"}, rules[0])
	assert.Equal(t, text.ReplacementRule{FromText: "Debug|Win32", ToText: "Debug|x64"}, rules[1])
	assert.Equal(t, text.ReplacementRule{FromText: "<Platform>Win32</Platform>", ToText: "<Platform>x64</Platform>"}, rules[2])

	require.NoError(t, text.NewSimpleTextReplacer().ValidateRules(rules))
}

func TestX64RulesFreshSlice(t *testing.T) {
	a := X64Rules()
	a[0].ToText = "changed"

	assert.Equal(t, ReleaseX64, X64Rules()[0].ToText)
}
