/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/whence/tsconfig"
)

func TestPathsAgree(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		resolved string
		want     bool
	}{
		{"identical", "src/a.js", "src/a.js", true},
		{"leading ./", "./src/a.js", "src/a.js", true},
		{"directory index", "src/lib", "src/lib/index.ts", true},
		{"extension probing", "src/a", "src/a.ts", true},
		{"declaration file", "src/a", "src/a.d.ts", true},
		{"source extension rewrite", "src/a.js", "src/a.ts", true},
		{"rewrite to declaration file", "src/a.js", "src/a.d.ts", true},
		{"dotted name probed", "src/user.service", "src/user.service.ts", true},
		{"dotted name rewritten", "src/theme.config.js", "src/theme.config.ts", true},
		{"dot is not a source extension", "src/lodash.debounce", "src/lodash.js", false},
		{"different dotted names", "src/a.styles", "src/a.service", false},
		{"sibling prefix", "src/lib", "src/library.ts", false},
		{"empty expected", "", "src/a.js", false},
		{"empty resolved", "src/a.js", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathsAgree(tt.expected, tt.resolved))
		})
	}
}

func TestClassify_DottedFileNames(t *testing.T) {
	m := testManifest()
	m.Imports = map[string]string{"#*": "./src/*"}

	paths, err := New(ResolveOptions{}, nil, &tsconfig.PathMapping{
		Paths: map[string][]string{"@app/*": {"./src/*"}},
	})
	require.NoError(t, err)
	imports, err := New(ResolveOptions{}, m, nil)
	require.NoError(t, err)
	baseURL, err := New(ResolveOptions{}, nil, &tsconfig.PathMapping{BaseURL: "./src"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		c        *Classifier
		module   string
		resolved string
		want     Origin
	}{
		{"paths config file", paths, "@app/theme.config", "src/theme.config.ts", OriginTypecheckerPaths},
		{"paths service", paths, "@app/user.service", "src/user.service.ts", OriginTypecheckerPaths},
		{"paths plain name", paths, "@app/theme", "src/theme.ts", OriginTypecheckerPaths},
		{"subpath import styles", imports, "#button.styles", "src/button.styles.js", OriginSubpathImport},
		{"base url helpers", baseURL, "utils.helpers", "src/utils.helpers.ts", OriginTypecheckerBaseURL},
		{"base url dotted package elsewhere", baseURL, "lodash.debounce", "src/lodash.js", OriginNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Explain(tt.module, tt.resolved).Origin)
		})
	}
}
