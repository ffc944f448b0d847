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

	"bennypowers.dev/whence/manifest"
	"bennypowers.dev/whence/specifier"
	"bennypowers.dev/whence/tsconfig"
)

func testManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Name:         "test",
		Version:      "1.0.0",
		Dependencies: map[string]string{},
	}
}

func rainbowOptions() ResolveOptions {
	return ResolveOptions{
		BaseDirectory: "over/the/rainbow",
		Alias:         map[string]string{"@": "./src"},
	}
}

func TestClassify_NonAliased(t *testing.T) {
	tags, err := Classify("fs", "fs", rainbowOptions(), testManifest(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, tags)
}

func TestClassify_SubpathImport(t *testing.T) {
	m := testManifest()
	m.Imports = map[string]string{"#*": "./src/*"}

	tags, err := Classify("#some/thing.js", "src/some/thing.js", rainbowOptions(), m, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{TagAliased, TagSubpathImport}, tags)
}

func TestClassify_SubpathImportNotInImports(t *testing.T) {
	m := testManifest()
	m.Imports = map[string]string{"#different/things": "./lib/*"}

	tags, err := Classify("#some/thing.js", "src/some/thing.js", rainbowOptions(), m, nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestClassify_SubpathImportWithoutImports(t *testing.T) {
	tags, err := Classify("#some/thing.js", "src/some/thing.js", rainbowOptions(), testManifest(), nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestClassify_Webpack(t *testing.T) {
	tags, err := Classify("@some/thing.js", "src/some/thing.js", rainbowOptions(), testManifest(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{TagAliased, TagWebpack}, tags)
}

func TestClassify_Workspace(t *testing.T) {
	tests := []struct {
		name       string
		workspaces []string
		opts       ResolveOptions
		resolved   string
	}{
		{
			name:       "literals",
			workspaces: []string{"packages/b-package", "packages/a-package", "packages/c-package"},
			opts:       rainbowOptions(),
			resolved:   "packages/a-package/index.js",
		},
		{
			name:       "globs",
			workspaces: []string{"packages/*"},
			resolved:   "packages/a-package/index.js",
		},
		{
			name:       "glob ending with /",
			workspaces: []string{"*/"},
			resolved:   "packages/a-package/index.js",
		},
		{
			name:       "convoluted glob",
			workspaces: []string{"*/?-package"},
			resolved:   "packages/a-package/index.js",
		},
		{
			name:       "symlink not followed",
			workspaces: []string{"*/?-package"},
			resolved:   "node_modules/a-package/index.js",
		},
		{
			name:       "file below the package root",
			workspaces: []string{"packages/*"},
			resolved:   "packages/a-package/dist/esm/index.js",
		},
		{
			name:       "pnpm virtual store",
			workspaces: []string{"*/?-package"},
			resolved:   "node_modules/.pnpm/a-package@1.0.0/node_modules/a-package/index.js",
		},
		{
			name:       "doublestar",
			workspaces: []string{"apps/**"},
			resolved:   "apps/web/admin/index.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testManifest()
			m.Workspaces = tt.workspaces

			tags, err := Classify("some-workspaced-local-package", tt.resolved, tt.opts, m, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{TagAliased, TagWorkspace}, tags)
		})
	}
}

func TestClassify_WorkspaceNegative(t *testing.T) {
	tests := []struct {
		name       string
		module     string
		workspaces []string
		resolved   string
	}{
		{"relative specifier", "../a-package/some-workspaced-local-package", []string{"*/?-package"}, "packages/a-package/index.js"},
		{"outside every workspace", "lodash", []string{"packages/*"}, "node_modules/lodash/index.js"},
		{"dependency installed inside a workspace package", "lodash", []string{"packages/*"}, "packages/app/node_modules/lodash/index.js"},
		{"negated glob", "legacy", []string{"!packages/legacy"}, "packages/legacy/index.js"},
		{"private specifier", "#ui", []string{"packages/*"}, "packages/ui/index.js"},
		{"no directory", "pkg", []string{"*"}, "index.js"},
		{"package named like a doublestar workspace root", "apps", []string{"apps/**"}, "node_modules/apps/index.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testManifest()
			m.Workspaces = tt.workspaces

			tags, err := Classify(tt.module, tt.resolved, ResolveOptions{}, m, nil)
			require.NoError(t, err)
			assert.Empty(t, tags)
		})
	}
}

func TestClassify_WebpackBeatsWorkspace(t *testing.T) {
	m := testManifest()
	m.Workspaces = []string{"*/?-package"}

	tags, err := Classify("@some/thing.js", "packages/a-package/index.js",
		ResolveOptions{Alias: map[string]string{"@": "./src"}}, m, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{TagAliased, TagWebpack}, tags)
}

func TestClassify_WebpackBeatsSubpathImport(t *testing.T) {
	m := testManifest()
	m.Imports = map[string]string{"#*": "./src/*"}

	tags, err := Classify("#some/thing.js", "src/some/thing.js",
		ResolveOptions{Alias: map[string]string{"#": "./src"}}, m, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{TagAliased, TagWebpack}, tags)
}

func TestClassify_TSConfigPaths(t *testing.T) {
	mapping := &tsconfig.PathMapping{
		Paths: map[string][]string{"@tsconfig/*": {"./src/*"}},
	}

	tags, err := Classify("@tsconfig/package", "src/package/index.js", ResolveOptions{}, testManifest(), mapping)
	require.NoError(t, err)
	assert.Equal(t, []string{TagAliased, TagTSConfig, TagTSConfigPaths}, tags)
}

func TestClassify_TSConfigBaseURL(t *testing.T) {
	mapping := &tsconfig.PathMapping{
		BaseURL: "./src",
		Paths:   map[string][]string{"@tsconfig/*": {"./something-else/*"}},
	}

	tags, err := Classify("package", "src/package/index.js", ResolveOptions{}, testManifest(), mapping)
	require.NoError(t, err)
	assert.Equal(t, []string{TagAliased, TagTSConfig, TagTSConfigBaseURL}, tags)
}

func TestClassify_TSConfigBaseURLSkipsCoreModules(t *testing.T) {
	mapping := &tsconfig.PathMapping{
		BaseURL: "./",
		Paths:   map[string][]string{"@tsconfig/*": {"./something-else/*"}},
	}

	tags, err := Classify("fs", "fs", ResolveOptions{}, testManifest(), mapping)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestClassify_TSConfigPathsTargets(t *testing.T) {
	mapping := &tsconfig.PathMapping{
		Dir:     "packages/app",
		BaseURL: ".",
		Paths: map[string][]string{
			"~/*":        {"./generated/*", "./src/*"},
			"@config":    {"./config/index.ts"},
			"@types/*":   {"./types/*"},
			"@shared/*":  {"../shared/*.js"},
			"@missing/*": {"./nowhere/*"},
		},
	}
	c, err := New(ResolveOptions{}, nil, mapping)
	require.NoError(t, err)

	tests := []struct {
		name     string
		module   string
		resolved string
		wantRule string
	}{
		{"second target wins when the first does not reproduce the path", "~/util", "packages/app/src/util.ts", "~/*"},
		{"literal key", "@config", "packages/app/config/index.ts", "@config"},
		{"declaration file", "@types/env", "packages/app/types/env.d.ts", "@types/*"},
		{"extension rewrite", "@shared/date", "packages/shared/date.ts", "@shared/*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := c.Explain(tt.module, tt.resolved)
			assert.Equal(t, OriginTypecheckerPaths, v.Origin)
			assert.Equal(t, tt.wantRule, v.Rule)
		})
	}

	t.Run("pattern matches but no target reproduces the path", func(t *testing.T) {
		v := c.Explain("@missing/x", "packages/app/elsewhere/x.ts")
		assert.False(t, v.Matched())
	})
}

func TestClassify_SubpathImportTargets(t *testing.T) {
	m := testManifest()
	m.Imports = map[string]string{
		"#internal/*.js": "./src/internal/*.js",
		"#*":             "./lib/*",
		"#dep":           "some-package",
	}
	c, err := New(rainbowOptions(), m, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		module   string
		resolved string
		wantRule string
	}{
		{"most specific key first", "#internal/a.js", "src/internal/a.js", "#internal/*.js"},
		{"falls through to a broader key", "#internal/a.js", "lib/internal/a.js", "#*"},
		{"target joined onto the base directory", "#util.js", "over/the/rainbow/lib/util.js", "#*"},
		{"package target matches on the key", "#dep", "node_modules/some-package/index.js", "#dep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := c.Explain(tt.module, tt.resolved)
			assert.Equal(t, OriginSubpathImport, v.Origin)
			assert.Equal(t, tt.wantRule, v.Rule)
		})
	}

	t.Run("key matches but target does not reproduce the path", func(t *testing.T) {
		assert.Empty(t, c.Classify("#util.js", "vendor/util.js"))
	})
}

func TestClassify_BundlerAliasRules(t *testing.T) {
	c, err := New(ResolveOptions{Alias: map[string]string{
		"@":       "./src",
		"@app":    "./src/app",
		"@b":      "./b",
		"@a":      "./a",
		"vue$":    "vue/dist/vue.esm.js",
		"":        "./everything",
		"react/$": "./nope",
	}}, nil, nil)
	require.NoError(t, err)

	tests := []struct {
		module   string
		wantRule string
	}{
		{"@app/components/x", "@app"},
		{"@some/thing.js", "@"},
		{"@a/x", "@a"},
		{"vue", "vue$"},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			v := c.Explain(tt.module, "src/whatever.js")
			assert.Equal(t, OriginBundlerAlias, v.Origin)
			assert.Equal(t, tt.wantRule, v.Rule)
		})
	}

	t.Run("exact alias does not match subpaths", func(t *testing.T) {
		assert.Empty(t, c.Classify("vue/dist/other.js", "node_modules/vue/dist/other.js"))
	})

	t.Run("empty key aliases nothing", func(t *testing.T) {
		assert.Empty(t, c.Classify("lodash", "node_modules/lodash/index.js"))
	})
}

func TestClassify_TypecheckerBeatsSubpathImport(t *testing.T) {
	m := testManifest()
	m.Imports = map[string]string{"#app/*": "./src/app/*"}
	mapping := &tsconfig.PathMapping{Paths: map[string][]string{"#app/*": {"./src/app/*"}}}

	tags, err := Classify("#app/x", "src/app/x.ts", ResolveOptions{}, m, mapping)
	require.NoError(t, err)
	assert.Equal(t, []string{TagAliased, TagTSConfig, TagTSConfigPaths}, tags)
}

func TestClassify_TypecheckerBeatsWorkspace(t *testing.T) {
	m := testManifest()
	m.Workspaces = []string{"packages/*"}
	mapping := &tsconfig.PathMapping{Paths: map[string][]string{"@acme/*": {"./packages/*/src"}}}

	tags, err := Classify("@acme/ui", "packages/ui/src/index.ts", ResolveOptions{}, m, mapping)
	require.NoError(t, err)
	assert.Equal(t, []string{TagAliased, TagTSConfig, TagTSConfigPaths}, tags)
}

func TestClassify_BuiltinsNeverAliased(t *testing.T) {
	m := testManifest()
	m.Imports = map[string]string{"#*": "./src/*"}
	m.Workspaces = []string{"*/"}
	mapping := &tsconfig.PathMapping{BaseURL: ".", Paths: map[string][]string{"*": {"./*"}}}
	opts := ResolveOptions{Alias: map[string]string{"f": "./f", "node:": "./n", "p": "./p"}}

	for _, module := range []string{"fs", "fs/promises", "node:fs", "node:test", "path"} {
		t.Run(module, func(t *testing.T) {
			tags, err := Classify(module, module, opts, m, mapping)
			require.NoError(t, err)
			assert.Empty(t, tags)
		})
	}
}

func TestClassify_CustomBuiltins(t *testing.T) {
	alias := map[string]string{"e": "./e"}

	t.Run("default registry", func(t *testing.T) {
		tags, err := Classify("electron", "e/lectron.js", ResolveOptions{Alias: alias}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{TagAliased, TagWebpack}, tags)
	})

	t.Run("registry supplied by the caller", func(t *testing.T) {
		opts := ResolveOptions{Alias: alias, Builtins: specifier.NodeBuiltins().With("electron")}
		tags, err := Classify("electron", "electron", opts, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("registry without node modules", func(t *testing.T) {
		opts := ResolveOptions{Builtins: specifier.NewBuiltins("electron")}
		mapping := &tsconfig.PathMapping{BaseURL: "./lib"}
		tags, err := Classify("fs", "lib/fs/index.js", opts, nil, mapping)
		require.NoError(t, err)
		assert.Equal(t, []string{TagAliased, TagTSConfig, TagTSConfigBaseURL}, tags)
	})
}

func TestClassify_RelativeNeverAliased(t *testing.T) {
	opts := ResolveOptions{Alias: map[string]string{".": "./src", "..": "./up"}}
	for _, module := range []string{"./thing.js", "../thing.js", ".", ".."} {
		t.Run(module, func(t *testing.T) {
			tags, err := Classify(module, "src/thing.js", opts, nil, nil)
			require.NoError(t, err)
			assert.Empty(t, tags)
		})
	}
}

func TestClassify_NilManifest(t *testing.T) {
	tags, err := Classify("#some/thing.js", "src/some/thing.js", ResolveOptions{}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestExplain_NoMatch(t *testing.T) {
	c, err := New(ResolveOptions{}, testManifest(), nil)
	require.NoError(t, err)

	v := c.Explain("lodash", "node_modules/lodash/index.js")
	assert.False(t, v.Matched())
	assert.Equal(t, OriginNone, v.Origin)
	assert.Empty(t, v.Rule)
	assert.NotNil(t, v.Tags)
}
