/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tsconfig

import (
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/whence/fs"
	"bennypowers.dev/whence/internal/logger"
	"bennypowers.dev/whence/pattern"
	"bennypowers.dev/whence/specifier"
)

// FileName is the default tsconfig file name.
const FileName = "tsconfig.json"

type rawConfig struct {
	Extends         json.RawMessage `json:"extends"`
	CompilerOptions struct {
		BaseURL *string             `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// layer is the effective mapping after merging one config with its parents.
type layer struct {
	baseURL    string
	baseURLDir string
	paths      map[string][]string
	pathsDir   string
}

// Load reads the tsconfig at name (relative to root) and returns its path
// mapping, following relative "extends" chains. Settings in a config
// override those it extends; with an "extends" array, later entries win.
// Returns nil if the file does not exist (not an error).
func Load(filesystem fs.FileSystem, root, name string) (*PathMapping, error) {
	rel := pattern.CleanPath(name)
	if !filesystem.Exists(filepath.Join(root, rel)) {
		return nil, nil
	}

	l := &loader{fs: filesystem, root: root}
	merged, err := l.load(rel, nil)
	if err != nil {
		return nil, err
	}

	mapping := &PathMapping{Paths: merged.paths}
	if merged.baseURL != "" {
		mapping.Dir = merged.baseURLDir
		mapping.BaseURL = merged.baseURL
	} else {
		mapping.Dir = merged.pathsDir
	}

	if err := mapping.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}
	return mapping, nil
}

type loader struct {
	fs   fs.FileSystem
	root string
}

func (l *loader) load(rel string, chain []string) (layer, error) {
	if slices.Contains(chain, rel) {
		return layer{}, fmt.Errorf("%w: %s", ErrExtendsCycle, strings.Join(append(chain, rel), " -> "))
	}
	chain = append(chain, rel)

	data, err := l.fs.ReadFile(filepath.Join(l.root, rel))
	if err != nil {
		return layer{}, err
	}

	var raw rawConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return layer{}, fmt.Errorf("failed to parse %s: %w", rel, err)
	}

	parents, err := extendsList(raw.Extends)
	if err != nil {
		return layer{}, fmt.Errorf("%s: %w", rel, err)
	}

	dir := pattern.CleanPath(path.Dir(rel))

	var out layer
	for _, parent := range parents {
		if !specifier.IsRelative(parent) {
			logger.Warn("%s: skipping non-relative extends %q", rel, parent)
			continue
		}
		parentRel := l.extendsPath(pattern.CleanPath(path.Join(dir, parent)))
		inherited, err := l.load(parentRel, chain)
		if err != nil {
			return layer{}, err
		}
		out.merge(inherited)
	}

	if opts := raw.CompilerOptions; opts.BaseURL != nil && *opts.BaseURL != "" {
		out.baseURL = *opts.BaseURL
		out.baseURLDir = dir
	}
	if opts := raw.CompilerOptions; opts.Paths != nil {
		out.paths = opts.Paths
		out.pathsDir = dir
	}

	logger.Debug("loaded tsconfig %s", rel)
	return out, nil
}

// extendsPath appends ".json" to an extends target that has no extension, or
// whose extension is not ".json" and that does not exist as written
// ("./base" and "./base.config" name base.json and base.config.json, while
// "./base.jsonc" names itself).
func (l *loader) extendsPath(rel string) string {
	switch ext := path.Ext(rel); {
	case ext == "":
		return rel + ".json"
	case ext != ".json" && !l.fs.Exists(filepath.Join(l.root, rel)):
		return rel + ".json"
	default:
		return rel
	}
}

func (out *layer) merge(in layer) {
	if in.baseURL != "" {
		out.baseURL = in.baseURL
		out.baseURLDir = in.baseURLDir
	}
	if in.paths != nil {
		out.paths = in.paths
		out.pathsDir = in.pathsDir
	}
}

// extendsList accepts "extends" as absent, a string, or an array of strings.
func extendsList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("invalid extends: %w", err)
	}
	return many, nil
}
