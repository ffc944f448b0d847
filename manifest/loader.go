/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/whence/fs"
)

// FileName is the manifest file name.
const FileName = "package.json"

// PnpmWorkspaceFileName is pnpm's workspace declaration file.
const PnpmWorkspaceFileName = "pnpm-workspace.yaml"

// Parse decodes package.json data and validates it.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads the manifest at manifestPath. When it declares no workspaces,
// the packages of pnpm-workspace.yaml next to it are used instead.
// Returns nil if no manifest is found (not an error).
func Load(filesystem fs.FileSystem, manifestPath string) (*Manifest, error) {
	if !filesystem.Exists(manifestPath) {
		return nil, nil
	}

	data, err := filesystem.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", manifestPath, err)
	}

	if len(m.Workspaces) == 0 {
		globs, err := LoadPnpmWorkspace(filesystem, filepath.Dir(manifestPath))
		if err != nil {
			return nil, err
		}
		m.Workspaces = globs
	}

	return m, nil
}

// LoadPnpmWorkspace reads the "packages" globs of dir/pnpm-workspace.yaml.
// Negated globs ("!**/test/**") are dropped since they only prune matches.
// Returns nil if the file does not exist.
func LoadPnpmWorkspace(filesystem fs.FileSystem, dir string) ([]string, error) {
	workspacePath := filepath.Join(dir, PnpmWorkspaceFileName)
	if !filesystem.Exists(workspacePath) {
		return nil, nil
	}

	data, err := filesystem.ReadFile(workspacePath)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Packages []string `yaml:"packages"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", workspacePath, err)
	}

	globs := make([]string, 0, len(doc.Packages))
	for _, glob := range doc.Packages {
		if glob == "" || glob[0] == '!' {
			continue
		}
		globs = append(globs, glob)
	}
	return globs, nil
}
