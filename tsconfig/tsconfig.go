/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tsconfig models TypeScript's module path mapping ("baseUrl" and
// "paths") and loads it from tsconfig.json files.
package tsconfig

import (
	"errors"
	"fmt"
	"path"

	"bennypowers.dev/whence/pattern"
)

// Sentinel errors for path mapping validation and loading.
var (
	// ErrNoTargets indicates a "paths" entry with an empty target list.
	ErrNoTargets = errors.New("paths entry has no targets")

	// ErrExtendsCycle indicates tsconfig files that extend each other.
	ErrExtendsCycle = errors.New("circular tsconfig extends")
)

// PathMapping is the module path mapping of a tsconfig.
type PathMapping struct {
	// Dir is the project-relative directory BaseURL (or, without a base
	// URL, Paths targets) are relative to. Empty means the project root.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// BaseURL is "compilerOptions.baseUrl" as written. Empty means unset.
	BaseURL string `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`

	// Paths maps patterns with at most one "*" to ordered target templates.
	Paths map[string][]string `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// Validate checks every "paths" pattern and target.
func (p *PathMapping) Validate() error {
	for key, targets := range p.Paths {
		if _, err := pattern.ParseTemplate(key); err != nil {
			return fmt.Errorf("paths: %w", err)
		}
		if len(targets) == 0 {
			return fmt.Errorf("%w: %q", ErrNoTargets, key)
		}
		for _, target := range targets {
			if _, err := pattern.ParseTemplate(target); err != nil {
				return fmt.Errorf("paths %q: %w", key, err)
			}
		}
	}
	return nil
}

// BaseDir returns the project-relative base URL directory, if one is set.
func (p *PathMapping) BaseDir() (string, bool) {
	if p.BaseURL == "" {
		return "", false
	}
	return pattern.CleanPath(path.Join(p.Dir, p.BaseURL)), true
}

// PathsRoot returns the directory "paths" targets are relative to: the base
// URL when set, otherwise the declaring tsconfig's directory.
func (p *PathMapping) PathsRoot() string {
	if dir, ok := p.BaseDir(); ok {
		return dir
	}
	return pattern.CleanPath(p.Dir)
}
