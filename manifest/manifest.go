/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package manifest models the parts of a package.json that explain module
// resolutions: identity, subpath imports and workspaces.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for manifest validation.
var (
	// ErrMissingName indicates a manifest without a "name".
	ErrMissingName = errors.New("manifest missing name")

	// ErrMissingVersion indicates a manifest without a "version".
	ErrMissingVersion = errors.New("manifest missing version")
)

// Manifest is a parsed package.json.
type Manifest struct {
	// Name is the package name.
	Name string `json:"name"`

	// Version is the package version.
	Version string `json:"version"`

	// Dependencies maps dependency names to version ranges.
	Dependencies map[string]string `json:"dependencies,omitempty"`

	// Imports is the subpath-import map: "#"-prefixed pattern to target
	// template. Conditional targets are flattened on decode.
	Imports map[string]string `json:"imports,omitempty"`

	// Workspaces lists globs naming sibling package directories.
	Workspaces Workspaces `json:"workspaces,omitempty"`
}

// Validate checks the manifest's identity fields.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	if m.Version == "" {
		return fmt.Errorf("%w: %s", ErrMissingVersion, m.Name)
	}
	return nil
}

// UnmarshalJSON flattens conditional "imports" targets.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	type rawManifest struct {
		Name         string                     `json:"name"`
		Version      string                     `json:"version"`
		Dependencies map[string]string          `json:"dependencies"`
		Imports      map[string]json.RawMessage `json:"imports"`
		Workspaces   Workspaces                 `json:"workspaces"`
	}

	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.Name = raw.Name
	m.Version = raw.Version
	m.Dependencies = raw.Dependencies
	m.Workspaces = raw.Workspaces
	m.Imports = nil

	if len(raw.Imports) > 0 {
		m.Imports = make(map[string]string, len(raw.Imports))
		for key, value := range raw.Imports {
			var target any
			if err := json.Unmarshal(value, &target); err != nil {
				return fmt.Errorf("imports %q: %w", key, err)
			}
			if flat, ok := flattenTarget(target); ok {
				m.Imports[key] = flat
			}
		}
	}

	return nil
}

// conditionPriority is the order conditions are preferred in when a
// subpath-import target is a condition object.
var conditionPriority = []string{"node", "import", "require", "default"}

// flattenTarget picks a single string target out of a string, condition
// object, or fallback array. Null targets (explicit exclusions) yield false.
func flattenTarget(target any) (string, bool) {
	switch t := target.(type) {
	case string:
		return t, true
	case []any:
		for _, item := range t {
			if s, ok := flattenTarget(item); ok {
				return s, true
			}
		}
	case map[string]any:
		for _, condition := range conditionPriority {
			if value, ok := t[condition]; ok {
				if s, ok := flattenTarget(value); ok {
					return s, true
				}
			}
		}
	}
	return "", false
}

// Workspaces is the "workspaces" field, written either as an array of globs
// or as an object with a "packages" array.
type Workspaces []string

// UnmarshalJSON handles both array and object forms.
func (w *Workspaces) UnmarshalJSON(data []byte) error {
	var globs []string
	if err := json.Unmarshal(data, &globs); err == nil {
		*w = globs
		return nil
	}

	var obj struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("workspaces: %w", err)
	}
	*w = obj.Packages
	return nil
}
