/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classify explains why a module specifier resolved to a given path:
// through a bundler alias, a tsconfig path mapping, a package.json subpath
// import, a workspace package, or none of these.
//
// Resolvers are consulted in a fixed order and the first match wins:
//
//  1. bundler alias table
//  2. tsconfig "paths", then tsconfig "baseUrl"
//  3. package.json "imports"
//  4. package.json "workspaces"
//
// Relative and built-in specifiers are never aliased.
package classify

import (
	"fmt"

	"bennypowers.dev/whence/manifest"
	"bennypowers.dev/whence/specifier"
	"bennypowers.dev/whence/tsconfig"
)

// ResolveOptions holds the resolver settings the classification depends on.
type ResolveOptions struct {
	// BaseDirectory is the root that relative alias, import and paths
	// targets may additionally be interpreted against.
	BaseDirectory string `json:"baseDirectory,omitempty" yaml:"baseDirectory,omitempty"`

	// Alias is the bundler alias table: prefix to target directory. A key
	// ending in "$" only matches the exact specifier.
	Alias map[string]string `json:"alias,omitempty" yaml:"alias,omitempty"`

	// Builtins is the runtime's built-in module registry.
	// Nil means specifier.NodeBuiltins().
	Builtins *specifier.Builtins `json:"-" yaml:"-"`
}

// Verdict is the outcome of one classification.
type Verdict struct {
	// Origin is the mechanism that matched, or OriginNone.
	Origin Origin `json:"origin,omitempty"`

	// Rule is the alias key, paths or imports pattern, workspace glob or
	// base URL that matched.
	Rule string `json:"rule,omitempty"`

	// Tags is the dependency-type tag sequence. Never nil.
	Tags []string `json:"dependencyTypes"`
}

// Matched reports whether any mechanism explains the resolution.
func (v Verdict) Matched() bool {
	return v.Origin != OriginNone
}

func verdict(origin Origin, rule string) Verdict {
	return Verdict{Origin: origin, Rule: rule, Tags: origin.Tags()}
}

func noMatch() Verdict {
	return verdict(OriginNone, "")
}

// query is a single specifier/resolution pair under classification.
type query struct {
	raw      string
	resolved string
	spec     *specifier.Specifier
}

// resolver reports the verdict of one mechanism, if it matches.
type resolver func(c *Classifier, q query) (Verdict, bool)

// precedence is the fixed resolver order; the first match wins.
var precedence = []resolver{
	(*Classifier).matchBundlerAlias,
	(*Classifier).matchTypechecker,
	(*Classifier).matchSubpathImport,
	(*Classifier).matchWorkspace,
}

// Classifier holds compiled alias tables and patterns for one project.
// It is immutable and safe for concurrent use.
type Classifier struct {
	baseDirectory string
	builtins      *specifier.Builtins

	aliases    []aliasEntry
	paths      []pathsEntry
	pathsRoot  string
	baseURL    string
	baseURLDir string
	hasBaseURL bool
	imports    []importEntry
	workspaces []workspaceEntry
}

// New validates and compiles the project's resolution settings.
// A nil manifest disables the subpath-import and workspace resolvers; a nil
// mapping disables the typechecker resolver. It fails on a manifest without
// identity fields or on patterns with more than one wildcard.
func New(opts ResolveOptions, m *manifest.Manifest, mapping *tsconfig.PathMapping) (*Classifier, error) {
	c := &Classifier{
		baseDirectory: opts.BaseDirectory,
		builtins:      opts.Builtins,
	}
	if c.builtins == nil {
		c.builtins = specifier.NodeBuiltins()
	}

	c.aliases = compileAliases(opts.Alias)

	if mapping != nil {
		if err := c.compileTypechecker(mapping); err != nil {
			return nil, err
		}
	}

	if m != nil {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if err := c.compileImports(m.Imports); err != nil {
			return nil, fmt.Errorf("%s imports: %w", m.Name, err)
		}
		if err := c.compileWorkspaces(m.Workspaces); err != nil {
			return nil, fmt.Errorf("%s workspaces: %w", m.Name, err)
		}
	}

	return c, nil
}

// Classify returns the dependency-type tags explaining how raw resolved to
// resolved. The result is empty when no mechanism applies.
func (c *Classifier) Classify(raw, resolved string) []string {
	return c.Explain(raw, resolved).Tags
}

// Explain is like Classify but also reports which mechanism and rule matched.
func (c *Classifier) Explain(raw, resolved string) Verdict {
	q := query{raw: raw, resolved: resolved, spec: specifier.Parse(raw, c.builtins)}
	if q.spec.IsRelative() || q.spec.IsBuiltin() {
		return noMatch()
	}

	for _, match := range precedence {
		if v, ok := match(c, q); ok {
			return v
		}
	}
	return noMatch()
}

// Classify compiles the given settings and classifies a single resolution.
// Callers classifying many resolutions should use New once instead.
func Classify(raw, resolved string, opts ResolveOptions, m *manifest.Manifest, mapping *tsconfig.PathMapping) ([]string, error) {
	c, err := New(opts, m, mapping)
	if err != nil {
		return nil, err
	}
	return c.Classify(raw, resolved), nil
}
