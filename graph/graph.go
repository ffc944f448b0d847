/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package graph reads and writes dependency-graph results and annotates
// their edges with alias dependency types.
package graph

// Result is a dependency-graph result: every module with its outgoing
// dependency edges.
type Result struct {
	Modules []Module `json:"modules" yaml:"modules"`

	// Summary is carried through untouched.
	Summary map[string]any `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Module is one source file and its dependencies.
type Module struct {
	Source       string       `json:"source" yaml:"source"`
	Dependencies []Dependency `json:"dependencies" yaml:"dependencies"`
	Dependents   []string     `json:"dependents,omitempty" yaml:"dependents,omitempty"`
	Orphan       bool         `json:"orphan,omitempty" yaml:"orphan,omitempty"`
	Valid        *bool        `json:"valid,omitempty" yaml:"valid,omitempty"`
	Rules        []Rule       `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Dependency is one edge: the specifier as written in the source and the
// file it resolved to.
type Dependency struct {
	Module             string `json:"module" yaml:"module"`
	Resolved           string `json:"resolved" yaml:"resolved"`
	CoreModule         bool   `json:"coreModule" yaml:"coreModule"`
	Followable         bool   `json:"followable" yaml:"followable"`
	CouldNotResolve    bool   `json:"couldNotResolve" yaml:"couldNotResolve"`
	Dynamic            bool   `json:"dynamic" yaml:"dynamic"`
	ExoticallyRequired bool   `json:"exoticallyRequired" yaml:"exoticallyRequired"`
	MatchesDoNotFollow bool   `json:"matchesDoNotFollow" yaml:"matchesDoNotFollow"`
	ModuleSystem       string `json:"moduleSystem,omitempty" yaml:"moduleSystem,omitempty"`
	Valid              bool   `json:"valid" yaml:"valid"`
	Circular           bool   `json:"circular" yaml:"circular"`

	// Cycle entries are paths or objects depending on the producer's version.
	Cycle []any `json:"cycle,omitempty" yaml:"cycle,omitempty"`

	DependencyTypes []string `json:"dependencyTypes" yaml:"dependencyTypes"`
	Rules           []Rule   `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Rule is a rule violation reported against a module or dependency.
type Rule struct {
	Severity string `json:"severity" yaml:"severity"`
	Name     string `json:"name" yaml:"name"`
}

// Edges returns the number of dependency edges in r.
func (r *Result) Edges() int {
	n := 0
	for _, m := range r.Modules {
		n += len(m.Dependencies)
	}
	return n
}
