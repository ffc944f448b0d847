/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import (
	"strings"

	"bennypowers.dev/whence/pattern"
)

// nodeModules is the package manager's install directory name.
const nodeModules = "node_modules"

type workspaceEntry struct {
	glob *pattern.Glob
}

// compileWorkspaces compiles workspace globs as suffix-anchored globs.
// Negated globs ("!pkg/legacy") only prune package manager matches and are
// skipped.
func (c *Classifier) compileWorkspaces(globs []string) error {
	for _, expr := range globs {
		if strings.HasPrefix(expr, "!") {
			continue
		}
		g, err := pattern.CompileGlob(expr, pattern.AnchorSuffix)
		if err != nil {
			return err
		}
		c.workspaces = append(c.workspaces, workspaceEntry{glob: g})
	}
	return nil
}

// matchWorkspace applies to bare specifiers only. A workspace package is
// recognised by the trailing directory names of its location, so it matches
// at its canonical place ("packages/a-package") as well as where a package
// manager links it ("node_modules/a-package").
func (c *Classifier) matchWorkspace(q query) (Verdict, bool) {
	if !q.spec.IsBare() || len(c.workspaces) == 0 {
		return Verdict{}, false
	}

	dirs := packageDirCandidates(q.resolved)
	for _, ws := range c.workspaces {
		for _, dir := range dirs {
			if ws.glob.Match(dir) {
				return verdict(OriginWorkspace, ws.glob.String()), true
			}
		}
	}
	return Verdict{}, false
}

// packageDirCandidates returns the ancestor directories of resolved, deepest
// first. Below a node_modules directory only the installed package and its
// subdirectories are candidates, so dependencies installed inside a
// workspace package do not count as the workspace package itself.
func packageDirCandidates(resolved string) []string {
	segments := pattern.Segments(resolved)
	if len(segments) < 2 {
		return nil
	}
	dirSegments := segments[:len(segments)-1]

	shallowest := 1
	for i := len(dirSegments) - 1; i >= 0; i-- {
		if dirSegments[i] == nodeModules {
			shallowest = i + 2
			break
		}
	}

	var dirs []string
	for end := len(dirSegments); end >= shallowest; end-- {
		dirs = append(dirs, strings.Join(dirSegments[:end], "/"))
	}
	return dirs
}
