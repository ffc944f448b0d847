/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import (
	"fmt"
	"path"

	"bennypowers.dev/whence/pattern"
	"bennypowers.dev/whence/tsconfig"
)

type pathsEntry struct {
	key     *pattern.Template
	targets []string
}

func (c *Classifier) compileTypechecker(mapping *tsconfig.PathMapping) error {
	if err := mapping.Validate(); err != nil {
		return fmt.Errorf("tsconfig: %w", err)
	}

	keys := make([]*pattern.Template, 0, len(mapping.Paths))
	for key := range mapping.Paths {
		tmpl, err := pattern.ParseTemplate(key)
		if err != nil {
			return fmt.Errorf("tsconfig paths: %w", err)
		}
		keys = append(keys, tmpl.AllowEmptyCapture())
	}
	pattern.SortBySpecificity(keys)

	for _, key := range keys {
		c.paths = append(c.paths, pathsEntry{key: key, targets: mapping.Paths[key.String()]})
	}
	c.pathsRoot = mapping.PathsRoot()
	c.baseURLDir, c.hasBaseURL = mapping.BaseDir()
	c.baseURL = mapping.BaseURL
	return nil
}

// matchTypechecker tries "paths" first, then the "baseUrl" fallback.
func (c *Classifier) matchTypechecker(q query) (Verdict, bool) {
	if q.spec.IsBuiltin() {
		return Verdict{}, false
	}

	for _, entry := range c.paths {
		capture, ok := entry.key.Match(q.raw)
		if !ok {
			continue
		}
		for _, target := range entry.targets {
			expected := path.Join(c.pathsRoot, pattern.Substitute(target, capture))
			if c.consistent(expected, q.resolved) {
				return verdict(OriginTypecheckerPaths, entry.key.String()), true
			}
		}
	}

	if c.hasBaseURL && c.consistent(path.Join(c.baseURLDir, q.raw), q.resolved) {
		return verdict(OriginTypecheckerBaseURL, c.baseURL), true
	}
	return Verdict{}, false
}
