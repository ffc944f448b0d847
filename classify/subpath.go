/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import (
	"bennypowers.dev/whence/pattern"
	"bennypowers.dev/whence/specifier"
)

type importEntry struct {
	key    *pattern.Template
	target string
}

func (c *Classifier) compileImports(imports map[string]string) error {
	keys := make([]*pattern.Template, 0, len(imports))
	for key := range imports {
		tmpl, err := pattern.ParseTemplate(key)
		if err != nil {
			return err
		}
		keys = append(keys, tmpl)
	}
	pattern.SortBySpecificity(keys)

	for _, key := range keys {
		c.imports = append(c.imports, importEntry{key: key, target: imports[key.String()]})
	}
	return nil
}

// matchSubpathImport applies to "#" specifiers only. A target that is itself
// a package name cannot be checked against the resolved path, so the key
// match alone decides.
func (c *Classifier) matchSubpathImport(q query) (Verdict, bool) {
	if !q.spec.IsPrivate() {
		return Verdict{}, false
	}

	for _, entry := range c.imports {
		capture, ok := entry.key.Match(q.raw)
		if !ok {
			continue
		}
		target := pattern.Substitute(entry.target, capture)
		if !specifier.IsRelative(target) || c.consistent(target, q.resolved) {
			return verdict(OriginSubpathImport, entry.key.String()), true
		}
	}
	return Verdict{}, false
}
