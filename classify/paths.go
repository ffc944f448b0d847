/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import (
	"path"
	"slices"
	"strings"

	"bennypowers.dev/whence/pattern"
)

// declarationExtensions are stripped whole, so "x.d.ts" compares as "x".
var declarationExtensions = []string{".d.ts", ".d.mts", ".d.cts"}

// consistent reports whether a target computed from a mapping (relative to
// the project root) could have produced resolved. The target is also tried
// against the base directory, if one is set.
func (c *Classifier) consistent(expected, resolved string) bool {
	if pathsAgree(expected, resolved) {
		return true
	}
	return c.baseDirectory != "" && pathsAgree(path.Join(c.baseDirectory, expected), resolved)
}

// sourceExtensions are the extensions a resolver may rewrite or probe, so
// "x.js" in a mapping target can resolve to "x.ts".
var sourceExtensions = []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".mts", ".cts", ".tsx", ".json"}

// pathsAgree is true when expected and resolved are the same path, resolved
// lies inside expected (directory or index resolution), resolved is expected
// plus an extension (extension probing), or both carry a source extension
// and differ only in it (.js to .ts rewrites). Dots in expected that are not
// a source extension are part of the file name ("user.service").
func pathsAgree(expected, resolved string) bool {
	e := pattern.CleanPath(expected)
	r := pattern.CleanPath(resolved)
	if e == "" || r == "" {
		return false
	}
	if e == r || strings.HasPrefix(r, e+"/") {
		return true
	}
	if trimExtension(r) == e {
		return true
	}
	if !hasSourceExtension(e) {
		return false
	}
	return trimExtension(e) == trimExtension(r)
}

func hasSourceExtension(p string) bool {
	return slices.Contains(sourceExtensions, path.Ext(p))
}

func trimExtension(p string) string {
	for _, ext := range declarationExtensions {
		if trimmed, ok := strings.CutSuffix(p, ext); ok {
			return trimmed
		}
	}
	ext := path.Ext(p)
	if ext == "" || ext == path.Base(p) {
		return p
	}
	return strings.TrimSuffix(p, ext)
}
