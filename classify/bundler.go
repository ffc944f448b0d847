/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

import (
	"cmp"
	"slices"
	"strings"
)

type aliasEntry struct {
	key    string
	prefix string
	exact  bool
}

// compileAliases orders alias keys longest first, ties broken lexically.
// Empty keys are dropped since they would alias every specifier.
func compileAliases(table map[string]string) []aliasEntry {
	entries := make([]aliasEntry, 0, len(table))
	for key := range table {
		prefix, exact := strings.CutSuffix(key, "$")
		if prefix == "" {
			continue
		}
		entries = append(entries, aliasEntry{key: key, prefix: prefix, exact: exact})
	}
	slices.SortFunc(entries, func(a, b aliasEntry) int {
		if c := cmp.Compare(len(b.prefix), len(a.prefix)); c != 0 {
			return c
		}
		return strings.Compare(a.key, b.key)
	})
	return entries
}

func (e aliasEntry) matches(raw string) bool {
	if e.exact {
		return raw == e.prefix
	}
	return strings.HasPrefix(raw, e.prefix)
}

func (c *Classifier) matchBundlerAlias(q query) (Verdict, bool) {
	for _, alias := range c.aliases {
		if alias.matches(q.raw) {
			return verdict(OriginBundlerAlias, alias.key), true
		}
	}
	return Verdict{}, false
}
