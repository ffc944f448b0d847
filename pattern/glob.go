/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pattern implements the two wildcard dialects used to explain module
// resolutions: segment-aware globs and single-capture templates.
package pattern

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Anchor selects which part of a path a Glob must match.
type Anchor int

const (
	// AnchorFull requires the glob to match the whole path.
	AnchorFull Anchor = iota
	// AnchorPrefix requires the glob to match some leading run of segments.
	AnchorPrefix
	// AnchorSuffix requires the glob to match some trailing run of segments.
	AnchorSuffix
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorPrefix:
		return "prefix"
	case AnchorSuffix:
		return "suffix"
	default:
		return "full-path"
	}
}

// Glob is a compiled, segment-aware glob.
//
// "*" matches exactly one path segment, "?" one character within a segment,
// "**" any number of segments, and a trailing "/" stands for "any directory
// name", so "packages/" behaves like "packages/*". A trailing "/**" matches
// at least one segment: "apps/**" matches "apps/web" but not "apps".
type Glob struct {
	raw    string
	expr   string
	anchor Anchor
}

// CompileGlob validates expr and returns a Glob using the given anchor.
func CompileGlob(expr string, anchor Anchor) (*Glob, error) {
	normalized := normalizeGlob(expr)
	if normalized == "" || !doublestar.ValidatePattern(normalized) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGlob, expr)
	}
	return &Glob{raw: expr, expr: normalized, anchor: anchor}, nil
}

// String returns the glob as originally written.
func (g *Glob) String() string {
	return g.raw
}

// Match reports whether p satisfies the glob under its anchor mode.
func (g *Glob) Match(p string) bool {
	segments := Segments(p)
	if len(segments) == 0 {
		return false
	}

	switch g.anchor {
	case AnchorPrefix:
		for end := len(segments); end > 0; end-- {
			if g.matchSegments(segments[:end]) {
				return true
			}
		}
	case AnchorSuffix:
		for start := range segments {
			if g.matchSegments(segments[start:]) {
				return true
			}
		}
	default:
		return g.matchSegments(segments)
	}
	return false
}

func (g *Glob) matchSegments(segments []string) bool {
	return doublestar.MatchUnvalidated(g.expr, strings.Join(segments, "/"))
}

// Segments splits a slash-separated path into its non-empty, cleaned segments.
// "./a//b/" yields ["a", "b"]; "." and "" yield nil.
func Segments(p string) []string {
	cleaned := CleanPath(p)
	if cleaned == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(cleaned, "/"), "/")
}

// CleanPath normalizes p to a slash path without a leading "./".
// The current directory is returned as "".
func CleanPath(p string) string {
	if p == "" {
		return ""
	}
	cleaned := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if cleaned == "." {
		return ""
	}
	return cleaned
}

func normalizeGlob(expr string) string {
	if expr == "" {
		return ""
	}
	dirShorthand := strings.HasSuffix(expr, "/")
	// backslashes are glob escapes here, so no separator conversion
	cleaned := path.Clean(expr)
	if cleaned == "." {
		cleaned = ""
	}
	if dirShorthand {
		if cleaned == "" {
			return "*"
		}
		return cleaned + "/*"
	}
	if strings.HasSuffix(cleaned, "/**") {
		// "apps/**" names directories below apps, never apps itself
		return cleaned + "/*"
	}
	return cleaned
}
