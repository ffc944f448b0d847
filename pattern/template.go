/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pattern

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Wildcard is the capture character of a Template.
const Wildcard = "*"

// Template is a pattern with at most one "*" capture, as used by package.json
// "imports" keys and tsconfig "paths" keys. Unlike a Glob, the capture may
// span path separators.
type Template struct {
	expr       string
	prefix     string
	suffix     string
	wildcard   bool
	allowEmpty bool
}

// ParseTemplate parses expr. It fails with ErrMultipleWildcards if expr holds
// more than one "*".
func ParseTemplate(expr string) (*Template, error) {
	switch strings.Count(expr, Wildcard) {
	case 0:
		return &Template{expr: expr, prefix: expr}, nil
	case 1:
		prefix, suffix, _ := strings.Cut(expr, Wildcard)
		return &Template{expr: expr, prefix: prefix, suffix: suffix, wildcard: true}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrMultipleWildcards, expr)
	}
}

// AllowEmptyCapture returns a copy of t whose "*" may capture nothing.
func (t *Template) AllowEmptyCapture() *Template {
	c := *t
	c.allowEmpty = true
	return &c
}

// String returns the template expression.
func (t *Template) String() string {
	return t.expr
}

// Match tests s against the template. For a literal template the capture is
// empty and s must equal the expression.
func (t *Template) Match(s string) (string, bool) {
	if !t.wildcard {
		return "", s == t.expr
	}
	if len(s) < len(t.prefix)+len(t.suffix) {
		return "", false
	}
	if !strings.HasPrefix(s, t.prefix) || !strings.HasSuffix(s, t.suffix) {
		return "", false
	}
	capture := s[len(t.prefix) : len(s)-len(t.suffix)]
	if capture == "" && !t.allowEmpty {
		return "", false
	}
	return capture, true
}

// Substitute replaces every "*" in target with capture.
func Substitute(target, capture string) string {
	return strings.ReplaceAll(target, Wildcard, capture)
}

// CompareSpecificity orders templates most specific first: literal templates
// before wildcard ones, then longer literal prefix, then longer expression,
// then lexically. It is suitable for slices.SortFunc.
func CompareSpecificity(a, b *Template) int {
	if a.wildcard != b.wildcard {
		if !a.wildcard {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(len(b.prefix), len(a.prefix)); c != 0 {
		return c
	}
	if c := cmp.Compare(len(b.expr), len(a.expr)); c != 0 {
		return c
	}
	return strings.Compare(a.expr, b.expr)
}

// SortBySpecificity sorts templates in place using CompareSpecificity.
func SortBySpecificity(templates []*Template) {
	slices.SortFunc(templates, CompareSpecificity)
}
