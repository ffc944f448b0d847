/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier detects the kind of a module specifier as written at an
// import site.
package specifier

import "strings"

// Kind indicates the type of specifier.
type Kind int

const (
	// KindBare is an ordinary package specifier ("lodash", "@scope/pkg/sub").
	KindBare Kind = iota
	// KindRelative is a path relative to the importing file ("./x", "../y").
	KindRelative
	// KindPrivate is a package-private subpath import ("#internal/x").
	KindPrivate
	// KindBuiltin is a module supplied by the runtime ("fs", "node:path").
	KindBuiltin
)

// PrivateSigil is the reserved first character of package-private imports.
const PrivateSigil = "#"

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRelative:
		return "relative"
	case KindPrivate:
		return "private-sigil"
	case KindBuiltin:
		return "builtin"
	default:
		return "bare"
	}
}

// Specifier represents a classified module specifier.
type Specifier struct {
	// Kind is the type of specifier.
	Kind Kind

	// Raw is the original specifier string.
	Raw string
}

// Parse classifies raw against the given built-in registry.
// A nil registry means no module counts as a built-in.
func Parse(raw string, builtins *Builtins) *Specifier {
	return &Specifier{Kind: Detect(raw, builtins), Raw: raw}
}

// Detect returns the kind of raw. Relative wins over everything, then the
// private sigil, then the built-in registry.
func Detect(raw string, builtins *Builtins) Kind {
	switch {
	case IsRelative(raw):
		return KindRelative
	case strings.HasPrefix(raw, PrivateSigil):
		return KindPrivate
	case builtins.Has(raw):
		return KindBuiltin
	default:
		return KindBare
	}
}

// IsRelative returns true for "./" and "../" specifiers and the bare "." and "..".
func IsRelative(raw string) bool {
	return raw == "." || raw == ".." ||
		strings.HasPrefix(raw, "./") || strings.HasPrefix(raw, "../")
}

// IsBare returns true if this is an ordinary package specifier.
func (s *Specifier) IsBare() bool {
	return s.Kind == KindBare
}

// IsRelative returns true if this is a relative specifier.
func (s *Specifier) IsRelative() bool {
	return s.Kind == KindRelative
}

// IsPrivate returns true if this is a sigil-prefixed subpath import.
func (s *Specifier) IsPrivate() bool {
	return s.Kind == KindPrivate
}

// IsBuiltin returns true if this names a runtime module.
func (s *Specifier) IsBuiltin() bool {
	return s.Kind == KindBuiltin
}
