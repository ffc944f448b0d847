/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"strings"
)

// NodeScheme is the URL scheme Node reserves for its core modules.
const NodeScheme = "node:"

// nodeBuiltinModules lists Node's public top-level core modules, i.e.
// require('module').builtinModules without "_"-prefixed and subpath entries.
var nodeBuiltinModules = []string{
	"assert", "async_hooks", "buffer", "child_process", "cluster", "console",
	"constants", "crypto", "dgram", "diagnostics_channel", "dns", "domain",
	"events", "fs", "http", "http2", "https", "inspector", "module", "net",
	"os", "path", "perf_hooks", "process", "punycode", "querystring",
	"readline", "repl", "stream", "string_decoder", "sys", "timers", "tls",
	"trace_events", "tty", "url", "util", "v8", "vm", "wasi",
	"worker_threads", "zlib",
}

// Builtins is an immutable registry of runtime-supplied module names.
// The zero value and nil registries contain nothing.
type Builtins struct {
	names map[string]struct{}
	// scheme marks every specifier with this prefix as built-in.
	scheme string
}

// NewBuiltins creates a registry holding exactly names, with no scheme.
func NewBuiltins(names ...string) *Builtins {
	b := &Builtins{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		b.names[n] = struct{}{}
	}
	return b
}

// NodeBuiltins returns the registry of Node core modules. Every "node:"
// specifier counts as built-in, so newer scheme-only modules such as
// "node:test" are covered too.
func NodeBuiltins() *Builtins {
	b := NewBuiltins(nodeBuiltinModules...)
	b.scheme = NodeScheme
	return b
}

// With returns a copy of the registry extended with extra names.
func (b *Builtins) With(extra ...string) *Builtins {
	out := &Builtins{names: make(map[string]struct{})}
	if b != nil {
		out.scheme = b.scheme
		for n := range b.names {
			out.names[n] = struct{}{}
		}
	}
	for _, n := range extra {
		out.names[n] = struct{}{}
	}
	return out
}

// Has reports whether raw names a built-in module or a subpath of one
// ("fs/promises").
func (b *Builtins) Has(raw string) bool {
	if b == nil || raw == "" {
		return false
	}
	if b.scheme != "" && strings.HasPrefix(raw, b.scheme) {
		return len(raw) > len(b.scheme)
	}
	if _, ok := b.names[raw]; ok {
		return true
	}
	if head, _, found := strings.Cut(raw, "/"); found {
		_, ok := b.names[head]
		return ok
	}
	return false
}
