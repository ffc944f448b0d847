/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pattern

import "errors"

// Sentinel errors for pattern compilation.
var (
	// ErrMultipleWildcards indicates a template with more than one "*" capture.
	ErrMultipleWildcards = errors.New("pattern has more than one wildcard")

	// ErrInvalidGlob indicates a glob that cannot be compiled.
	ErrInvalidGlob = errors.New("invalid glob pattern")
)
