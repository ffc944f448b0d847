/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package classify

// Dependency-type tags. Rules and reports match on these strings verbatim.
const (
	TagAliased         = "aliased"
	TagWebpack         = "aliased-webpack"
	TagSubpathImport   = "aliased-subpath-import"
	TagWorkspace       = "aliased-workspace"
	TagTSConfig        = "aliased-tsconfig"
	TagTSConfigPaths   = "aliased-tsconfig-paths"
	TagTSConfigBaseURL = "aliased-tsconfig-base-url"
)

// Origin names the mechanism that explains a resolution.
type Origin string

const (
	OriginNone               Origin = ""
	OriginBundlerAlias       Origin = "bundler alias"
	OriginTypecheckerPaths   Origin = "typechecker paths"
	OriginTypecheckerBaseURL Origin = "typechecker base url"
	OriginSubpathImport      Origin = "subpath import"
	OriginWorkspace          Origin = "workspace"
)

// Tags returns a fresh tag sequence for the origin. OriginNone yields an
// empty, non-nil slice.
func (o Origin) Tags() []string {
	switch o {
	case OriginBundlerAlias:
		return []string{TagAliased, TagWebpack}
	case OriginTypecheckerPaths:
		return []string{TagAliased, TagTSConfig, TagTSConfigPaths}
	case OriginTypecheckerBaseURL:
		return []string{TagAliased, TagTSConfig, TagTSConfigBaseURL}
	case OriginSubpathImport:
		return []string{TagAliased, TagSubpathImport}
	case OriginWorkspace:
		return []string{TagAliased, TagWorkspace}
	default:
		return []string{}
	}
}

// IsAliasTag reports whether tag is one of the tags produced here.
func IsAliasTag(tag string) bool {
	switch tag {
	case TagAliased, TagWebpack, TagSubpathImport, TagWorkspace,
		TagTSConfig, TagTSConfigPaths, TagTSConfigBaseURL:
		return true
	}
	return false
}
