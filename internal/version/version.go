/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the whence CLI.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Get returns the version string for the application.
func Get() string {
	if Version != "dev" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "(devel)" && info.Main.Version != "" {
		return info.Main.Version
	}

	if GitTag == "unknown" || GitCommit == "unknown" {
		return "dev"
	}

	v := GitTag
	if short := shortCommit(GitCommit); short != "" && !strings.HasSuffix(GitTag, short) {
		v = fmt.Sprintf("%s-%s", GitTag, short)
	}
	if GitDirty == "dirty" {
		v += "-dirty"
	}
	return v
}

// Full returns the version with the commit it was built from, if known.
func Full() string {
	commit := commit()
	if commit == "" {
		return Get()
	}
	return fmt.Sprintf("%s (commit: %s)", Get(), shortCommit(commit))
}

// Info returns detailed build information.
func Info() BuildInfo {
	bi := BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.GoVersion = info.GoVersion
		if c := commit(); c != "" {
			bi.GitCommit = c
		}
	}
	return bi
}

// commit prefers the ldflags commit and falls back to the VCS stamp the Go
// toolchain embeds.
func commit() string {
	if GitCommit != "unknown" && GitCommit != "" {
		return GitCommit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
