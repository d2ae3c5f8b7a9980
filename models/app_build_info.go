// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo is the version stamp linked into the profile server and the
// editor client. The server reports it at GET /api/version when no version
// is configured, the editor shows it on its ABOUT page.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// IsZero reports whether no linker flag was set.
func (a AppBuildInfo) IsZero() bool {
	return a.version == "" && a.date == "" && a.commit == ""
}

// String renders the stamp as "version (commit, date)", skipping empty parts.
func (a AppBuildInfo) String() string {
	if a.IsZero() {
		return "unknown build"
	}

	version := a.version
	if version == "" {
		version = "dev"
	}

	var extra []string
	for _, part := range []string{a.commit, a.date} {
		if part != "" {
			extra = append(extra, part)
		}
	}
	if len(extra) == 0 {
		return version
	}
	return version + " (" + strings.Join(extra, ", ") + ")"
}
