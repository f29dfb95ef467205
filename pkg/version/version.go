// Package version derives the build identity reported by the health endpoint
// and user-agent strings. An -ldflags override wins; otherwise the VCS
// revision from debug.BuildInfo is used, and "dev" covers go test and
// non-git builds.
package version

import "runtime/debug"

// AppName prefixes version strings.
const AppName = "trendscope"

// commitOverride is injected with -ldflags for container builds that have no
// .git directory.
var commitOverride string

// GitCommit is the short (8 char) commit hash, or "dev".
var GitCommit = resolveCommit()

// Full returns "trendscope/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}

func resolveCommit() string {
	if commitOverride != "" {
		return shorten(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
