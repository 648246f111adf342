package version

import (
	"fmt"
	"runtime/debug"
)

const modulePath = "github.com/mydehq/ryu"

var (
	// These variables are set via -ldflags during build
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Get returns the version, falling back to the module build info when
// ryu was installed with go install or pulled in as a library.
func Get() string {
	if Version != "dev" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	if info.Main.Path == modulePath && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}
	return Version
}

// String returns the version with a short commit and the build date
func String() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (Commit: %s, Built: %s)", Get(), commit, Date)
}
