package version

import (
	"fmt"
	"runtime"
)

// Build metadata, set with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the one line printed by `habitcal version`.
func Info() string {
	if Version == "dev" {
		return fmt.Sprintf("habitcal dev (%s/%s)", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("habitcal %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}

// UserAgent identifies the server in response headers.
func UserAgent() string {
	return "habitcal/" + Version
}
