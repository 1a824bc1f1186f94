package main

import (
	"os"

	"github.com/ramanasai/habitcal/cmd"
	"github.com/ramanasai/habitcal/internal/version"
)

// Build metadata injected by goreleaser or makefile
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func main() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate

	os.Exit(cmd.Execute())
}
