package main

import (
	"fmt"
	"os"

	"github.com/diarselimi/crux/cmd"
	"github.com/diarselimi/crux/internal/version"
)

// Build metadata injected by goreleaser or makefile
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func init() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "crux:", err)
		os.Exit(1)
	}
}
