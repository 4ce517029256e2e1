// Package buildinfo holds release metadata stamped in at link time:
//
//	go build -ldflags "-X ledtris/internal/buildinfo.Version=v0.3.0 -X ledtris/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "strings"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func known(s, unset string) bool { return s != "" && s != unset }

// Short returns the version, else the commit, else "dev". Used in the window
// title and the startup log line.
func Short() string {
	if known(Version, "dev") {
		return Version
	}
	if known(Commit, "unknown") {
		return Commit
	}
	return "dev"
}

// Long describes the build for -version.
func Long() string {
	var b strings.Builder
	b.WriteString("ledtris ")
	b.WriteString(Short())
	if known(Commit, "unknown") && Short() != Commit {
		b.WriteString(" commit " + Commit)
	}
	if known(Date, "unknown") {
		b.WriteString(" built " + Date)
	}
	return b.String()
}
