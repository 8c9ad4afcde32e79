// Package version reports the noshow build identity.
package version

// Version is set at build time with -ldflags "-X .../version.Version=v1.2.3".
var Version = "development"

// Commit is the git commit hash, set at build time.
var Commit = "unknown"

// Date is the build date, set at build time.
var Date = ""

// String returns the version, the commit when known, and the build date when known.
func String() string {
	s := Version
	if Commit != "unknown" && Commit != "" {
		s += "+" + Commit
	}
	if Date != "" {
		s += " (" + Date + ")"
	}
	return s
}
