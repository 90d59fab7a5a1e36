package tablefield

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var releaseFile string

var semver = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the tablefield release the binary and the table packages were
// cut from, read from the VERSION file at build time. It carries no `v`.
func Version() string {
	return strings.TrimSpace(releaseFile)
}

// VersionTag is Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// VersionLine is what `tablefield --version` prints.
func VersionLine() string {
	return "tablefield " + VersionTag()
}

// IsSemver reports whether v is a SemVer 2.0.0 string without a `v` prefix.
func IsSemver(v string) bool {
	return semver.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded VERSION file is well formed.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
