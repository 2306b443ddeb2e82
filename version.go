// Package lineedit is a single-line text field engine for terminal and
// graphical hosts. The engine lives in package editor; text storage and
// selection arithmetic live in package buffer.
package lineedit

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(?P<major>0|[1-9]\d*)\.(?P<minor>0|[1-9]\d*)\.(?P<patch>0|[1-9]\d*)` +
	`(?:-(?P<pre>[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+(?P<build>[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

// Version returns the module version without the leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version in git tag form.
func VersionTag() string {
	return "v" + Version()
}

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Prerelease          string
	Build               string
}

// ParseVersion parses v as SemVer 2.0.0. A leading "v" is rejected.
func ParseVersion(v string) (SemVer, bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return SemVer{}, false
	}
	num := func(name string) int {
		n, _ := strconv.Atoi(m[semverRE.SubexpIndex(name)])
		return n
	}
	return SemVer{
		Major:      num("major"),
		Minor:      num("minor"),
		Patch:      num("patch"),
		Prerelease: m[semverRE.SubexpIndex("pre")],
		Build:      m[semverRE.SubexpIndex("build")],
	}, true
}

func IsSemver(v string) bool {
	_, ok := ParseVersion(v)
	return ok
}
