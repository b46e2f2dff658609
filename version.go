package crypt

import (
	"path"
	"regexp"
	"strings"
	"time"
)

// Versioned remotes keep old copies of a file around under names like
// "report-v2001-02-03-040506-123.txt". The version token sits before
// the extension and must survive name encryption unmodified, so it is
// stripped from the final path segment before the segment is encrypted
// or obfuscated and re-attached afterwards.

// versionFormat is the time layout of a version token. The '.' before
// the milliseconds is replaced with '-' in names.
const versionFormat = "-v2006-01-02-150405.000"

var versionRegexp = regexp.MustCompile(`-v\d{4}-\d{2}-\d{2}-\d{6}-\d{3}`)

// hasVersion reports whether name contains a version token
func hasVersion(name string) bool {
	return versionRegexp.MatchString(name)
}

// addVersion inserts the version token for t before name's extension
func addVersion(name string, t time.Time) string {
	ext := path.Ext(name)
	base := name[:len(name)-len(ext)]
	s := t.Format(versionFormat)
	s = strings.ReplaceAll(s, ".", "-")
	return base + s + ext
}

// removeVersion strips a trailing version token from before name's
// extension, returning the token's time and the stripped name. If no
// valid token is found, name is returned unchanged.
func removeVersion(name string) (t time.Time, remote string) {
	remote = name
	ext := path.Ext(name)
	base := name[:len(name)-len(ext)]
	if len(base) < len(versionFormat) {
		return
	}
	versionStart := len(base) - len(versionFormat)
	stamp := base[versionStart:]
	// put the '.' back before the milliseconds for parsing
	dot := len(versionFormat) - 4
	if stamp[dot] != '-' {
		return
	}
	parsed, err := time.Parse(versionFormat, stamp[:dot]+"."+stamp[dot+1:])
	if err != nil {
		return
	}
	return parsed, base[:versionStart] + ext
}
