package requirements

import (
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// versionPattern matches the first major[.minor[.patch]] run in free-form
// text. Each component is at most 16 digits and the run must not touch
// other digits.
var versionPattern = regexp.MustCompile(`(?:^|[^\d])(\d{1,16})(?:\.(\d{1,16}))?(?:\.(\d{1,16}))?(?:$|[^\d])`)

// Coerce extracts a semantic version from arbitrary tool output. Missing
// minor and patch components default to zero; anything after the patch
// component (pre-release, build metadata, trailing text) is dropped. The
// boolean is false when the text holds nothing version-shaped.
func Coerce(text string) (*semver.Version, bool) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	var parts [3]uint64
	for i := range parts {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return nil, false
		}
		parts[i] = n
	}

	return semver.New(parts[0], parts[1], parts[2], "", ""), true
}

// Satisfies reports whether the version found in output meets minimum.
// Output without a recognizable version satisfies any minimum; the tools
// are trusted when their version cannot be disproven.
func Satisfies(output string, minimum *semver.Version) (installed *semver.Version, ok bool) {
	v, found := Coerce(output)
	if !found {
		return nil, true
	}
	return v, !v.LessThan(minimum)
}
