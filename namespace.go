package apiversion

import (
	"strconv"
	"strings"
)

// NamespaceSeparator delimits the segments of a controller identifier such
// as `Widgets\V2\Rest\Widget\Controller`.
const NamespaceSeparator = `\`

// VersionNamespace is the location of the version segment within a
// controller identifier.
type VersionNamespace struct {
	// Segments is the identifier split on the separator.
	Segments []string
	// Separator joins Segments back into an identifier.
	Separator string
	// Index is the position of the version segment within Segments.
	Index int
	// Version is the number parsed from the version segment.
	Version int
}

// ParseVersionNamespace finds the first segment of the identifier made of a
// capital V followed by one or more decimal digits. The second return value
// is false when the identifier has no such segment.
func ParseVersionNamespace(identifier string, separator string) (VersionNamespace, bool) {
	if identifier == "" || separator == "" {
		return VersionNamespace{}, false
	}
	segments := strings.Split(identifier, separator)
	for i, segment := range segments {
		v, ok := parseVersionSegment(segment)
		if !ok {
			continue
		}
		return VersionNamespace{
			Segments:  segments,
			Separator: separator,
			Index:     i,
			Version:   v,
		}, true
	}
	return VersionNamespace{}, false
}

func parseVersionSegment(segment string) (int, bool) {
	if len(segment) < 2 || segment[0] != 'V' {
		return 0, false
	}
	digits := segment[1:]
	if !isDigits(digits) {
		return 0, false
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		// overflow
		return 0, false
	}
	return v, true
}

// WithVersion renders the identifier with the version segment replaced by
// V<version>. The receiver is not modified.
func (n VersionNamespace) WithVersion(version int) string {
	segments := make([]string, len(n.Segments))
	copy(segments, n.Segments)
	segments[n.Index] = "V" + strconv.Itoa(version)
	return strings.Join(segments, n.Separator)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
