package utils

import (
	"net/url"
	"path"
	"strings"
)

// BlobNameFromURL reduces a stored blob URL to the object name it was
// uploaded under: the last path segment.
//
// An entry that cannot be reduced to a name (unparseable URL, empty path,
// trailing slash) returns ok=false. Callers skip such entries; a record is
// never held back from deletion because one of its references is malformed.
func BlobNameFromURL(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || strings.Contains(name, "\\") {
		return "", false
	}

	return name, true
}
