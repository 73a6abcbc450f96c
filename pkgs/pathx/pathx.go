// Package pathx provides path formatting helpers for generated build files.
// Generated artifacts must stay portable across checkouts, so paths written
// into them are always relative and always slash-separated, regardless of
// the host platform.
package pathx

import (
	"path"
	"path/filepath"
	"strings"
)

// Rel returns the path to target relative to base, using forward slashes.
// Both arguments are cleaned first, so "./src" and "src" are equivalent.
// It returns "." when the two locations are the same, and falls back to
// the cleaned target when no relative path exists (e.g. different volumes
// on Windows).
func Rel(base, target string) string {
	b := filepath.FromSlash(base)
	t := filepath.FromSlash(target)
	rel, err := filepath.Rel(b, t)
	if err != nil {
		return path.Clean(filepath.ToSlash(target))
	}
	return filepath.ToSlash(rel)
}

// Join joins path fragments with forward slashes. Unlike path.Join it keeps
// the result untouched when a fragment is empty, which matches how build
// file variables compose.
func Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	return path.Join(parts...)
}

// Translate replaces the forward-slash separators in p with sep. It is used
// when emitting command forms for shells that do not accept POSIX paths.
func Translate(p, sep string) string {
	return strings.ReplaceAll(p, "/", sep)
}
