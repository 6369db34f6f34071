package byul

import "strings"

// JoinURL appends path to base with exactly one slash between them. Unlike
// url.ResolveReference, a leading slash on path never discards the base path.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
