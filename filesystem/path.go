package filesystem

import "strings"

// SplitPath splits an absolute path into its segment names. Empty segments
// are discarded, so leading, trailing and doubled slashes are tolerated.
// An empty or root path yields no segments.
//
// Paths are assumed absolute and already clean; "." and ".." receive no
// special treatment.
func SplitPath(path string) []string {
	parts := strings.Split(path, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// ParentPath returns the path to the directory containing the last segment
// of path, e.g. "/a/b/c" -> "/a/b". A single trailing slash is skipped, so
// "/a/b/" behaves like "/a/b". Top-level paths yield "", which resolves to
// the root.
func ParentPath(path string) string {
	pos := strings.LastIndexByte(path, '/')
	if pos == len(path)-1 {
		pos = strings.LastIndexByte(path[:pos], '/')
	}
	if pos < 0 {
		return ""
	}
	return path[:pos]
}

// BaseName returns the final segment name of path, e.g. "/a/b/c" -> "c".
// A single trailing slash is skipped, so "/a/b/" yields "b".
func BaseName(path string) string {
	end := len(path)
	pos := strings.LastIndexByte(path, '/')
	if pos == len(path)-1 {
		end = pos
		pos = strings.LastIndexByte(path[:pos], '/')
	}
	return path[pos+1 : end]
}
