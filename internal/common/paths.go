package common

import "strings"

// RelToRoot returns the relative path from a directory at the given slash
// separated relative path back to the tree root: "." for the root itself,
// otherwise one ".." per path component ("a/b" -> "../..").
func RelToRoot(rel string) string {
	rel = strings.Trim(rel, "/")
	if rel == "" || rel == "." {
		return "."
	}

	depth := strings.Count(rel, "/") + 1

	ups := make([]string, depth)
	for i := range ups {
		ups[i] = ".."
	}

	return strings.Join(ups, "/")
}

// SplitRel splits a slash separated relative path into its components.
// Returns nil for the root path ("." or "").
func SplitRel(rel string) []string {
	rel = strings.Trim(rel, "/")
	if rel == "" || rel == "." {
		return nil
	}

	return strings.Split(rel, "/")
}

// JoinRel joins a directory relative path with a child name, keeping the
// "." convention for the root.
func JoinRel(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}

	return dir + "/" + name
}
