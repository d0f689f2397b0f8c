// Package pathutil provides pure, filesystem-independent path-string
// manipulation: splitting a path into components, joining components back into
// a path, normalizing ".." segments, computing relative paths, and comparing
// paths after normalization. No function in this package touches the
// filesystem; everything operates on the given strings alone.
package pathutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when an operation is given inputs it cannot
// compute a result for. The condition is a property of the inputs themselves;
// retrying with the same arguments will never succeed.
var ErrInvalidArgument = errors.New("invalid argument")

// Split splits a path into components using '/' as the delimiter.
//
// If the path is absolute (begins with '/'), the first component is the empty
// string, marking the root. Components equal to "." carry no information and
// are dropped. Runs of consecutive separators are treated as a single
// separator, so "a////b" splits the same as "a/b". An empty path yields nil.
func Split(path string) []string {
	if path == "" {
		return nil
	}

	var components []string
	if path[0] == '/' {
		components = append(components, "")
	}
	for _, c := range strings.Split(path, "/") {
		if c == "" || c == "." {
			continue
		}
		components = append(components, c)
	}
	return components
}

// Join joins components into a path with '/' between consecutive elements.
//
// If the first component is the empty string, the result is an absolute path:
// the empty component contributes a leading '/' rather than an empty segment.
// A sequence holding a single empty component joins to "/" and an empty
// sequence joins to "". Join is the inverse of Split for any sequence Split
// can produce, but accepts arbitrary sequences.
func Join(components []string) string {
	var b strings.Builder
	for i, c := range components {
		if c == "" {
			b.WriteByte('/')
		} else {
			b.WriteString(c)
			if i != len(components)-1 {
				b.WriteByte('/')
			}
		}
	}
	return b.String()
}

// Normalize resolves ".." components against the preceding component.
//
// A ".." is removed when either of the following holds:
//   - the previous component is the root marker: ".." is a no-op at the root
//     ("/.." == "/"), so only the ".." is dropped;
//   - the previous component is a real name: both cancel ("a/b/.." -> "a").
//
// A ".." preceded by another unresolved ".." (or sitting at the front of a
// relative sequence) stays in place. After each removal the scan re-examines
// the component now at the cursor against its new neighbor, so chains like
// "a/../.." collapse fully.
//
// "." components get no special treatment here; Split already strips them.
// Hand-built sequences containing "." produce incorrect results, e.g.
// "/usr/bin/./.." would normalize to "/usr/bin".
//
// Normalize shortens the slice in place and returns it.
func Normalize(components []string) []string {
	for i := 0; i < len(components); {
		if i == 0 {
			i++
			continue
		}
		if components[i] == ".." && components[i-1] != ".." {
			if components[i-1] == "" {
				components = append(components[:i], components[i+1:]...)
			} else {
				components = append(components[:i-1], components[i+1:]...)
				i--
			}
		} else {
			i++
		}
	}
	return components
}

// RelativePath computes the path that navigates from start to path.
//
// Both arguments are normalized first, so embedded "..", "." and duplicate
// separators in either argument are resolved before the common prefix is
// located. For example RelativePath("/usr/bin", "/usr/include/glib-2.0/..")
// returns "../bin".
//
// RelativePath never touches the filesystem; it works purely on the given
// strings. It returns an error wrapping ErrInvalidArgument when:
//   - path or start is empty;
//   - one argument is absolute and the other relative;
//   - the normalized start still contains a ".." past the common prefix.
//     There is no way to know what directory such a ".." resolves to without
//     consulting the filesystem: the relative path of "a/b" from ".." would
//     be "<somedir>/a/b" for an unknowable somedir.
func RelativePath(path, start string) (string, error) {
	if path == "" || start == "" {
		return "", fmt.Errorf("relative path: empty input: %w", ErrInvalidArgument)
	}
	if (path[0] == '/') != (start[0] == '/') {
		return "", fmt.Errorf("relative path: mixed absolute and relative paths %q, %q: %w",
			path, start, ErrInvalidArgument)
	}

	pathComponents := Normalize(Split(path))
	startComponents := Normalize(Split(start))

	// Number of leading components the two paths share.
	common := 0
	for common < len(pathComponents) && common < len(startComponents) &&
		pathComponents[common] == startComponents[common] {
		common++
	}

	var result []string

	// Climb out of the part of start that is not shared.
	for _, c := range startComponents[common:] {
		if c == ".." {
			return "", fmt.Errorf("relative path: start %q has an unresolvable \"..\": %w",
				start, ErrInvalidArgument)
		}
		result = append(result, "..")
	}

	// Descend into the part of path that is not shared.
	result = append(result, pathComponents[common:]...)

	return Join(result), nil
}

// Compare compares two paths after normalizing both.
//
// Each path is split, normalized and rejoined into a canonical string, then
// the canonical strings are compared lexicographically. Extra slashes, "."
// segments and resolvable ".." segments are therefore ignored: "a//b/./c"
// compares equal to "a/b/c". An absolute and a relative path never compare
// equal.
//
// The result follows strings.Compare: -1 if path1 sorts before path2, 0 if
// they are equal, +1 otherwise. Comparing an empty path is an error wrapping
// ErrInvalidArgument rather than a zero result; empty input is incomparable,
// not equal.
func Compare(path1, path2 string) (int, error) {
	if path1 == "" || path2 == "" {
		return 0, fmt.Errorf("compare: empty input: %w", ErrInvalidArgument)
	}

	canon1 := Join(Normalize(Split(path1)))
	canon2 := Join(Normalize(Split(path2)))

	return strings.Compare(canon1, canon2), nil
}
