// Package vpath provides path manipulation for the shell's backslash-separated
// namespace.
//
// Paths are plain strings. A canonical path begins with Separator; the root is
// the single-character path "\". No normalization is performed: "." and ".."
// are only meaningful as whole tokens handed to Resolve.
package vpath

import "strings"

const (
	// Separator divides path segments.
	Separator = '\\'

	// Root is the canonical path of the root directory.
	Root = `\`

	// Dotdot is the token that names the parent of the current directory.
	Dotdot = ".."
)

// IsRoot reports whether p is the root path.
func IsRoot(p string) bool {
	return p == Root
}

// IsAbs reports whether p begins with the separator.
func IsAbs(p string) bool {
	return p != "" && p[0] == Separator
}

// Join appends name to dir with exactly one separator between them.
// When dir is the root no extra separator is inserted.
func Join(dir, name string) string {
	if dir == "" || IsRoot(dir) {
		return Root + name
	}
	if dir[len(dir)-1] == Separator {
		return dir + name
	}
	return dir + string(Separator) + name
}

// Parent returns p with its final segment removed.
//
// The last separator is the cut point; if it is the first character the
// result is the root. A path with no separator has no parent and yields "".
func Parent(p string) string {
	i := strings.LastIndexByte(p, Separator)
	switch {
	case i < 0:
		return ""
	case i == 0:
		return Root
	default:
		return p[:i]
	}
}

// Base returns the text after the last separator, or p itself when it has
// none.
func Base(p string) string {
	if i := strings.LastIndexByte(p, Separator); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Resolve turns a user-typed token into a canonical path relative to cwd.
//
// An absolute token is returned verbatim. A relative token is joined to cwd.
// The Dotdot token and the bare separator are not special here; directory
// changes go through Target.
func Resolve(cwd, token string) string {
	if IsAbs(token) {
		return token
	}
	return Join(cwd, token)
}

// Up returns the directory one level above cwd. At the root it is a no-op.
func Up(cwd string) string {
	if IsRoot(cwd) {
		return Root
	}
	i := strings.LastIndexByte(cwd, Separator)
	if i <= 0 {
		return Root
	}
	return cwd[:i]
}

// Target computes the path a directory change to token would land on.
// The bare separator yields the root and the Dotdot token yields Up(cwd);
// anything else is Resolve(cwd, token).
func Target(cwd, token string) string {
	switch token {
	case Root:
		return Root
	case Dotdot:
		return Up(cwd)
	default:
		return Resolve(cwd, token)
	}
}

// IsDirectChild reports whether p lies exactly one segment below dir.
//
// For the root, p must contain exactly one separator and it must be the first
// character. For any other dir, p must be longer than dir, start with dir
// followed by a separator, and contain no further separator.
func IsDirectChild(dir, p string) bool {
	if IsRoot(p) {
		return false
	}
	if IsRoot(dir) {
		return strings.Count(p, Root) == 1 && p[0] == Separator
	}
	if len(p) <= len(dir) || !strings.HasPrefix(p, dir) || p[len(dir)] != Separator {
		return false
	}
	return strings.IndexByte(p[len(dir)+1:], Separator) < 0
}

// ChildName returns the portion of p that follows dir and its separator.
// It assumes IsDirectChild(dir, p).
func ChildName(dir, p string) string {
	if IsRoot(dir) {
		return p[1:]
	}
	return p[len(dir)+1:]
}

// IsDescendant reports whether p lies anywhere beneath dir, that is, starts
// with dir followed by a separator. The root has every other absolute path
// as a descendant.
func IsDescendant(dir, p string) bool {
	if IsRoot(dir) {
		return IsAbs(p) && !IsRoot(p)
	}
	return len(p) > len(dir) && strings.HasPrefix(p, dir) && p[len(dir)] == Separator
}

// HasPrefixFold reports whether s begins with prefix, folding ASCII letters.
func HasPrefixFold(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if foldASCII(s[i]) != foldASCII(prefix[i]) {
			return false
		}
	}
	return true
}

func foldASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
