// Package completion implements Tab completion of path arguments.
package completion

import (
	"strings"

	"github.com/janleigh/ms-dos-clone/cmdline"
	"github.com/janleigh/ms-dos-clone/namespace"
	"github.com/janleigh/ms-dos-clone/vpath"
)

// Want is the kind of entry a command's argument should name.
type Want uint8

const (
	// Any matches files and directories.
	Any Want = iota
	// Files matches only files.
	Files
	// Dirs matches only directories.
	Dirs
)

// DefaultKinds maps lower-case command names to the kind of entry their
// arguments name. Commands not listed complete against any entry.
var DefaultKinds = map[string]Want{
	"type":   Files,
	"cat":    Files,
	"del":    Files,
	"delete": Files,
	"rm":     Files,
	"copy":   Files,
	"cp":     Files,
	"rename": Files,
	"ren":    Files,
	"move":   Files,
	"mv":     Files,

	"cd":    Dirs,
	"chdir": Dirs,
	"mkdir": Dirs,
	"md":    Dirs,
	"rmdir": Dirs,
	"rd":    Dirs,
	"dir":   Dirs,
	"ls":    Dirs,
}

// Store is the part of the namespace the engine reads.
type Store interface {
	Entries() []namespace.Entry
}

// Engine completes the last argument of a line against store paths.
type Engine struct {
	store Store
	cwd   func() string
	kinds map[string]Want
}

// New returns an engine over store. cwd is consulted on every call so the
// engine follows directory changes.
func New(store Store, cwd func() string) *Engine {
	return &Engine{store: store, cwd: cwd, kinds: DefaultKinds}
}

// Complete rewrites line when its last argument, resolved against the
// current directory, is a case-insensitive prefix of exactly one eligible
// entry's path. The rewritten line is the command, the preceding arguments
// and the matched name, separated by single spaces. The name is relative
// to the current directory when the entry lies beneath it.
func (e *Engine) Complete(line string) (string, bool) {
	l := cmdline.Parse(line)
	if l.Empty() || len(l.Args) == 0 {
		return "", false
	}
	partial := l.Args[len(l.Args)-1]
	if partial == "" {
		return "", false
	}

	cwd := e.cwd()
	match, ok := e.match(vpath.Resolve(cwd, partial), e.kinds[l.Name()])
	if !ok {
		return "", false
	}

	name := match
	if vpath.IsDescendant(cwd, match) {
		name = vpath.ChildName(cwd, match)
	}

	parts := append([]string{l.Command}, l.Args[:len(l.Args)-1]...)
	parts = append(parts, name)
	return strings.Join(parts, " "), true
}

// Matches returns every eligible path that prefix-matches the resolved
// partial argument, in store order.
func (e *Engine) Matches(command, partial string) []string {
	resolved := vpath.Resolve(e.cwd(), partial)
	want := e.kinds[strings.ToLower(command)]

	var out []string
	for _, entry := range e.store.Entries() {
		if eligible(entry, want) && vpath.HasPrefixFold(entry.Path, resolved) {
			out = append(out, entry.Path)
		}
	}
	return out
}

func (e *Engine) match(resolved string, want Want) (string, bool) {
	var found string
	n := 0
	for _, entry := range e.store.Entries() {
		if !eligible(entry, want) || !vpath.HasPrefixFold(entry.Path, resolved) {
			continue
		}
		found = entry.Path
		n++
		if n > 1 {
			return "", false
		}
	}
	return found, n == 1
}

func eligible(entry namespace.Entry, want Want) bool {
	switch want {
	case Files:
		return entry.Kind == namespace.File
	case Dirs:
		return entry.Kind == namespace.Directory
	default:
		return true
	}
}
